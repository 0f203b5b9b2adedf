package permute

import "golang.org/x/sys/cpu"

// selectBackend picks the vector back-end on CPUs that can reasonably be
// expected to benefit from wider lane groupings, and falls back to the
// portable scalar back-end everywhere else (including non-x86 targets,
// where cpu.X86's feature flags all read false). This is the runtime
// counterpart of the original's build-time feature flag
// (#[cfg(feature = "ysc2_simd")]).
func selectBackend() Backend {
	if cpu.X86.HasAVX2 || cpu.X86.HasAVX512F {
		return vectorBackend{}
	}
	return softBackend{}
}
