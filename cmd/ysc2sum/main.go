// ysc2sum hashes stdin or a list of files with the YSC2 XOF and prints
// a hex digest, optionally keyed with a MAC key.
package main

import (
	"encoding/hex"
	"flag"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/newsniper-org/ysc2/sponge"
	"github.com/newsniper-org/ysc2/variant"
)

var (
	macKey   string
	digitLen int
	use1024  bool
)

func init() {
	flag.StringVar(&macKey, "mackey", "", "an ASCII MAC key; empty means unkeyed hash")
	flag.IntVar(&digitLen, "len", sponge.FixedDigestBytes, "output length in bytes")
	flag.BoolVar(&use1024, "1024", false, "use the 1024-bit variant instead of 512-bit")
}

func selectedVariant() variant.Variant {
	if use1024 {
		return variant.Variant1024
	}
	return variant.Variant512
}

func sumReader(r io.Reader) (string, error) {
	v := selectedVariant()
	var core *sponge.Core
	if macKey != "" {
		core = sponge.NewKeyed(v, []byte(macKey))
	} else {
		core = sponge.New(v)
	}
	if _, err := io.Copy(core, r); err != nil {
		return "", err
	}
	reader := core.FinalizeXOF()
	out := make([]byte, digitLen)
	reader.Read(out)
	return hex.EncodeToString(out), nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() == 0 {
		sum, err := sumReader(os.Stdin)
		if err != nil {
			glog.Exitf("reading stdin: %v", err)
		}
		os.Stdout.WriteString(sum + "\n")
		return
	}

	for _, filename := range flag.Args() {
		f, err := os.Open(filename)
		if err != nil {
			glog.Errorf("opening %s: %v", filename, err)
			continue
		}
		sum, err := sumReader(f)
		f.Close()
		if err != nil {
			glog.Errorf("hashing %s: %v", filename, err)
			continue
		}
		os.Stdout.WriteString(sum + "  " + filename + "\n")
	}
}
