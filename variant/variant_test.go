package variant

import "testing"

func TestVariantRoundsSatisfyMinimum(t *testing.T) {
	if Variant512.Rounds < 12 {
		t.Fatalf("Variant512.Rounds = %d, want >= 12", Variant512.Rounds)
	}
	if Variant1024.Rounds < 14 {
		t.Fatalf("Variant1024.Rounds = %d, want >= 14", Variant1024.Rounds)
	}
}

func TestVariantSizesMatchWordBoundaries(t *testing.T) {
	for _, v := range []Variant{Variant512, Variant1024} {
		if v.KeyBytes%8 != 0 {
			t.Fatalf("%s: KeyBytes %d not word-aligned", v.Name, v.KeyBytes)
		}
		if v.NonceBytes%8 != 0 {
			t.Fatalf("%s: NonceBytes %d not word-aligned", v.Name, v.NonceBytes)
		}
	}
}

func TestDomainStringsAreDistinct(t *testing.T) {
	if Variant512.KeyedDomain == Variant1024.KeyedDomain {
		t.Fatal("512 and 1024 variants share a keyed-MAC domain string")
	}
	if Variant512.AEADDomain == Variant1024.AEADDomain {
		t.Fatal("512 and 1024 variants share an AEAD domain string")
	}
}
