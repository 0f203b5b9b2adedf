// ysc2crypt is a minimal AEAD encrypt/decrypt tool: it reads a key from
// a file (generating one if missing), a nonce, and pipes stdin to
// stdout through YSC2's AEAD core.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/newsniper-org/ysc2/aead"
	"github.com/newsniper-org/ysc2/variant"
)

var (
	keyFilename string
	adHex       string
	decrypt     bool
	use1024     bool
)

func init() {
	flag.StringVar(&keyFilename, "key", "", "key file (created with random bytes if missing)")
	flag.StringVar(&adHex, "ad", "", "hex-encoded associated data")
	flag.BoolVar(&decrypt, "d", false, "decrypt instead of encrypt")
	flag.BoolVar(&use1024, "1024", false, "use the 1024-bit variant")
}

func loadOrCreateKey(v variant.Variant) []byte {
	if keyFilename == "" {
		glog.Exit("missing -key")
	}
	data, err := os.ReadFile(keyFilename)
	if err == nil {
		if len(data) != v.KeyBytes {
			glog.Exitf("key in %s is %d bytes, want %d", keyFilename, len(data), v.KeyBytes)
		}
		return data
	}
	if !os.IsNotExist(err) {
		glog.Exitf("reading %s: %v", keyFilename, err)
	}

	key := make([]byte, v.KeyBytes)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		glog.Exitf("generating key: %v", err)
	}
	if err := os.WriteFile(keyFilename, key, 0o600); err != nil {
		glog.Exitf("writing %s: %v", keyFilename, err)
	}
	glog.Infof("created new key file %s", keyFilename)
	return key
}

func main() {
	flag.Parse()
	defer glog.Flush()

	v := variant.Variant512
	if use1024 {
		v = variant.Variant1024
	}
	key := loadOrCreateKey(v)

	ad, err := hex.DecodeString(adHex)
	if err != nil {
		glog.Exitf("invalid -ad: %v", err)
	}

	core, err := aead.New(v, key)
	if err != nil {
		glog.Exitf("key schedule: %v", err)
	}

	if decrypt {
		runDecrypt(core, v, ad)
		return
	}
	runEncrypt(core, v, ad)
}

func runEncrypt(core *aead.Core, v variant.Variant, ad []byte) {
	nonce := make([]byte, v.NonceBytes)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		glog.Exitf("generating nonce: %v", err)
	}

	plaintext, err := io.ReadAll(os.Stdin)
	if err != nil {
		glog.Exitf("reading stdin: %v", err)
	}

	tag, err := core.Encrypt(nonce, ad, plaintext)
	if err != nil {
		glog.Exitf("encrypt: %v", err)
	}

	os.Stdout.Write(nonce)
	os.Stdout.Write(tag[:])
	os.Stdout.Write(plaintext)
}

func runDecrypt(core *aead.Core, v variant.Variant, ad []byte) {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		glog.Exitf("reading stdin: %v", err)
	}
	if len(input) < v.NonceBytes+aead.TagBytes {
		glog.Exit("input too short to contain nonce and tag")
	}

	nonce := input[:v.NonceBytes]
	var tag [aead.TagBytes]byte
	copy(tag[:], input[v.NonceBytes:v.NonceBytes+aead.TagBytes])
	ciphertext := input[v.NonceBytes+aead.TagBytes:]

	if err := core.Decrypt(nonce, ad, ciphertext, tag); err != nil {
		glog.Exitf("decrypt: %v", err)
	}
	os.Stdout.Write(ciphertext)
}
