// ysc2keygen derives a variant-sized YSC2 key from an operator
// passphrase. It prompts for the passphrase on the controlling terminal
// without echo, stretches it with scrypt under a fresh random 32-byte
// salt, and writes the result to stdout: with -b64 (the default) as
// base64(salt) + ":" + base64(key) on one line, otherwise as the raw key
// bytes only.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/newsniper-org/ysc2/variant"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/term"
)

func readRandom(b []byte) (int, error) {
	return io.ReadFull(rand.Reader, b)
}

var (
	n       int
	r       int
	p       int
	use1024 bool
	b64     bool
)

func init() {
	flag.IntVar(&n, "N", 1<<15, "scrypt CPU/memory cost parameter")
	flag.IntVar(&r, "r", 8, "scrypt block size parameter")
	flag.IntVar(&p, "p", 1, "scrypt parallelization parameter")
	flag.BoolVar(&use1024, "1024", false, "derive a key for the 1024-bit variant")
	flag.BoolVar(&b64, "b64", true, "base64-encode the derived key")
}

func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return string(b), err
}

func main() {
	flag.Parse()
	defer glog.Flush()

	v := variant.Variant512
	if use1024 {
		v = variant.Variant1024
	}

	pass1, err := readPassphrase("passphrase: ")
	if err != nil {
		glog.Exitf("reading passphrase: %v", err)
	}
	pass2, err := readPassphrase("confirm: ")
	if err != nil {
		glog.Exitf("reading confirmation: %v", err)
	}
	if pass1 != pass2 {
		glog.Exit("passphrases did not match")
	}

	salt := make([]byte, 32)
	if _, err := readRandom(salt); err != nil {
		glog.Exitf("generating salt: %v", err)
	}

	key, err := scrypt.Key([]byte(pass1), salt, n, r, p, v.KeyBytes)
	if err != nil {
		glog.Exitf("scrypt: %v", err)
	}

	if b64 {
		fmt.Println(base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(key))
		return
	}
	os.Stdout.Write(key)
}
