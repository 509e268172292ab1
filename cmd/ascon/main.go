// ascon encrypts and decrypts files with the Ascon-128 and Ascon-128a
// authenticated ciphers.
//
// Ciphertext files consist of a random 16-byte nonce followed by the
// encrypted message and its 16-byte authentication tag, optionally armored
// as base64.
package main

import (
	"crypto/cipher"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lydgate/ascon/pkg/ascon"
	"golang.org/x/term"
)

type cli struct {
	SecretKey secretKeyCmd `cmd:"" help:"Generate a new secret key."`
	Encrypt   encryptCmd   `cmd:"" help:"Encrypt a message."`
	Decrypt   decryptCmd   `cmd:"" help:"Decrypt a message."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// decodeKey reads a base58 key from the given file, or prompts for it
// without echo if the path is "-".
func decodeKey(pathOrDash string) (*ascon.Key, error) {
	var (
		text []byte
		err  error
	)

	if pathOrDash == "-" {
		text, err = askSecret("Enter key: ")
	} else {
		text, err = os.ReadFile(pathOrDash)
	}

	if err != nil {
		return nil, err
	}

	var key ascon.Key
	if err := key.UnmarshalText([]byte(strings.TrimSpace(string(text)))); err != nil {
		return nil, err
	}

	return &key, nil
}

// newAEAD returns the AEAD for the named variant.
func newAEAD(variant string, key *ascon.Key) (cipher.AEAD, error) {
	if variant == "128a" {
		return ascon.New128a(key[:])
	}

	return ascon.New128(key[:])
}

func askSecret(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.Create(path)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}
