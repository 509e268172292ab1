package main

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/lydgate/ascon/pkg/ascon"
	"github.com/lydgate/ascon/pkg/ascon/armor"
)

type encryptCmd struct {
	Key        string `arg:"" help:"The path to the secret key, or - to prompt for it."`
	Plaintext  string `arg:"" type:"existingfile" help:"The path to the plaintext file."`
	Ciphertext string `arg:"" type:"path" help:"The path to the ciphertext file."`

	AD      string `help:"Additional authenticated data."`
	Armor   bool   `help:"Encode the ciphertext as base64."`
	Variant string `default:"128" enum:"128,128a" help:"The cipher variant to use."`
}

func (cmd *encryptCmd) Run(_ *kong.Context) error {
	// Decode the secret key.
	key, err := decodeKey(cmd.Key)
	if err != nil {
		return err
	}

	defer key.Wipe()

	aead, err := newAEAD(cmd.Variant, key)
	if err != nil {
		return err
	}

	// Read the plaintext. The cipher is one-shot, so the input can't be
	// streamed.
	src, err := openInput(cmd.Plaintext)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	plaintext, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	// Generate a fresh nonce and seal the plaintext after it.
	nonce, err := ascon.NewNonce()
	if err != nil {
		return err
	}

	out := aead.Seal(nonce[:], nonce[:], plaintext, []byte(cmd.AD))

	// Open the ciphertext output.
	dst, err := openOutput(cmd.Ciphertext)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Armor the output, if requested.
	w := io.WriteCloser(dst)
	if cmd.Armor {
		w = armor.NewEncoder(dst)
	}

	if _, err := w.Write(out); err != nil {
		return err
	}

	if cmd.Armor {
		if err := w.Close(); err != nil {
			return err
		}
	}

	return nil
}
