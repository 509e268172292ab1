package main

import (
	"errors"
	"io"

	"github.com/alecthomas/kong"
	"github.com/lydgate/ascon/pkg/ascon"
	"github.com/lydgate/ascon/pkg/ascon/armor"
)

type decryptCmd struct {
	Key        string `arg:"" help:"The path to the secret key, or - to prompt for it."`
	Ciphertext string `arg:"" type:"existingfile" help:"The path to the ciphertext file."`
	Plaintext  string `arg:"" type:"path" help:"The path to the plaintext file."`

	AD      string `help:"Additional authenticated data."`
	Armor   bool   `help:"Decode the ciphertext as base64."`
	Variant string `default:"128" enum:"128,128a" help:"The cipher variant to use."`
}

func (cmd *decryptCmd) Run(_ *kong.Context) error {
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

	// Open the ciphertext input.
	src, err := openInput(cmd.Ciphertext)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// De-armor the input, if requested.
	r := io.Reader(src)
	if cmd.Armor {
		r = armor.NewDecoder(src)
	}

	in, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	// Split off the nonce and decrypt.
	if len(in) < ascon.NonceSize+ascon.TagSize {
		return errors.New("ciphertext too short")
	}

	plaintext, err := aead.Open(nil, in[:ascon.NonceSize], in[ascon.NonceSize:], []byte(cmd.AD))
	if err != nil {
		return err
	}

	// Write out the plaintext.
	dst, err := openOutput(cmd.Plaintext)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	_, err = dst.Write(plaintext)

	return err
}
