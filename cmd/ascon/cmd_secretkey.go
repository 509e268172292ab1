package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/lydgate/ascon/pkg/ascon"
)

type secretKeyCmd struct {
	Output string `arg:"" type:"path" help:"The output path for the secret key."`
}

func (cmd *secretKeyCmd) Run(_ *kong.Context) error {
	// Generate a new random key.
	key, err := ascon.NewKey()
	if err != nil {
		return err
	}

	defer key.Wipe()

	text, err := key.MarshalText()
	if err != nil {
		return err
	}

	// Write out the base58 key.
	return os.WriteFile(cmd.Output, append(text, '\n'), 0600)
}
