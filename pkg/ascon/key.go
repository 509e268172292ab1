package ascon

import (
	"crypto/rand"
	"encoding"
	"fmt"

	"github.com/mr-tron/base58"
)

// Key is a 128-bit symmetric key.
//
// It can be marshalled and unmarshalled as a base58 string for human
// consumption. It should otherwise never be serialized in plaintext.
type Key [KeySize]byte

// NewKey generates a random key.
func NewKey() (*Key, error) {
	var k Key
	if _, err := rand.Read(k[:]); err != nil {
		return nil, err
	}

	return &k, nil
}

// String returns the key as base58 text.
func (k *Key) String() string {
	text, err := k.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalText encodes the key into base58 text and returns the result.
func (k *Key) MarshalText() (text []byte, err error) {
	return []byte(base58.Encode(k[:])), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver
// to contain the decoded key.
func (k *Key) UnmarshalText(text []byte) error {
	data, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	if len(data) != KeySize {
		return fmt.Errorf("invalid key size: %d", len(data))
	}

	copy(k[:], data)

	return nil
}

// Wipe zeroes the key material.
func (k *Key) Wipe() {
	*k = Key{}
}

var (
	_ encoding.TextMarshaler   = &Key{}
	_ encoding.TextUnmarshaler = &Key{}
	_ fmt.Stringer             = &Key{}
)

// Nonce is a 128-bit nonce. A nonce must be used for at most one
// encryption under a given key.
type Nonce [NonceSize]byte

// NewNonce generates a random nonce.
func NewNonce() (*Nonce, error) {
	var n Nonce
	if _, err := rand.Read(n[:]); err != nil {
		return nil, err
	}

	return &n, nil
}
