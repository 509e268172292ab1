package ascon

import (
	"crypto/cipher"
	"fmt"

	"github.com/lydgate/ascon/pkg/ascon/internal/core"
)

// New128 returns a cipher.AEAD implementation of Ascon-128.
func New128(key []byte) (cipher.AEAD, error) {
	return newAEAD(core.Ascon128, key)
}

// New128a returns a cipher.AEAD implementation of Ascon-128a.
func New128a(key []byte) (cipher.AEAD, error) {
	return newAEAD(core.Ascon128a, key)
}

func newAEAD(p core.Params, key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: %d", len(key))
	}

	a := &aead{p: p}
	copy(a.key[:], key)

	return a, nil
}

type aead struct {
	p   core.Params
	key [KeySize]byte
}

func (a *aead) NonceSize() int {
	return NonceSize
}

func (a *aead) Overhead() int {
	return TagSize
}

// Seal encrypts and authenticates the plaintext along with the additional
// data and appends the ciphertext and tag to dst, returning the appended
// slice.
func (a *aead) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("ascon: invalid nonce size: %d", len(nonce)))
	}

	var n [NonceSize]byte
	copy(n[:], nonce)

	// Copy the plaintext to the output buffer, leaving room for the tag.
	ret, out := sliceForAppend(dst, len(plaintext)+TagSize)
	copy(out, plaintext)

	// Encrypt it in place with a single-use core.
	c := core.New(a.p, &a.key, &n)
	defer c.Wipe()

	tag := c.Seal(out[:len(plaintext)], additionalData)
	copy(out[len(plaintext):], tag[:])

	return ret
}

// Open authenticates and decrypts the ciphertext, appending the plaintext
// to dst. If the ciphertext, tag, or additional data have been altered in
// any way, it returns ErrInvalidCiphertext.
func (a *aead) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("ascon: invalid nonce size: %d", len(nonce)))
	}

	if len(ciphertext) < TagSize {
		return nil, ErrInvalidCiphertext
	}

	var n [NonceSize]byte
	copy(n[:], nonce)

	// Detach the tag.
	var tag [TagSize]byte
	copy(tag[:], ciphertext[len(ciphertext)-TagSize:])

	// Copy the ciphertext to the output buffer.
	ret, out := sliceForAppend(dst, len(ciphertext)-TagSize)
	copy(out, ciphertext[:len(ciphertext)-TagSize])

	// Decrypt it in place with a single-use core and verify the tag.
	c := core.New(a.p, &a.key, &n)
	defer c.Wipe()

	if err := c.Open(out, additionalData, &tag); err != nil {
		// Don't let unauthenticated plaintext escape.
		for i := range out {
			out[i] = 0
		}

		return nil, err
	}

	return ret, nil
}

var _ cipher.AEAD = (*aead)(nil)
