// Package ascon implements the Ascon-128 and Ascon-128a authenticated
// ciphers, version 1.2, as selected by the NIST Lightweight Cryptography
// competition.
//
// Both variants take a 128-bit key and a 128-bit nonce and produce
// ciphertext of the same length as the plaintext plus a 128-bit
// authentication tag which also covers the associated data. They differ
// only in throughput: Ascon-128a processes twice as many bytes per
// permutation call at a slightly reduced security margin.
//
// Nonces must never be reused with the same key. The package does not and
// cannot enforce this.
package ascon

import (
	"github.com/lydgate/ascon/pkg/ascon/internal/core"
)

const (
	// KeySize is the size of a key in bytes.
	KeySize = 16

	// NonceSize is the size of a nonce in bytes.
	NonceSize = 16

	// TagSize is the size of an authentication tag in bytes.
	TagSize = 16
)

// ErrInvalidCiphertext is returned when a ciphertext cannot be decrypted,
// either due to an incorrect key or tampering.
var ErrInvalidCiphertext = core.ErrInvalidCiphertext

// sliceForAppend extends the input slice by n bytes. head is the full
// extended slice, while tail is the appended part.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}

	tail = head[len(in):]

	return
}
