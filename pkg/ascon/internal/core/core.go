// Package core implements the sponge core shared by Ascon-128 and
// Ascon-128a: the permutation, associated data absorption, in-place
// encryption and decryption of the message, and tag derivation.
//
// A Core models exactly one encryption or decryption. It is constructed
// from a key and nonce, performs a single Seal or Open, and must then be
// discarded; Wipe destroys the retained key material.
package core

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

// ErrInvalidCiphertext is returned when a ciphertext cannot be
// authenticated, either due to an incorrect key or tampering.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Core is the state of a single encryption or decryption: the sponge state
// plus the two key words, which are retained for finalization.
type Core struct {
	s      state
	rate   int
	k1, k2 uint64
}

// New constructs a core from the given parameters, key, and nonce. The
// caller must never reuse a nonce with the same key.
func New(p Params, key, nonce *[16]byte) *Core {
	k1 := binary.BigEndian.Uint64(key[0:8])
	k2 := binary.BigEndian.Uint64(key[8:16])

	c := &Core{
		s: state{
			x0: p.iv,
			x1: k1,
			x2: k2,
			x3: binary.BigEndian.Uint64(nonce[0:8]),
			x4: binary.BigEndian.Uint64(nonce[8:16]),
		},
		rate: p.rate,
		k1:   k1,
		k2:   k2,
	}

	// Mix the key and nonce into the state, then re-inject the key into
	// the capacity.
	c.s.permute12()
	c.s.x3 ^= k1
	c.s.x4 ^= k2

	return c
}

// absorb mixes the associated data into the rate portion of the state, one
// block at a time. The domain-separation bit is flipped even when ad is
// empty, marking the transition to message processing.
func (c *Core) absorb(ad []byte) {
	if len(ad) > 0 {
		// Absorb all full blocks.
		for len(ad) >= c.rate {
			c.s.x0 ^= binary.BigEndian.Uint64(ad)
			if c.rate == 16 {
				c.s.x1 ^= binary.BigEndian.Uint64(ad[8:])
			}

			c.s.permute(c.rate)
			ad = ad[c.rate:]
		}

		// For Ascon-128a, a tail of 8..15 bytes fills x0 and pads into x1.
		px := &c.s.x0
		if c.rate == 16 && len(ad) >= 8 {
			c.s.x0 ^= binary.BigEndian.Uint64(ad)
			ad = ad[8:]
			px = &c.s.x1
		}

		// Absorb the padded partial block.
		*px ^= pad(len(ad))
		if len(ad) > 0 {
			*px ^= be64n(ad)
		}

		c.s.permute(c.rate)
	}

	// Domain separation.
	c.s.x4 ^= 1
}

// encryptBlocks encrypts buf in place. No permutation follows the final
// partial block; its state is consumed by finalization.
func (c *Core) encryptBlocks(buf []byte) {
	for len(buf) >= c.rate {
		c.s.x0 ^= binary.BigEndian.Uint64(buf)
		binary.BigEndian.PutUint64(buf, c.s.x0)

		if c.rate == 16 {
			c.s.x1 ^= binary.BigEndian.Uint64(buf[8:])
			binary.BigEndian.PutUint64(buf[8:], c.s.x1)
		}

		c.s.permute(c.rate)
		buf = buf[c.rate:]
	}

	px := &c.s.x0
	if c.rate == 16 && len(buf) >= 8 {
		c.s.x0 ^= binary.BigEndian.Uint64(buf)
		binary.BigEndian.PutUint64(buf, c.s.x0)
		buf = buf[8:]
		px = &c.s.x1
	}

	*px ^= pad(len(buf))

	if len(buf) > 0 {
		*px ^= be64n(buf)
		put64n(buf, *px)
	}
}

// decryptBlocks decrypts buf in place. For each block, the state word must
// become the ciphertext value, not remain at the plaintext, so the
// keystream lines up with what encryption would have produced.
func (c *Core) decryptBlocks(buf []byte) {
	for len(buf) >= c.rate {
		cx := binary.BigEndian.Uint64(buf)
		binary.BigEndian.PutUint64(buf, c.s.x0^cx)
		c.s.x0 = cx

		if c.rate == 16 {
			cx = binary.BigEndian.Uint64(buf[8:])
			binary.BigEndian.PutUint64(buf[8:], c.s.x1^cx)
			c.s.x1 = cx
		}

		c.s.permute(c.rate)
		buf = buf[c.rate:]
	}

	px := &c.s.x0
	if c.rate == 16 && len(buf) >= 8 {
		cx := binary.BigEndian.Uint64(buf)
		binary.BigEndian.PutUint64(buf, c.s.x0^cx)
		c.s.x0 = cx
		buf = buf[8:]
		px = &c.s.x1
	}

	*px ^= pad(len(buf))

	if len(buf) > 0 {
		cx := be64n(buf)
		*px ^= cx
		put64n(buf, *px)

		// Replace the plaintext bytes in the state with the ciphertext
		// bytes, mirroring what the word would hold after encryption.
		*px = clear(*px, len(buf)) ^ cx
	}
}

// finalize injects the key just past the rate, permutes, and re-injects
// the key into the tag words.
func (c *Core) finalize() {
	if c.rate == 8 {
		c.s.x1 ^= c.k1
		c.s.x2 ^= c.k2
	} else {
		c.s.x2 ^= c.k1
		c.s.x3 ^= c.k2
	}

	c.s.permute12()
	c.s.x3 ^= c.k1
	c.s.x4 ^= c.k2
}

// tag returns the authentication tag from the final state.
func (c *Core) tag() [16]byte {
	var t [16]byte

	binary.BigEndian.PutUint64(t[0:8], c.s.x3)
	binary.BigEndian.PutUint64(t[8:16], c.s.x4)

	return t
}

// Seal encrypts buf in place, authenticating it along with ad, and returns
// the authentication tag. The core must be discarded afterwards.
func (c *Core) Seal(buf, ad []byte) [16]byte {
	c.absorb(ad)
	c.encryptBlocks(buf)
	c.finalize()

	return c.tag()
}

// Open decrypts buf in place and verifies the tag in constant time,
// returning ErrInvalidCiphertext on mismatch. buf holds the unauthenticated
// candidate plaintext regardless of the outcome; on error the caller must
// discard it. The core must be discarded afterwards.
func (c *Core) Open(buf, ad []byte, tag *[16]byte) error {
	c.absorb(ad)
	c.decryptBlocks(buf)
	c.finalize()

	actual := c.tag()
	if subtle.ConstantTimeCompare(actual[:], tag[:]) != 1 {
		return ErrInvalidCiphertext
	}

	return nil
}

// Wipe zeroes the retained key words and the sponge state.
func (c *Core) Wipe() {
	c.k1, c.k2 = 0, 0
	c.s = state{}
}
