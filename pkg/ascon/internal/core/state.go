package core

import "math/bits"

// state is the 320-bit sponge state: five 64-bit words. Which words are
// touched by data depends on the rate; x2..x4 (or x3..x4 for Ascon-128a)
// form the capacity and are only ever modified by the permutation and the
// key schedule.
type state struct {
	x0, x1, x2, x3, x4 uint64
}

//nolint:gochecknoglobals // round constants
var constants = [12]uint64{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b,
}

// round applies a single round of the permutation with the round constant c.
func (s *state) round(c uint64) {
	// Addition of the round constant and the substitution layer.
	s.x0 ^= s.x4
	s.x2 ^= s.x1 ^ c
	s.x4 ^= s.x3

	t0 := s.x0 ^ (^s.x1 & s.x2)
	t1 := s.x1 ^ (^s.x2 & s.x3)
	t2 := s.x2 ^ (^s.x3 & s.x4)
	t3 := s.x3 ^ (^s.x4 & s.x0)
	t4 := s.x4 ^ (^s.x0 & s.x1)
	t1 ^= t0
	t3 ^= t2
	t0 ^= t4

	// Linear diffusion layer. x2 is inverted to make an all-zero state
	// a non-fixed point.
	s.x0 = t0 ^ rotr(t0, 9)
	s.x1 = t1 ^ rotr(t1, 22)
	s.x2 = t2 ^ rotr(t2, 5)
	s.x3 = t3 ^ rotr(t3, 7)
	s.x4 = t4 ^ rotr(t4, 34)
	s.x0 = t0 ^ rotr(s.x0, 19)
	s.x1 = t1 ^ rotr(s.x1, 39)
	s.x2 = ^(t2 ^ rotr(s.x2, 1))
	s.x3 = t3 ^ rotr(s.x3, 10)
	s.x4 = t4 ^ rotr(s.x4, 7)
}

func (s *state) rounds(cs []uint64) {
	for _, c := range cs {
		s.round(c)
	}
}

// permute12 applies the full 12-round permutation. It is used for
// initialization and finalization by both variants.
func (s *state) permute12() { s.rounds(constants[:]) }

// permute8 applies the last 8 rounds of the schedule.
func (s *state) permute8() { s.rounds(constants[4:]) }

// permute6 applies the last 6 rounds of the schedule.
func (s *state) permute6() { s.rounds(constants[6:]) }

// permute applies the intermediate permutation for the given rate: 6
// rounds for Ascon-128, 8 rounds for Ascon-128a.
func (s *state) permute(rate int) {
	if rate == 8 {
		s.permute6()
	} else {
		s.permute8()
	}
}

func rotr(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}

// pad returns the padding word for a partial block of n bytes: a single
// 0x80 byte immediately after the n data bytes, big-endian, zero elsewhere.
func pad(n int) uint64 {
	return 0x80 << (56 - 8*n)
}

// clear zeroes the top n bytes of w, keeping the bottom 8-n bytes.
// n must be in [1,7].
func clear(w uint64, n int) uint64 {
	return w & (0x00ffffffffffffff >> (8*n - 8))
}

// be64n decodes up to 7 bytes as a left-justified big-endian word.
func be64n(b []byte) uint64 {
	var x uint64
	for i, v := range b {
		x |= uint64(v) << (56 - 8*i)
	}

	return x
}

// put64n writes the top len(b) bytes of x to b.
func put64n(b []byte, x uint64) {
	for i := range b {
		b[i] = byte(x >> (56 - 8*i))
	}
}
