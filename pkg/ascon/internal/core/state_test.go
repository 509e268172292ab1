package core

import (
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp"
)

func TestPad(t *testing.T) {
	t.Parallel()

	want := []uint64{
		0x8000000000000000,
		0x80000000000000,
		0x800000000000,
		0x8000000000,
		0x80000000,
		0x800000,
		0x8000,
		0x80,
	}

	for n, v := range want {
		assert.Equal(t, "pad", v, pad(n))
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	const w = uint64(0x0123456789abcdef)

	want := []uint64{
		0x23456789abcdef,
		0x456789abcdef,
		0x6789abcdef,
		0x89abcdef,
		0xabcdef,
		0xcdef,
		0xef,
	}

	for i, v := range want {
		assert.Equal(t, "clear", v, clear(w, i+1))
	}
}

func TestPermute12(t *testing.T) {
	t.Parallel()

	// 12 rounds over the all-zero state.
	var s state
	s.permute12()

	want := state{
		x0: 0x78ea7ae5cfebb108,
		x1: 0x9b9bfb8513b560f7,
		x2: 0x6937f83e03d11a50,
		x3: 0x3fe53f36f2c1178c,
		x4: 0x045d648e4def12c9,
	}

	if diff := cmp.Diff(want, s, cmp.AllowUnexported(state{})); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestPermute6(t *testing.T) {
	t.Parallel()

	s := state{
		x0: 0x0123456789abcdef,
		x1: 0x0123456789abcdef,
		x2: 0x0123456789abcdef,
		x3: 0x0123456789abcdef,
		x4: 0x0123456789abcdef,
	}
	s.permute(8)

	want := state{
		x0: 0xd8dda645c1430ff7,
		x1: 0x7b3f27abb9c6e576,
		x2: 0x4dc4b6355b9278d1,
		x3: 0x8b182cd544e840da,
		x4: 0xb39b9bc60c358d35,
	}

	if diff := cmp.Diff(want, s, cmp.AllowUnexported(state{})); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestPermute8(t *testing.T) {
	t.Parallel()

	s := state{
		x0: 0x0123456789abcdef,
		x1: 0x0123456789abcdef,
		x2: 0x0123456789abcdef,
		x3: 0x0123456789abcdef,
		x4: 0x0123456789abcdef,
	}
	s.permute(16)

	want := state{
		x0: 0x12699681dba5a0a4,
		x1: 0xe6fb7704b62e97a5,
		x2: 0xa5137cd263bda8e9,
		x3: 0xf6591d7348648131,
		x4: 0x4ec560e48d372a9c,
	}

	if diff := cmp.Diff(want, s, cmp.AllowUnexported(state{})); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestPartialWordCodec(t *testing.T) {
	t.Parallel()

	b := []byte{0x01, 0x23, 0x45}

	assert.Equal(t, "word", uint64(0x0123450000000000), be64n(b))

	out := make([]byte, 3)
	put64n(out, 0x0123456789abcdef)
	assert.Equal(t, "bytes", []byte{0x01, 0x23, 0x45}, out)
}

func BenchmarkPermute12(b *testing.B) {
	var s state

	for i := 0; i < b.N; i++ {
		s.permute12()
	}
}
