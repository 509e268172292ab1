package core

// Params describes one variant of the cipher: how many bytes of state are
// exposed to data per block, and the initialization constant which commits
// the state to that choice.
type Params struct {
	rate int
	iv   uint64
}

// Rate returns the number of bytes processed per block.
func (p Params) Rate() int {
	return p.rate
}

//nolint:gochecknoglobals // static parameter sets
var (
	// Ascon128 processes 8 bytes per block with a 6-round intermediate
	// permutation.
	Ascon128 = Params{rate: 8, iv: 0x80400c0600000000}

	// Ascon128a processes 16 bytes per block with an 8-round intermediate
	// permutation.
	Ascon128a = Params{rate: 16, iv: 0x80800c0800000000}
)
