package bitset

import "math/bits"

// Bitset is a byte-packed bit array. The logical bit length is owned by
// the caller; storage rounds up to whole bytes and Set/Test only range
// check against the slice bounds.
type Bitset []byte

func New(n int) Bitset {
	return make(Bitset, (n+7)/8)
}

func (b Bitset) Set(i int) {
	b[i/8] |= 1 << (i % 8)
}

func (b Bitset) Test(i int) bool {
	return b[i/8]&(1<<(i%8)) != 0
}

// OnesCount returns the number of set bits.
func (b Bitset) OnesCount() int {
	n := 0
	for _, x := range b {
		n += bits.OnesCount8(x)
	}
	return n
}
