// Package bloom implements a space-efficient probabilistic set membership
// filter with no false negatives and a tunable false positive rate.
//
// A filter is sized either explicitly (expected items + bit count) or from
// a false positive bound. Each insert and query touches k bit positions
// derived from two base hashes of the item by double hashing
// (Kirsch-Mitzenmacher): position_i = (h1 + i*h2) mod m for i = 1..k.
package bloom

import (
	"bloom/pkg/bitset"
	"fmt"
	"math"
)

// Filter is a fixed-size bloom filter. Bits only ever flip from 0 to 1;
// there is no delete, clear or resize. A Filter is not safe for concurrent
// use; callers sharing one across goroutines must add their own locking.
type Filter struct {
	bits bitset.Bitset

	// designed capacity, used only for parameter derivation. Inserting
	// more than n items is allowed, the false positive rate just grows.
	n int

	// bit array length
	m int

	// bit positions touched per insert/query
	k int

	fpRate float64

	pair PairHash
}

// New creates a filter of bitCount bits sized for expectedItems items.
// The hash count is derived by OptimalHashCount; when it truncates to
// zero the filter is degenerate and reports every item as present. That
// configuration is legal, not an error.
func New(expectedItems, bitCount int, opt Option) (*Filter, error) {
	if expectedItems <= 0 {
		return nil, ErrCapacityNotPositive
	}
	if bitCount <= 0 {
		return nil, ErrBitCountNotPositive
	}
	pair := opt.Pair
	if pair == nil {
		pair = MD5Pair
	}
	return &Filter{
		bits:   bitset.New(bitCount),
		n:      expectedItems,
		m:      bitCount,
		k:      OptimalHashCount(expectedItems, bitCount),
		fpRate: EstimateFalsePositiveRate(expectedItems, bitCount),
		pair:   pair,
	}, nil
}

// NewWithRate creates a filter sized so that, at expectedItems items, the
// false positive probability stays within rate. rate must lie strictly
// between 0 and 1.
func NewWithRate(expectedItems int, rate float64, opt Option) (*Filter, error) {
	if expectedItems <= 0 {
		return nil, ErrCapacityNotPositive
	}
	if math.IsNaN(rate) {
		return nil, ErrRateNotANumber
	}
	if rate <= 0 || rate >= 1 {
		return nil, ErrRateOutOfRange
	}
	return New(expectedItems, OptimalBitCount(expectedItems, rate), opt)
}

// Insert adds item to the filter. Inserting the same item again leaves
// the filter unchanged.
func (f *Filter) Insert(item string) {
	for _, pos := range f.positions(item) {
		f.bits.Set(pos)
	}
}

// Query reports whether item may have been inserted. A false result is
// definitive; a true result can be a false positive. Once true for an
// item it stays true, whatever is inserted afterwards.
func (f *Filter) Query(item string) bool {
	for _, pos := range f.positions(item) {
		if !f.bits.Test(pos) {
			return false
		}
	}
	return true
}

// positions derives the k bit positions for item. i starts at 1: with
// i=0 the first round would collapse to h1 mod m and one derived slot
// would be lost. Duplicate positions are kept, setting or testing a bit
// twice is harmless.
func (f *Filter) positions(item string) []int {
	h1, h2 := f.pair([]byte(item))
	pos := make([]int, f.k)
	for i := 1; i <= f.k; i++ {
		pos[i-1] = int((h1 + uint64(i)*h2) % uint64(f.m))
	}
	return pos
}

// Capacity returns the expected item count the filter was sized for.
func (f *Filter) Capacity() int {
	return f.n
}

// BitCount returns the length of the bit array.
func (f *Filter) BitCount() int {
	return f.m
}

// HashCount returns the number of bit positions touched per operation.
func (f *Filter) HashCount() int {
	return f.k
}

// FalsePositiveRate returns the theoretical false positive probability
// computed at construction. Informational only, never enforced.
func (f *Filter) FalsePositiveRate() float64 {
	return f.fpRate
}

// FillRatio returns the fraction of bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.OnesCount()) / float64(f.m)
}

func (f *Filter) String() string {
	return fmt.Sprintf("Filter{capacity=%d, bits=%d, hashes=%d, falsePositiveRate=%g}",
		f.n, f.m, f.k, f.fpRate)
}
