package bloom

import (
	"crypto/md5"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// PairHash derives the two base hash values that double hashing combines
// into the per-item bit positions. Implementations must be deterministic:
// the same item has to land on the same positions on every call.
type PairHash func(data []byte) (h1, h2 uint64)

// MD5Pair computes a single 128-bit digest of the item and splits it into
// two 8-byte big-endian halves. This is the default pair.
func MD5Pair(data []byte) (uint64, uint64) {
	sum := md5.Sum(data)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:])
}

// salt byte separating the second base hash from the first
const xxhashSalt = 0xb1

// XXHashPair is a faster non-cryptographic alternative for hot paths.
func XXHashPair(data []byte) (uint64, uint64) {
	h1 := xxhash.Sum64(data)
	d := xxhash.New()
	d.Write(data)
	d.Write([]byte{xxhashSalt})
	return h1, d.Sum64()
}
