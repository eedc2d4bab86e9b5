package bloom

import (
	"crypto/md5"
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestMD5Pair(t *testing.T) {
	data := []byte("hello bloom")

	h1, h2 := MD5Pair(data)
	sum := md5.Sum(data)
	assert.Equal(t, binary.BigEndian.Uint64(sum[:8]), h1)
	assert.Equal(t, binary.BigEndian.Uint64(sum[8:]), h2)

	// repeated calls are reproducible
	g1, g2 := MD5Pair(data)
	assert.Equal(t, h1, g1)
	assert.Equal(t, h2, g2)
}

func TestXXHashPair(t *testing.T) {
	data := []byte("hello bloom")

	h1, h2 := XXHashPair(data)
	assert.Equal(t, xxhash.Sum64(data), h1)
	assert.NotEqual(t, h1, h2)

	g1, g2 := XXHashPair(data)
	assert.Equal(t, h1, g1)
	assert.Equal(t, h2, g2)
}

func TestPositions(t *testing.T) {
	f, err := New(10, 100, DefaultOption)
	assert.NoError(t, err)
	assert.Equal(t, 6, f.HashCount())

	pos := f.positions("word")
	assert.Len(t, pos, f.HashCount())
	for _, p := range pos {
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, f.BitCount())
	}

	// i runs 1..k, so the first slot is (h1 + h2) mod m, not h1 mod m.
	h1, h2 := MD5Pair([]byte("word"))
	for i := 1; i <= f.HashCount(); i++ {
		assert.Equal(t, int((h1+uint64(i)*h2)%uint64(f.BitCount())), pos[i-1])
	}
}

func TestPositionsEmptyWhenDegenerate(t *testing.T) {
	f, err := New(100, 100, DefaultOption)
	assert.NoError(t, err)
	assert.Empty(t, f.positions("anything"))
}
