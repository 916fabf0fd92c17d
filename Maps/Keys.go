package Maps

import (
	"bytes"
	"math/rand/v2"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"golang.org/x/exp/constraints"
)

// These are ready-made Hashable adapters for the common key types. Use your own key type with a cheaper Hash whenever you know your key distribution.

// HashInt hashes v's memory bytes directly, so it works for all integer widths without converting to a string first.
func HashInt[I constraints.Integer](v I) uint {
	return uint(xxhash.Sum64(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))))
}

// drawn once per process; bucket placement may differ between runs, lookups always re-derive it.
var sipK0, sipK1 = rand.Uint64(), rand.Uint64()

type StrKey string

func (u StrKey) Hash() uint {
	return uint(xxhash.Sum64String(string(u)))
}

func (u StrKey) Equal(other Hashable) bool {
	return u == other.(StrKey)
}

type IntKey int

func (u IntKey) Hash() uint {
	return HashInt(int(u))
}

func (u IntKey) Equal(other Hashable) bool {
	return u == other.(IntKey)
}

// BytesKey must not be mutated while it's in a map.
type BytesKey []byte

func (u BytesKey) Hash() uint {
	return uint(siphash.Hash(sipK0, sipK1, u))
}

func (u BytesKey) Equal(other Hashable) bool {
	return bytes.Equal(u, other.(BytesKey))
}
