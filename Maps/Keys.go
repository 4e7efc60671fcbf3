package Maps

import (
	"bytes"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/g-m-twostay/wlib"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// Seed of the Hasher used by Int.
var Seed wlib.Hasher

// Int is an int key.
type Int int

func (u Int) Hash() uint {
	return Seed.HashInt(int(u))
}

func (u Int) Equal(o Int) bool {
	return u == o
}

// Str is a string key hashed with xxhash.
type Str string

func (u Str) Hash() uint {
	return uint(xxhash.Sum64String(string(u)))
}

func (u Str) Equal(o Str) bool {
	return u == o
}

// Bytes is a byte string key hashed with murmur3. The slice is stored as is, so it mustn't be modified while it's a key.
type Bytes []byte

func (u Bytes) Hash() uint {
	return uint(murmur3.Sum64(u))
}

func (u Bytes) Equal(o Bytes) bool {
	return bytes.Equal(u, o)
}

// HashInteger returns a hash function for any integer type, hashing its memory with h.
func HashInteger[T constraints.Integer](h wlib.Hasher) func(T) uint {
	return func(v T) uint {
		return h.HashMem(unsafe.Pointer(&v), unsafe.Sizeof(v))
	}
}

// HashString hashes s with xxhash.
func HashString(s string) uint {
	return uint(xxhash.Sum64String(s))
}

// Equal is == as a function.
func Equal[T comparable](a, b T) bool {
	return a == b
}
