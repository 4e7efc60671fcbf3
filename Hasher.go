package wlib

import (
	_ "runtime"
	"unsafe"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtStrHash runtime.strhash
//go:noescape
func rtStrHash(ptr unsafe.Pointer, seed uint) uint

// Hasher hashes with the runtime's own map hash under the seed it holds. Create it using Hasher(maphash.MakeSeed()) or any constant.
// A Hasher is a plain value so it can be shared freely, but hashes are only stable within one process.
type Hasher uint

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint {
	return rtHash(addr, uint(u), size)
}

// HashBytes hashes the given byte slice. An empty slice hashes like an empty string.
func (u Hasher) HashBytes(b []byte) uint {
	if len(b) == 0 {
		return u.HashString("")
	}
	return u.HashMem(unsafe.Pointer(&b[0]), uintptr(len(b)))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	return u.HashMem(unsafe.Pointer(&v), unsafe.Sizeof(v))
}

// HashString directly hashes a string.
func (u Hasher) HashString(v string) uint {
	return rtStrHash(unsafe.Pointer(&v), uint(u))
}
