/*
Package Maps defines what a key type must provide to be stored in the hash maps of this module, and ships ready-made key types.

# Contract
A key type supplies Hash and Equal. Keys that are Equal MUST return the same Hash; otherwise lookups may miss existing keys or put may duplicate them.
Only the low bits of the hash select a bucket, so a hash function should mix well into its lower bits.

# Ready-made keys
Int hashes with the runtime's memhash, Str with xxhash and Bytes with murmur3. For native key types pass the functions in this package to ChainMap.NewFunc instead.
*/
package Maps

// Hashable is the capability a key type K needs.
type Hashable[K any] interface {
	Hash() uint
	Equal(other K) bool
}

// Map is the operation set shared by the maps of this module.
type Map[K any, V any] interface {
	Put(K, V) error
	Get(K) (V, error)
	Remove(K) (V, error)
	HasKey(K) bool
	Size() int
	Range(func(K, V) bool)
	Close() error
}
