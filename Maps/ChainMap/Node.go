package ChainMap

import "fmt"

// Entry is a mapping in a ChainMap, linked to the next entry of the same bucket.
// Its key is fixed: changing it would leave the entry in the wrong bucket.
type Entry[K any, V any] struct {
	key  K
	val  V
	hash uint //hash of key, kept so resizing doesn't call the hash function again.
	next *Entry[K, V]
}

func (u *Entry[K, V]) Key() K {
	return u.key
}

func (u *Entry[K, V]) Value() V {
	return u.val
}

// SetValue replaces the value in place; the map sees the change. It doesn't invalidate iterators.
func (u *Entry[K, V]) SetValue(v V) {
	u.val = v
}

func (u *Entry[K, V]) String() string {
	return fmt.Sprintf("key: %#v; val: %#v; hash: %d", u.key, u.val, u.hash)
}
