package ChainMap

import "github.com/g-m-twostay/wlib"

// Iterator walks the entries of a ChainMap: buckets in index order, each chain from its head.
// It's invalidated by any Put of a new key, Remove, resize or Close on its map;
// after that Next returns false and Err reports the invalidation.
type Iterator[K any, V any] struct {
	m      *ChainMap[K, V]
	cur    *Entry[K, V]
	bucket int //next bucket to scan.
	mods   uint
	err    error
}

// Iterator positioned before the first entry.
func (u *ChainMap[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: u, mods: u.mods}
}

// Next advances to the following entry. ok is false once all entries are visited, and stays false.
func (u *Iterator[K, V]) Next() (e *Entry[K, V], ok bool) {
	if u.err != nil {
		return nil, false
	}
	if u.mods != u.m.mods {
		u.cur, u.err = nil, wlib.Invalid("ChainMap.Iterator: map modified during iteration")
		return nil, false
	}
	if u.cur != nil {
		u.cur = u.cur.next
	}
	for u.cur == nil && u.bucket < len(u.m.buckets) {
		u.cur = u.m.buckets[u.bucket]
		u.bucket++
	}
	return u.cur, u.cur != nil
}

// Err is nil unless the map was structurally modified while iterating.
func (u *Iterator[K, V]) Err() error {
	return u.err
}
