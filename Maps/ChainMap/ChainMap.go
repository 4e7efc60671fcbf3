// Package ChainMap implements a hash map resolving collisions by separate chaining.
//
// The bucket array always has a power of two length, so a bucket is picked by masking the hash.
// Before an insertion the load Size()/Buckets() is checked; once it reaches LoadFactor the bucket array doubles
// and every entry is rehashed into it. New entries are put at the head of their chain.
//
// A ChainMap isn't safe for concurrent use.
package ChainMap

import (
	"math/bits"

	"github.com/g-m-twostay/wlib"
	"github.com/g-m-twostay/wlib/Maps"
)

const (
	DefaultBuckets uint    = 16
	LoadFactor     float64 = 0.75 //as a ratio, loadNum/loadDen, which is what's actually compared.
	loadNum, loadDen       = 3, 4
	maxBuckets             = uint(1) << (bits.UintSize - 2)
)

type ChainMap[K any, V any] struct {
	buckets []*Entry[K, V]
	size    int
	mods    uint //changed by every structural modification; checked by iterators.
	hash    func(K) uint
	equal   func(K, K) bool
	closed  bool
}

var _ Maps.Map[Maps.Int, int] = (*ChainMap[Maps.Int, int])(nil)

// New ChainMap with DefaultBuckets buckets for a key type providing its own hash and equality.
func New[K Maps.Hashable[K], V any]() *ChainMap[K, V] {
	return &ChainMap[K, V]{
		buckets: make([]*Entry[K, V], DefaultBuckets),
		hash:    func(k K) uint { return k.Hash() },
		equal:   func(a, b K) bool { return a.Equal(b) },
	}
}

// NewFunc creates a ChainMap using the given hash and equality functions, which must agree: equal keys hash the same.
// buckets is rounded up to a power of two; 0 means DefaultBuckets.
func NewFunc[K any, V any](hash func(K) uint, equal func(K, K) bool, buckets uint) (*ChainMap[K, V], error) {
	if hash == nil || equal == nil {
		return nil, wlib.Invalid("ChainMap.New: hash and equal functions are required")
	}
	if buckets == 0 {
		buckets = DefaultBuckets
	} else if buckets > maxBuckets {
		return nil, wlib.Invalid("ChainMap.New: %d buckets exceeds the maximum %d", buckets, maxBuckets)
	} else if buckets&(buckets-1) != 0 {
		buckets = 1 << bits.Len(buckets)
	}
	b, err := wlib.Alloc[*Entry[K, V]](int(buckets))
	if err != nil {
		return nil, err
	}
	return &ChainMap[K, V]{buckets: b, hash: hash, equal: equal}, nil
}

func (u *ChainMap[K, V]) index(hash uint) uint {
	return hash & uint(len(u.buckets)-1)
}

// find the entry with key k in its chain, or nil.
func (u *ChainMap[K, V]) find(k K) *Entry[K, V] {
	hash := u.hash(k)
	for cur := u.buckets[u.index(hash)]; cur != nil; cur = cur.next {
		if cur.hash == hash && u.equal(cur.key, k) {
			return cur
		}
	}
	return nil
}

// expand doubles the bucket array. Doubling splits bucket i into buckets i and i+n of the new array,
// chosen by bit n of the cached hash; both halves keep their order, so chains stay newest first.
func (u *ChainMap[K, V]) expand() error {
	n := len(u.buckets)
	nb, err := wlib.Alloc[*Entry[K, V]](n << 1)
	if err != nil {
		return err
	}
	for i, cur := range u.buckets {
		lo, hi := &nb[i], &nb[i+n]
		for ; cur != nil; cur = cur.next {
			if cur.hash&uint(n) == 0 {
				*lo, lo = cur, &cur.next
			} else {
				*hi, hi = cur, &cur.next
			}
		}
		*lo, *hi = nil, nil
	}
	u.buckets = nb
	u.mods++
	return nil
}

// Put maps k to v. An existing mapping for k has its value replaced.
func (u *ChainMap[K, V]) Put(k K, v V) error {
	if u.closed {
		return wlib.Closed("ChainMap.Put")
	}
	if u.size*loadDen >= len(u.buckets)*loadNum {
		if err := u.expand(); err != nil {
			return err
		}
	}
	hash := u.hash(k)
	i := u.index(hash)
	for cur := u.buckets[i]; cur != nil; cur = cur.next {
		if cur.hash == hash && u.equal(cur.key, k) {
			cur.val = v
			return nil
		}
	}
	u.buckets[i] = &Entry[K, V]{key: k, val: v, hash: hash, next: u.buckets[i]}
	u.size++
	u.mods++
	return nil
}

// Get the value mapped to k. A missing key is a wlib.LookupFailure.
func (u *ChainMap[K, V]) Get(k K) (v V, err error) {
	if u.closed {
		return v, wlib.Closed("ChainMap.Get")
	}
	if e := u.find(k); e != nil {
		return e.val, nil
	}
	return v, wlib.Missing("ChainMap.Get: key %v not found", k)
}

// Lookup is Get without an error: ok reports whether k was present.
func (u *ChainMap[K, V]) Lookup(k K) (v V, ok bool) {
	if !u.closed {
		if e := u.find(k); e != nil {
			return e.val, true
		}
	}
	return
}

// HasKey reports whether k is mapped. Always false on a closed map.
func (u *ChainMap[K, V]) HasKey(k K) bool {
	return !u.closed && u.find(k) != nil
}

// Remove the mapping of k and return its value. A missing key is a wlib.LookupFailure and leaves the map unchanged.
func (u *ChainMap[K, V]) Remove(k K) (v V, err error) {
	if u.closed {
		return v, wlib.Closed("ChainMap.Remove")
	}
	hash := u.hash(k)
	for pre := &u.buckets[u.index(hash)]; *pre != nil; pre = &(*pre).next {
		if cur := *pre; cur.hash == hash && u.equal(cur.key, k) {
			*pre, cur.next = cur.next, nil
			u.size--
			u.mods++
			return cur.val, nil
		}
	}
	return v, wlib.Missing("ChainMap.Remove: key %v not found", k)
}

// Size is the number of mappings.
func (u *ChainMap[K, V]) Size() int {
	return u.size
}

// Buckets is the current length of the bucket array.
func (u *ChainMap[K, V]) Buckets() int {
	return len(u.buckets)
}

// Range calls f on every mapping in iteration order until f returns false. f mustn't modify the map.
func (u *ChainMap[K, V]) Range(f func(K, V) bool) {
	for _, cur := range u.buckets {
		for ; cur != nil; cur = cur.next {
			if !f(cur.key, cur.val) {
				return
			}
		}
	}
}

// Pairs returns a closure acting like an iterator: k, v, ok = f(). k and v are meaningful only if ok. Once ok is false, f is exhausted.
func (u *ChainMap[K, V]) Pairs() func() (K, V, bool) {
	it := u.Iterator()
	return func() (k K, v V, ok bool) {
		var e *Entry[K, V]
		if e, ok = it.Next(); ok {
			k, v = e.key, e.val
		}
		return
	}
}

// Close drops every mapping. The map can't be used afterward; a second Close fails with wlib.ErrClosed.
func (u *ChainMap[K, V]) Close() error {
	if u.closed {
		return wlib.Closed("ChainMap.Close")
	}
	for i, cur := range u.buckets {
		for cur != nil { //unlink so an escaped Entry doesn't keep the rest of its chain alive.
			nx := cur.next
			cur.next = nil
			cur = nx
		}
		u.buckets[i] = nil
	}
	u.buckets, u.size, u.closed = nil, 0, true
	u.mods++
	return nil
}
