package HashSet

import (
	"github.com/g-m-twostay/wlib/Maps"
	"github.com/g-m-twostay/wlib/Maps/ChainMap"
	"github.com/g-m-twostay/wlib/Sets"
)

var _ Sets.Set[Maps.Int] = (*HashSet[Maps.Int])(nil)

// HashSet is a set stored as the keys of a ChainMap, so it grows the same way.
type HashSet[E any] struct {
	m *ChainMap.ChainMap[E, struct{}]
}

// New HashSet of a key type providing its own hash and equality.
func New[E Maps.Hashable[E]]() *HashSet[E] {
	return &HashSet[E]{ChainMap.New[E, struct{}]()}
}

// NewFunc HashSet using the given hash and equality functions; see ChainMap.NewFunc.
func NewFunc[E any](hash func(E) uint, equal func(E, E) bool, size uint) (*HashSet[E], error) {
	m, err := ChainMap.NewFunc[E, struct{}](hash, equal, size)
	if err != nil {
		return nil, err
	}
	return &HashSet[E]{m}, nil
}

// Size of the set.
func (u *HashSet[E]) Size() int {
	return u.m.Size()
}

// Put e into the set. Returns true if e is new.
func (u *HashSet[E]) Put(e E) (bool, error) {
	if u.m.HasKey(e) {
		return false, nil
	}
	if err := u.m.Put(e, struct{}{}); err != nil {
		return false, err
	}
	return true, nil
}

// Has e in the set.
func (u *HashSet[E]) Has(e E) bool {
	return u.m.HasKey(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	_, err := u.m.Remove(e)
	return err == nil
}

// Take an arbitrary element from the set without removing it. Doesn't guarantee which element it will return.
func (u *HashSet[E]) Take() (e E, ok bool) {
	e, _, ok = u.m.Pairs()()
	return
}

// Range over elements and call f on them. Stops when f returns false. f mustn't modify the set.
func (u *HashSet[E]) Range(f func(E) bool) {
	u.m.Range(func(e E, _ struct{}) bool {
		return f(e)
	})
}

// Close the set; see ChainMap.Close.
func (u *HashSet[E]) Close() error {
	return u.m.Close()
}
