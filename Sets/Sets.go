package Sets

// Set of unique elements.
type Set[E any] interface {
	//Put e into the set. Returns true if e wasn't present before.
	Put(E) (bool, error)
	//Has e in the set.
	Has(E) bool
	//Remove e from the set. Returns true if e was present.
	Remove(E) bool
	//Size of the set.
	Size() int
	//Take an arbitrary element; false if the set is empty.
	Take() (E, bool)
	//Range calls f on every element until f returns false.
	Range(func(E) bool)
}
