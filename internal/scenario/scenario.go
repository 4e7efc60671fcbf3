// Package scenario runs end-to-end checks of the containers and logs what it observes.
// Every scenario verifies its results itself and returns an error describing the first mismatch.
package scenario

import (
	"github.com/g-m-twostay/wlib"
	"github.com/g-m-twostay/wlib/Arrays"
	"github.com/g-m-twostay/wlib/Lists"
	"github.com/g-m-twostay/wlib/Maps"
	"github.com/g-m-twostay/wlib/Maps/ChainMap"
	"github.com/g-m-twostay/wlib/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const arrayProbe int64 = 123456

// Result of a scenario run.
type Result struct {
	Name   string
	Checks int //properties verified.
}

// Array stores a value at index 0 of a fresh array and reads it back.
func Array(log zerolog.Logger, size int) (res Result, err error) {
	res.Name = "array"
	a, err := Arrays.New[int64](size)
	if err != nil {
		return res, err
	}
	defer func() { wlib.Check(a.Close()) }()
	if err = a.Set(0, arrayProbe); err != nil {
		return res, err
	}
	v, err := a.Get(0)
	if err != nil {
		return res, err
	}
	if v != arrayProbe {
		return res, errors.Errorf("array: read %d back, stored %d", v, arrayProbe)
	}
	res.Checks++
	log.Info().Int("size", a.Len()).Int64("value", v).Msg("array round trip")
	return res, nil
}

// NDArray stores a value at the origin and at the last coordinate of an array of the given shape.
func NDArray(log zerolog.Logger, shape []int) (res Result, err error) {
	res.Name = "ndarray"
	n, err := Arrays.NewND[float64](shape)
	if err != nil {
		return res, err
	}
	defer func() { wlib.Check(n.Close()) }()
	origin, last := make([]int, n.Rank()), make([]int, n.Rank())
	for k, d := range n.Shape() {
		last[k] = d - 1
	}
	for i, c := range [][]int{origin, last} {
		want := float64(i) + 0.5
		if err = n.Set(want, c); err != nil {
			return res, err
		}
		got, err := n.Get(c)
		if err != nil {
			return res, err
		}
		if got != want {
			return res, errors.Errorf("ndarray: read %v at %v, stored %v", got, c, want)
		}
		flat, _ := n.Index(c)
		log.Info().Ints("coords", c).Int("offset", flat).Float64("value", got).Msg("ndarray round trip")
		res.Checks++
	}
	log.Info().Ints("shape", n.Shape()).Int("elements", n.Len()).Msg("ndarray checked")
	return res, nil
}

// List appends one element more than the initial capacity, so the list has to grow once, then checks the order.
func List(log zerolog.Logger, capacity int) (res Result, err error) {
	res.Name = "list"
	l, err := Lists.New[int](capacity)
	if err != nil {
		return res, err
	}
	defer func() { wlib.Check(l.Close()) }()
	for i := 0; i <= capacity; i++ {
		before := l.Capacity()
		if err = l.AddLast(i); err != nil {
			return res, err
		}
		if l.Capacity() != before {
			log.Info().Int("size", l.Size()).Int("from", before).Int("to", l.Capacity()).Msg("list grew")
		}
	}
	if want := max(capacity*2, 1); l.Capacity() != want {
		return res, errors.Errorf("list: capacity %d after %d appends, want %d", l.Capacity(), capacity+1, want)
	}
	res.Checks++
	for i := 0; i <= capacity; i++ {
		if v, err := l.Get(i); err != nil || v != i {
			return res, errors.Errorf("list: element %d is %d (%v)", i, v, err)
		}
	}
	res.Checks++
	return res, nil
}

// Map inserts entries keys into a map with the given initial buckets, logging every resize, and reads them all back.
func Map(log zerolog.Logger, buckets uint, entries int) (res Result, err error) {
	res.Name = "map"
	m, err := ChainMap.NewFunc[Maps.Int, string](Maps.Int.Hash, Maps.Int.Equal, buckets)
	if err != nil {
		return res, err
	}
	defer func() { wlib.Check(m.Close()) }()
	for i := 0; i < entries; i++ {
		before := m.Buckets()
		if err = m.Put(Maps.Int(i), string(rune('a'+i%26))); err != nil {
			return res, err
		}
		if m.Buckets() != before {
			if before*3 > (m.Size()-1)*4 {
				return res, errors.Errorf("map: resized at load %d/%d", m.Size()-1, before)
			}
			log.Info().Int("entries", m.Size()-1).Int("from", before).Int("to", m.Buckets()).Msg("map resized")
			res.Checks++
		}
	}
	if m.Size() != entries {
		return res, errors.Errorf("map: size %d, want %d", m.Size(), entries)
	}
	for i := 0; i < entries; i++ {
		v, err := m.Get(Maps.Int(i))
		if err != nil {
			return res, err
		}
		if v != string(rune('a'+i%26)) {
			return res, errors.Errorf("map: key %d maps to %q", i, v)
		}
	}
	res.Checks++
	log.Info().Int("entries", m.Size()).Int("buckets", m.Buckets()).Msg("map checked")
	return res, nil
}

// All runs every scenario with the parameters in cfg, stopping at the first failure.
func All(log zerolog.Logger, cfg *config.Config) ([]Result, error) {
	runs := []func() (Result, error){
		func() (Result, error) { return Array(log, cfg.ArraySize) },
		func() (Result, error) { return NDArray(log, cfg.NDShape) },
		func() (Result, error) { return List(log, cfg.ListCapacity) },
		func() (Result, error) { return Map(log, cfg.MapBuckets, cfg.MapEntries) },
	}
	results := make([]Result, 0, len(runs))
	for _, run := range runs {
		r, err := run()
		if err != nil {
			return results, errors.Wrapf(err, "scenario %s", r.Name)
		}
		results = append(results, r)
	}
	return results, nil
}
