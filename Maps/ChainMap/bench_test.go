package ChainMap

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/wlib/Maps"
	"github.com/petar/GoLLRB/llrb"
)

// single goroutine comparisons with https://github.com/alphadose/haxmap, https://github.com/cornelk/hashmap,
// the LLRB tree at https://github.com/petar/GoLLRB, and the native map.
const benchmarkItemCount = 1024

func setupChainMap(b *testing.B) *ChainMap[Maps.Int, int] {
	b.Helper()
	m := New[Maps.Int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		_ = m.Put(Maps.Int(i), i)
	}
	return m
}

func BenchmarkChainMap_Put(b *testing.B) {
	for n := 0; n < b.N; n++ {
		setupChainMap(b)
	}
}

func BenchmarkChainMap_Get(b *testing.B) {
	m := setupChainMap(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if v, _ := m.Get(Maps.Int(i)); v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkChainMap_Iterate(b *testing.B) {
	m := setupChainMap(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		it := m.Iterator()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkHaxMap_Put(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := haxmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func BenchmarkHaxMap_Get(b *testing.B) {
	m := haxmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if v, _ := m.Get(i); v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkHashMap_Put(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := hashmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func BenchmarkHashMap_Get(b *testing.B) {
	m := hashmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if v, _ := m.Get(i); v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkLLRB_Put(b *testing.B) {
	for n := 0; n < b.N; n++ {
		t := llrb.New()
		for i := 0; i < benchmarkItemCount; i++ {
			t.ReplaceOrInsert(llrb.Int(i))
		}
	}
}

func BenchmarkLLRB_Get(b *testing.B) {
	t := llrb.New()
	for i := 0; i < benchmarkItemCount; i++ {
		t.ReplaceOrInsert(llrb.Int(i))
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if t.Get(llrb.Int(i)) == nil {
				b.Fail()
			}
		}
	}
}

func BenchmarkNativeMap_Put(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := make(map[int]int)
		for i := 0; i < benchmarkItemCount; i++ {
			m[i] = i
		}
	}
}

func BenchmarkNativeMap_Get(b *testing.B) {
	m := make(map[int]int)
	for i := 0; i < benchmarkItemCount; i++ {
		m[i] = i
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if m[i] != i {
				b.Fail()
			}
		}
	}
}
