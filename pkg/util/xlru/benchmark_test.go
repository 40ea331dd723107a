package xlru

import (
	"fmt"
	"testing"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// =============================================================================
// Store 基准测试
// =============================================================================

func BenchmarkStore_Get(b *testing.B) {
	s, err := NewStore[string, int](1000)
	if err != nil {
		b.Fatal(err)
	}
	s.Put("benchmark_key", 42)

	b.ReportAllocs()
	for b.Loop() {
		_ = s.Get("benchmark_key")
	}
}

func BenchmarkStore_Get_Miss(b *testing.B) {
	s, err := NewStore[string, int](1000)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = s.Get("nonexistent")
	}
}

func BenchmarkStore_Put_Eviction(b *testing.B) {
	s, err := NewStore[string, int](100)
	if err != nil {
		b.Fatal(err)
	}
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		s.Put(keys[i%len(keys)], i)
	}
}

// BenchmarkSimpleLRU_Put_Eviction 参照实现，用于对比。
func BenchmarkSimpleLRU_Put_Eviction(b *testing.B) {
	l, err := simplelru.NewLRU[string, int](100, nil)
	if err != nil {
		b.Fatal(err)
	}
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		l.Add(keys[i%len(keys)], i)
	}
}

// =============================================================================
// Cache 基准测试
// =============================================================================

func BenchmarkCache_Get_Parallel(b *testing.B) {
	cache, err := New[int, int](Config{Capacity: 1024})
	if err != nil {
		b.Fatal(err)
	}
	for i := range 1024 {
		cache.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = cache.Get(i & 1023)
			i++
		}
	})
}

func BenchmarkCache_Mixed_Parallel(b *testing.B) {
	cache, err := New[int, int](Config{Capacity: 512})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%4 == 0 {
				cache.Put(i&2047, i)
			} else {
				_ = cache.Get(i & 2047)
			}
			i++
		}
	})
}
