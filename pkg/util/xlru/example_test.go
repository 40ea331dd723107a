package xlru_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/xlrukit/pkg/util/xlru"
)

func Example() {
	cache, err := xlru.New[int, string](xlru.Config{Capacity: 4})
	if err != nil {
		panic(err)
	}

	for k := 1; k <= 4; k++ {
		cache.Put(k, fmt.Sprint("v", k))
	}

	// 读取 1 会把它提升为最近使用，因此下一次淘汰的是 2
	cache.Get(1)
	cache.Put(5, "x")

	fmt.Println(cache.Get(2))
	fmt.Println(cache.Get(1))
	fmt.Println("Len:", cache.Len(), "Full:", cache.IsFull())

	// Output:
	// NotFound
	// Found(v1)
	// Len: 4 Full: true
}

func ExampleStore_absenceMarker() {
	s, err := xlru.NewStore[string, *int](2)
	if err != nil {
		panic(err)
	}

	// nil 是合法的值，与"不存在"不同
	s.Put("empty", nil)

	if v, ok := s.Get("empty").Value(); ok {
		fmt.Println("found, nil:", v == nil)
	}
	if !s.Get("missing").IsFound() {
		fmt.Println("missing not found")
	}

	// Output:
	// found, nil: true
	// missing not found
}

func ExampleNewStore_invalidCapacity() {
	_, err := xlru.NewStore[string, int](0)
	fmt.Println(errors.Is(err, xlru.ErrInvalidCapacity))

	// Output:
	// true
}

func Example_withEvictionCallback() {
	cache, err := xlru.New(xlru.Config{Capacity: 2},
		xlru.WithOnEvicted(func(key string, value int) {
			fmt.Printf("Evicted: %s=%d\n", key, value)
		}))
	if err != nil {
		panic(err)
	}

	cache.Put("key1", 100)
	cache.Put("key2", 200)
	cache.Put("key3", 300)

	fmt.Println("Keys:", cache.Keys())

	// Output:
	// Evicted: key1=100
	// Keys: [key2 key3]
}
