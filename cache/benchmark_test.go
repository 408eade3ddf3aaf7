package cache

import (
	"testing"

	"lrucache/logging"
)

func newBenchCache(b *testing.B, capacity int) Cache[int, int] {
	b.Helper()
	c, err := NewLRUCache[int, int](*logging.CreateSilentLogger(), Options{Capacity: capacity})
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func BenchmarkPutOverwrite(b *testing.B) {
	c := newBenchCache(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(1, i)
	}
}

func BenchmarkPutEvict(b *testing.B) {
	c := newBenchCache(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(i, i)
	}
}

func BenchmarkGetHit(b *testing.B) {
	c := newBenchCache(b, 1024)
	for i := 0; i < 1024; i++ {
		c.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i % 1024)
	}
}

func BenchmarkGetMiss(b *testing.B) {
	c := newBenchCache(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(-1)
	}
}
