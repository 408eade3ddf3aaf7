package main

import (
	"lrucache/cache"
	"lrucache/logging"
)

func main() {
	logger := logging.CreateDebugLogger()

	store, err := cache.NewLRUCache[string, int](*logger, cache.Options{
		Capacity: cache.DefaultCapacity,
	})

	if err != nil {
		logger.Error().Err(err).Msg("failed to create cache")
		return
	}

	store.Put("a", 1)
	store.Put("b", 2)
	store.Put("c", 3)

	// reading "a" makes it the most recently used entry, so the next
	// insert past capacity evicts "b" instead
	if value, ok := store.Get("a"); ok {
		logger.Info().Msgf("a = %d", value)
	}

	store.Put("d", 4)
	logger.Info().Msgf("resident keys oldest to newest: %v", store.Keys())

	store.Update("c", 33)
	store.Delete("a")

	store.Range(func(key string, value int) bool {
		logger.Info().Msgf("%s = %d", key, value)
		return true
	})

	stats := store.Stats()
	logger.Info().Msgf("hits=%d misses=%d evictions=%d", stats.Hits, stats.Misses, stats.Evictions)
}
