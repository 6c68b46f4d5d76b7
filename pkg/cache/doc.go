// Package cache provides a small generic LRU cache.
//
// # Overview
//
// LRU is a fixed-capacity, thread-safe least recently used cache keyed by
// any comparable type. Get and Put are O(1); when the cache is full, Put
// evicts the entry that was read or written longest ago.
//
// The validator keeps compiled regex rule patterns in one, so a schema
// served over HTTP compiles each pattern once rather than once per request,
// while a stream of distinct patterns cannot grow memory without bound.
//
// # Usage
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](256)
//
//	re, err := patterns.GetOrCreate(src, func() (*regexp.Regexp, error) {
//		return regexp.Compile(src)
//	})
//	if err != nil {
//		return err
//	}
//
// Plain Get and Put work as expected:
//
//	c := cache.NewLRU[string, int](2)
//	c.Put("a", 1)
//	c.Put("b", 2)
//	c.Get("a")    // 1, true; "a" is now most recent
//	c.Put("c", 3) // evicts "b"
//	c.Len()       // 2
//
// # Concurrency
//
// All methods are safe for concurrent use. GetOrCreate builds the value
// outside the lock, so two goroutines missing the same key at once may both
// call create; the last Put wins. Errors from create are returned as is and
// nothing is cached, so a failing build is retried on the next call.
//
// # Capacity
//
// Size the cache for the working set, not for the worst case. The regex
// rule uses 256 entries: a service usually serves a handful of schemas with
// a few patterns each, and an evicted pattern only costs one recompilation.
// Keys must be comparable; pattern sources are used as is, so two spellings
// of the same expression occupy two entries.
//
// Remove deletes one entry and reports whether it was present; there is no
// expiry, entries leave only through eviction or Remove.
//
// NewLRU panics when capacity is not positive.
package cache
