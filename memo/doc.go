// Package memo provides explicit memoization for recursive combinatorial
// searches and compact visited-set representations for small node sets.
//
// Overview:
//
//   - Cache is a plain map-backed memo table owned by the caller and passed by
//     reference into the recursion. There is no hidden or package-level cache:
//     two independent computations never share entries.
//   - Recursive wraps a two-argument recursive definition (self, key) into a
//     memoized function plus the Cache that backs it.
//   - NewBounded caps the table with least-recently-used eviction. Eviction is
//     always safe for memoization since an evicted entry is simply recomputed.
//   - Mask is a 64-bit set of small integer IDs, and Indexer assigns those IDs
//     to arbitrary comparable names (cave names, valve labels, key letters).
//     Masks replace cloned per-path hash sets in path-enumeration searches.
//
// Keys must fully determine the result: every recursion parameter that
// influences the value belongs in the key type.
//
// Example (counting stones after repeated splitting):
//
//	count, cache := memo.Recursive(func(self func(stone) int, s stone) int {
//	    if s.blinks == 0 {
//	        return 1
//	    }
//	    ...
//	})
//	total := count(stone{value: 125, blinks: 75})
//	_ = cache.Len()
//
// Thread safety: none. Each computation owns its cache exclusively.
package memo
