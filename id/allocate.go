// Package id implements the deterministic minimal-free-ID allocator (C3):
// given the set of IDs already in use among a group of siblings and an
// ordered sequence of entities still lacking one, it assigns each pending
// entity the smallest positive integer not already used by a sibling,
// walking the candidates in the order they appear.
//
// The allocator has no memory across calls: it never persists a counter, so
// a build that deletes and re-adds entities can and does reuse the freed
// IDs within that same build. That is intentional (see the package's
// caller in the layout package's builders), not an oversight.
package id

// Allocate assigns IDs to pendingCount entities, skipping every ID already
// present in used. It returns the assigned IDs in the same order the
// pending entities were supplied, and does not mutate used.
func Allocate(used map[int32]bool, pendingCount int) []int32 {
	assigned := make([]int32, 0, pendingCount)
	taken := make(map[int32]bool, len(used)+pendingCount)
	for k, v := range used {
		taken[k] = v
	}
	next := int32(1)
	for i := 0; i < pendingCount; i++ {
		for taken[next] {
			next++
		}
		assigned = append(assigned, next)
		taken[next] = true
		next++
	}
	return assigned
}
