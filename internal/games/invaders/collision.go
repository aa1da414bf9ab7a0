package invaders

import "sort"

// Collisions is the outcome of one group-vs-group query.
// Indexes refer to the slices passed to CollideGroups.
type Collisions struct {
	Hits     map[int][]int // A index -> ascending B indexes it overlaps
	RemovedA []int         // ascending
	RemovedB []int         // ascending
}

// Empty reports whether nothing collided.
func (c Collisions) Empty() bool {
	return len(c.Hits) == 0
}

// CollideGroups tests every live member of as against every live member of bs.
// It does not modify either group: the result is computed from the positions
// as they are, so it is the same whatever order the groups are in. removeA and
// removeB select which colliding members are reported for removal; applying
// the removal is up to the caller.
func CollideGroups[A, B Body](as []A, bs []B, removeA, removeB bool) Collisions {
	c := Collisions{Hits: make(map[int][]int)}
	struck := make(map[int]struct{})

	for i, a := range as {
		if !a.Alive() {
			continue
		}
		ra := a.Bounds()
		for j, b := range bs {
			if !b.Alive() || !ra.Overlaps(b.Bounds()) {
				continue
			}
			c.Hits[i] = append(c.Hits[i], j)
			struck[j] = struct{}{}
		}
	}

	if removeA {
		for i := range c.Hits {
			c.RemovedA = append(c.RemovedA, i)
		}
		sort.Ints(c.RemovedA)
	}
	if removeB {
		for j := range struck {
			c.RemovedB = append(c.RemovedB, j)
		}
		sort.Ints(c.RemovedB)
	}
	return c
}

// CollideAny reports whether body overlaps any live member of bs.
func CollideAny[B Body](body Bounded, bs []B) bool {
	r := body.Bounds()
	for _, b := range bs {
		if b.Alive() && r.Overlaps(b.Bounds()) {
			return true
		}
	}
	return false
}
