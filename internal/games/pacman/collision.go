package pacman

// Overlaps reports whether two entities' rectangles intersect.
// Touching edges do not count.
func Overlaps(a, b Entity) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// firstOverlap returns the index of the first entity in set overlapping e,
// or -1 when none does.
func firstOverlap(e Entity, set []Entity) int {
	for i := range set {
		if Overlaps(e, set[i]) {
			return i
		}
	}
	return -1
}

// overlapsAny reports whether e overlaps any entity in set.
func overlapsAny(e Entity, set []Entity) bool {
	return firstOverlap(e, set) >= 0
}
