package collections

// Set is an unordered collection of unique values.
type Set[V comparable] map[V]struct{}

// NewSet creates a set holding the given values.
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, v := range values {
		set.Add(v)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Difference returns a new Set containing all elements from the calling set
// not present in the other set
func (set Set[V]) Difference(other Set[V]) Set[V] {
	difference := make(Set[V])
	for v := range set {
		if !other.Contains(v) {
			difference.Add(v)
		}
	}
	return difference
}

// Intersection returns a new Set containing all elements present in both sets
func (set Set[V]) Intersection(other Set[V]) Set[V] {
	intersection := make(Set[V])
	for v := range set {
		if other.Contains(v) {
			intersection.Add(v)
		}
	}
	return intersection
}

// IntersectionEx returns a new Set containing all elements present in both
// sets, and a boolean indicating whether the calling set is a non-strict
// subset of the other
func (set Set[V]) IntersectionEx(other Set[V]) (Set[V], bool) {
	isSubset := true
	intersection := make(Set[V])
	for v := range set {
		if other.Contains(v) {
			intersection.Add(v)
		} else {
			isSubset = false
		}
	}
	return intersection, isSubset
}
