// Package tsp - tour structure helpers.
//
// Tours are OPEN permutations of length n: the edge from the last index back
// to the first is implicit.
package tsp

// ValidatePermutation checks that tour is a permutation of {0..n-1}:
// length n, every index in range, no duplicates.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var v int
	for _, v = range tour {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of tour (nil for nil).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// firstUnvisited returns the lowest index with visited[i]==false, or -1.
func firstUnvisited(visited []bool) int {
	var i int
	for i = range visited {
		if !visited[i] {
			return i
		}
	}

	return -1
}
