// SPDX-License-Identifier: MIT
// Package: unionfind
//
// weighted.go - weighted quick-union with path halving.
//
// Contract:
//   • Union attaches the root of the smaller tree under the root of the larger
//     one (ties: q's root goes under p's root), so tree height stays O(log n).
//   • Find halves the path it walks (every node points to its grandparent),
//     which keeps subsequent lookups near-constant.
//   • Count starts at n and drops by one per effective union.

package unionfind

import "fmt"

const methodNewWeighted = "NewWeighted"

var _ UnionFind = (*Weighted)(nil)

// Weighted is a union-by-size disjoint-set forest.
type Weighted struct {
	parent []int // parent[i] == i for roots
	size   []int // size[r] is the element count of the tree rooted at r
	count  int   // number of components
}

// NewWeighted returns a Weighted structure with n singleton components.
// Returns ErrInvalidSize when n < 1.
// Complexity: O(n) time and memory.
func NewWeighted(n int) (*Weighted, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewWeighted, n, ErrInvalidSize)
	}
	w := &Weighted{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		w.parent[i] = i
		w.size[i] = 1
	}

	return w, nil
}

// Find returns the root of p, halving the path on the way up.
// Complexity: O(α(n)) amortized.
func (w *Weighted) Find(p int) int {
	for w.parent[p] != p {
		w.parent[p] = w.parent[w.parent[p]]
		p = w.parent[p]
	}

	return p
}

// Union merges the components of p and q.
// Complexity: O(α(n)) amortized.
func (w *Weighted) Union(p, q int) {
	rootP := w.Find(p)
	rootQ := w.Find(q)
	if rootP == rootQ {
		return
	}
	if w.size[rootP] < w.size[rootQ] {
		w.parent[rootP] = rootQ
		w.size[rootQ] += w.size[rootP]
	} else {
		w.parent[rootQ] = rootP
		w.size[rootP] += w.size[rootQ]
	}
	w.count--
}

// Connected reports whether p and q share a root.
func (w *Weighted) Connected(p, q int) bool {
	return w.Find(p) == w.Find(q)
}

// Len returns the universe size.
func (w *Weighted) Len() int {
	return len(w.parent)
}

// Count returns the number of components.
func (w *Weighted) Count() int {
	return w.count
}

// ComponentSize returns the number of elements in p's component.
func (w *Weighted) ComponentSize(p int) int {
	return w.size[w.Find(p)]
}
