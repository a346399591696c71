// SPDX-License-Identifier: MIT
// Package: unionfind
//
// types.go - capability interface, factory type and sentinel errors.

package unionfind

import "errors"

// ErrInvalidSize indicates that a union-find universe must hold at least one element.
var ErrInvalidSize = errors.New("unionfind: size must be >= 1")

// UnionFind is a disjoint-set structure over the elements 0..Len()-1.
// All index arguments must lie in [0, Len()).
type UnionFind interface {
	// Find returns the canonical root of p's component.
	Find(p int) int
	// Union merges the components of p and q. Merging a component with itself is a no-op.
	Union(p, q int)
	// Connected reports whether p and q belong to the same component.
	Connected(p, q int) bool
	// Len returns the size of the universe.
	Len() int
	// Count returns the current number of components.
	Count() int
}

// Factory constructs a fresh UnionFind over n elements.
type Factory func(n int) (UnionFind, error)

// DefaultFactory builds a *Weighted structure.
func DefaultFactory(n int) (UnionFind, error) {
	w, err := NewWeighted(n)
	if err != nil {
		return nil, err
	}

	return w, nil
}
