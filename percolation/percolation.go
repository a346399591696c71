// SPDX-License-Identifier: MIT
// Package: percolation
//
// percolation.go - the grid connectivity model.
//
// Contract:
//   • Sites only move blocked → open; Open on an open site is a no-op.
//   • After Open returns, every pair of open orthogonal neighbours shares a
//     component in perc, and in full unless one of them is virtual bottom.
//   • Public methods validate coordinates and return ErrOutOfRange; the
//     private index math never sees client input outside [1, n].

package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// Percolation is an n×n percolation system. It is not safe for concurrent use.
type Percolation struct {
	n      int
	sites  *siteGrid
	full   unionfind.UnionFind // virtual top only; answers IsFull
	perc   unionfind.UnionFind // virtual top and bottom; answers Percolates
	opened int
}

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidArgument if n < 1; factory errors are wrapped and returned.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Percolation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidArgument)
	}
	cfg := newConfig(opts)

	sites := newSiteGrid(n)
	full, err := cfg.newUnionFind(sites.cells())
	if err != nil {
		return nil, fmt.Errorf("%s: full structure: %w", methodNew, err)
	}
	perc, err := cfg.newUnionFind(sites.cells())
	if err != nil {
		return nil, fmt.Errorf("%s: percolation structure: %w", methodNew, err)
	}

	// Each virtual row collapses into a single component.
	top, bottom := sites.top(), sites.bottom()
	for col := 2; col <= n; col++ {
		full.Union(top, sites.index(0, col))
		perc.Union(top, sites.index(0, col))
		perc.Union(bottom, sites.index(n+1, col-1))
	}

	return &Percolation{
		n:     n,
		sites: sites,
		full:  full,
		perc:  perc,
	}, nil
}

// N returns the side length of the grid.
func (p *Percolation) N() int {
	return p.n
}

// NumberOfOpenSites returns how many client sites have been opened.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.opened
}

// Open opens site (row, col) and links it to its open neighbours.
// Opening an already open site is a no-op.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(row, col int) error {
	if !p.sites.inBounds(row, col) {
		return p.outOfRange(methodOpen, row, col)
	}
	idx := p.sites.index(row, col)
	if p.sites.isOpen(idx) {
		return nil
	}
	p.sites.markOpen(idx)
	p.opened++

	for _, nb := range p.sites.neighbours(row, col) {
		if nb == idx || !p.sites.isOpen(nb) {
			continue
		}
		p.perc.Union(idx, nb)
		if !p.sites.isVirtualBottom(nb) {
			p.full.Union(idx, nb)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if !p.sites.inBounds(row, col) {
		return false, p.outOfRange(methodIsOpen, row, col)
	}

	return p.sites.isOpen(p.sites.index(row, col)), nil
}

// IsFull reports whether site (row, col) is open and connected to the top row
// through open sites.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if !p.sites.inBounds(row, col) {
		return false, p.outOfRange(methodIsFull, row, col)
	}
	idx := p.sites.index(row, col)
	if !p.sites.isOpen(idx) {
		return false, nil
	}

	return p.full.Connected(p.sites.top(), idx), nil
}

// Percolates reports whether the top row connects to the bottom row.
// Evaluated on every call.
func (p *Percolation) Percolates() bool {
	return p.perc.Connected(p.sites.top(), p.sites.bottom())
}

// Snapshot returns a copy of the open flags of the client sites,
// indexed [row-1][col-1].
// Complexity: O(n²) time and memory.
func (p *Percolation) Snapshot() [][]bool {
	out := make([][]bool, p.n)
	for row := 1; row <= p.n; row++ {
		start := p.sites.index(row, 1)
		out[row-1] = make([]bool, p.n)
		copy(out[row-1], p.sites.open[start:start+p.n])
	}

	return out
}

func (p *Percolation) outOfRange(method string, row, col int) error {
	return fmt.Errorf("%s: (row=%d, col=%d) not in [1,%d]: %w", method, row, col, p.n, ErrOutOfRange)
}
