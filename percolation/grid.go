// SPDX-License-Identifier: MIT
// Package: percolation
//
// grid.go - owned site container with two virtual boundary rows.
//
// Memory map is row-major over n+2 rows of n cells:
//
//	row 0        virtual top
//	rows 1..n    client sites
//	row n+1      virtual bottom

package percolation

// siteGrid stores open flags for n*(n+2) cells.
type siteGrid struct {
	n    int
	open []bool
}

func newSiteGrid(n int) *siteGrid {
	g := &siteGrid{
		n:    n,
		open: make([]bool, n*(n+2)),
	}
	for col := 1; col <= n; col++ {
		g.open[g.index(0, col)] = true
		g.open[g.index(n+1, col)] = true
	}

	return g
}

// cells returns the size of the backing index space.
func (g *siteGrid) cells() int {
	return len(g.open)
}

// inBounds reports whether (row, col) addresses a client site.
func (g *siteGrid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps (row, col) to n*row + (col-1). Row saturates to [0, n+1] and
// col to [1, n], so neighbour lookups past an edge fold back onto the cell itself.
func (g *siteGrid) index(row, col int) int {
	if row < 0 {
		row = 0
	}
	if row > g.n+1 {
		row = g.n + 1
	}
	if col < 1 {
		col = 1
	}
	if col > g.n {
		col = g.n
	}

	return g.n*row + (col - 1)
}

// neighbours returns the clamped indices of the up, down, left and right cells.
func (g *siteGrid) neighbours(row, col int) [4]int {
	return [4]int{
		g.index(row-1, col),
		g.index(row+1, col),
		g.index(row, col-1),
		g.index(row, col+1),
	}
}

// isVirtualBottom reports whether idx lies in row n+1.
func (g *siteGrid) isVirtualBottom(idx int) bool {
	return idx >= g.n*(g.n+1)
}

func (g *siteGrid) isOpen(idx int) bool {
	return g.open[idx]
}

func (g *siteGrid) markOpen(idx int) {
	g.open[idx] = true
}

// top and bottom are the representative cells of the virtual rows.
func (g *siteGrid) top() int    { return g.index(0, 1) }
func (g *siteGrid) bottom() int { return g.index(g.n+1, g.n) }
