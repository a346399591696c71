// SPDX-License-Identifier: MIT

// Package percolation models an n×n grid of sites, each blocked or open, and
// answers whether water poured on the top row can reach a site (full) or the
// bottom row (percolates).
//
// What:
//
//   - Percolation owns the site grid plus two virtual boundary rows: row 0
//     (virtual top) and row n+1 (virtual bottom), open from construction.
//   - Open(row, col) opens a site and unions it with every open orthogonal
//     neighbour, so connectivity is maintained incrementally.
//   - Percolates() is a single union-find query between the two virtual rows.
//
// Why two union-find structures:
//
//	A single structure that contains both virtual rows suffers from backwash:
//	once the grid percolates, a bottom-row site connected only to the bottom
//	boundary would look connected to the top. The "full" structure therefore
//	never links the virtual bottom row; the "perc" structure links both.
//
// Coordinates:
//
//	Rows and columns are 1-indexed, 1 ≤ row, col ≤ n.
//
//	      col: 1   2   3
//	row 0  ┌ ─ ─ ─ ─ ─ ─ ─ ┐  virtual top (always open)
//	row 1  │ □   ■   □     │
//	row 2  │ □   □   ■     │  □ open, ■ blocked
//	row 3  │ ■   □   □     │
//	row 4  └ ─ ─ ─ ─ ─ ─ ─ ┘  virtual bottom (always open)
//
// Complexity:
//
//   - New: O(n²) time and memory.
//   - Open: O(α(n²)) amortized (at most 4 unions per structure).
//   - IsOpen: O(1). IsFull, Percolates: O(α(n²)) amortized.
//
// Errors:
//
//   - ErrInvalidArgument: n < 1.
//   - ErrOutOfRange: row or col outside [1, n]; the model stays usable.
//
// The backing disjoint-set is pluggable via WithUnionFind; the default is
// unionfind.Weighted.
package percolation
