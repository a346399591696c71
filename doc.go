// Package percolation is the root of a small toolkit for estimating the
// site-percolation threshold of a square lattice.
//
// 🚀 What is inside?
//
//	• unionfind/   - disjoint-set capability + weighted quick-union (union by size, path halving)
//	• percolation/ - n×n grid model with virtual top/bottom rows; Open, IsOpen, IsFull, Percolates
//	• montecarlo/  - repeated randomized trials; mean, stddev, confidence interval, summary
//	• cmd/         - percolation (stdin driver) and percolationstats (Monte Carlo driver)
//
// ✨ Why two union-find structures?
//
//	One structure with both virtual rows answers Percolates in O(α) but reports
//	false "full" sites once the grid percolates (backwash). A second structure
//	without the bottom row answers IsFull exactly.
//
// Quick ASCII example (n=3, □ open, ■ blocked):
//
//	□ ■ ■
//	□ □ ■     percolates: the open path (1,1)→(2,1)→(2,2)→(3,2)
//	■ □ ■     reaches the bottom row.
//
// Dependency order: unionfind ← percolation ← montecarlo ← cmd.
//
//	go get github.com/katalvlaran/percolation
package percolation
