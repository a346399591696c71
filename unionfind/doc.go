// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set (union-find) capability over a
// fixed universe of integer elements 0..n-1.
//
// What:
//
//   - UnionFind is the capability interface: Find, Union, Connected, Len, Count.
//   - Weighted implements it with union by size and path halving.
//   - Factory builds a fresh UnionFind of a given size; DefaultFactory builds Weighted.
//
// Why:
//
//   - Incremental connectivity: merge components as edges appear and answer
//     "same component?" queries without a graph traversal.
//   - Consumers (percolation.Percolation) depend on the interface only, so any
//     conforming implementation can be plugged in through a Factory.
//
// Complexity:
//
//   - NewWeighted: O(n) time and memory.
//   - Find, Union, Connected: O(α(n)) amortized.
//   - Len, Count: O(1).
//
// Errors:
//
//   - ErrInvalidSize: requested universe size is smaller than 1.
//
// Indices outside [0, Len()) are a caller bug; implementations are not required
// to validate them on the hot path.
package unionfind
