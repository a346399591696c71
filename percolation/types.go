// SPDX-License-Identifier: MIT
// Package: percolation
//
// types.go - sentinel errors and functional options.

package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidArgument indicates an invalid grid size (n < 1).
	ErrInvalidArgument = errors.New("percolation: grid size must be >= 1")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site index out of range")
)

// Method tags used to prefix wrapped errors.
const (
	methodNew    = "New"
	methodOpen   = "Open"
	methodIsOpen = "IsOpen"
	methodIsFull = "IsFull"
)

// Option customizes a Percolation before its structures are allocated.
type Option func(*config)

type config struct {
	newUnionFind unionfind.Factory
}

func newConfig(opts []Option) config {
	cfg := config{newUnionFind: unionfind.DefaultFactory}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithUnionFind sets the factory used for both disjoint-set structures.
// Panics on nil.
func WithUnionFind(f unionfind.Factory) Option {
	if f == nil {
		panic("percolation: WithUnionFind(nil)")
	}
	return func(c *config) {
		c.newUnionFind = f
	}
}
