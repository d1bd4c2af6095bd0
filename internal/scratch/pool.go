// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

// Package scratch provides a pool of reusable []int scratch buffers for
// the hot inner loops of ComputeRight/ComputeLeft, Minimize and Multiply:
// all three call into small fixed-shape counting/lookup arrays many times
// per transducer built, and under repeated calls (the P8 enumeration
// property in particular) that would otherwise churn the allocator on
// every call.
package scratch

import (
	"sync"
	"sync/atomic"
)

// IntPool is a type-safe wrapper around sync.Pool, specialized for
// []int buffers of varying length. It tracks basic allocation
// statistics the way the teacher's node pool does, for the same reason:
// cheap visibility into whether pooling is actually paying for itself.
type IntPool struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewIntPool returns a ready-to-use pool.
func NewIntPool() *IntPool {
	p := &IntPool{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		s := make([]int, 0, 64)
		return &s
	}
	return p
}

// Get returns a []int of length n, reused from the pool when the pool
// holds a buffer with sufficient capacity. If p is nil, Get allocates
// directly without tracking, so callers may use a nil *IntPool as a
// trivial "no pooling" fallback.
func (p *IntPool) Get(n int) []int {
	if p == nil {
		return make([]int, n)
	}
	p.currentLive.Add(1)
	sp := p.Pool.Get().(*[]int)
	s := *sp
	if cap(s) < n {
		s = make([]int, n)
	} else {
		s = s[:n]
	}
	return s
}

// Put returns s to the pool for reuse. If p is nil, Put discards s.
func (p *IntPool) Put(s []int) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	s = s[:0]
	p.Pool.Put(&s)
}

// Stats returns the number of buffers currently checked out and the
// total number ever allocated by this pool.
func (p *IntPool) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
