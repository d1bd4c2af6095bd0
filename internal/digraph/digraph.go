// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

// Package digraph implements the small set of graph primitives the
// transducer algorithms are built on: edge reversal, multi-source
// reachability and Kahn's topological sort. It knows nothing about
// transducers; it operates on plain adjacency lists.
package digraph

import "container/heap"

// Graph is an adjacency list: Graph[v] is the de-duplicated, ordered list
// of v's successors.
type Graph [][]int

// Reverse returns a new graph with every edge reversed. Vertex indices
// and the vertex count are preserved; successor lists in the result are
// not guaranteed to be sorted.
func Reverse(g Graph) Graph {
	rev := make(Graph, len(g))
	for v, succs := range g {
		for _, w := range succs {
			rev[w] = append(rev[w], v)
		}
	}
	return rev
}

// IsReachable returns, for every vertex, whether it is reachable from the
// set of start vertices via a directed path of zero or more edges (every
// start vertex is reachable from itself).
func IsReachable(g Graph, start []int) []bool {
	reached := make([]bool, len(g))
	queue := make([]int, 0, len(start))
	for _, s := range start {
		if !reached[s] {
			reached[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g[v] {
			if !reached[w] {
				reached[w] = true
				queue = append(queue, w)
			}
		}
	}
	return reached
}

// intHeap is a min-heap of vertex indices, used by TopologicalOrder to
// break ties on the smallest available index as spec.md requires.
type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)         { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() (x any) {
	old := *h
	n := len(old)
	x, *h = old[n-1], old[:n-1]
	return x
}

// TopologicalOrder computes a topological order of g using Kahn's
// algorithm, seeding the ready queue with indegree-0 vertices and always
// expanding the smallest-index ready vertex. It returns the order and
// true, or a nil slice and false if g contains a cycle.
func TopologicalOrder(g Graph) ([]int, bool) {
	indeg := make([]int, len(g))
	for _, succs := range g {
		for _, w := range succs {
			indeg[w]++
		}
	}

	ready := &intHeap{}
	for v, d := range indeg {
		if d == 0 {
			heap.Push(ready, v)
		}
	}

	order := make([]int, 0, len(g))
	for ready.Len() > 0 {
		v := heap.Pop(ready).(int)
		order = append(order, v)
		for _, w := range g[v] {
			indeg[w]--
			if indeg[w] == 0 {
				heap.Push(ready, w)
			}
		}
	}

	if len(order) != len(g) {
		return nil, false
	}
	return order, true
}
