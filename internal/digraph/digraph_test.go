// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package digraph_test

import (
	"reflect"
	"testing"

	"github.com/freeband-go/freeband/internal/digraph"
)

func TestReverse(t *testing.T) {
	t.Parallel()
	g := digraph.Graph{
		0: {1, 2},
		1: {2},
		2: {},
	}
	got := digraph.Reverse(g)
	want := digraph.Graph{
		0: nil,
		1: {0},
		2: {0, 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reverse(%v) = %v, want %v", g, got, want)
	}
}

func TestReverseEmpty(t *testing.T) {
	t.Parallel()
	got := digraph.Reverse(digraph.Graph{})
	if len(got) != 0 {
		t.Fatalf("Reverse(empty) = %v, want empty", got)
	}
}

func TestIsReachable(t *testing.T) {
	t.Parallel()
	g := digraph.Graph{
		0: {1},
		1: {2},
		2: {},
		3: {2},
	}
	got := digraph.IsReachable(g, []int{0})
	want := []bool{true, true, true, false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("IsReachable = %v, want %v", got, want)
	}
}

func TestIsReachableMultiSource(t *testing.T) {
	t.Parallel()
	g := digraph.Graph{
		0: {1},
		1: {},
		2: {1},
		3: {},
	}
	got := digraph.IsReachable(g, []int{0, 3})
	want := []bool{true, true, false, true}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("IsReachable = %v, want %v", got, want)
	}
}

func TestTopologicalOrderAcyclic(t *testing.T) {
	t.Parallel()
	// 0 -> 2, 1 -> 2, 2 -> 3
	g := digraph.Graph{
		0: {2},
		1: {2},
		2: {3},
		3: {},
	}
	order, ok := digraph.TopologicalOrder(g)
	if !ok {
		t.Fatalf("expected acyclic graph to succeed")
	}
	pos := make([]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for v, succs := range g {
		for _, w := range succs {
			if pos[v] >= pos[w] {
				t.Fatalf("edge %d->%d violates order %v", v, w, order)
			}
		}
	}
	// indegree-0 vertices are 0 and 1; ascending tie-break picks 0 first.
	if order[0] != 0 {
		t.Fatalf("order[0] = %d, want 0 (ascending tie-break)", order[0])
	}
}

func TestTopologicalOrderCycle(t *testing.T) {
	t.Parallel()
	g := digraph.Graph{
		0: {1},
		1: {0},
	}
	_, ok := digraph.TopologicalOrder(g)
	if ok {
		t.Fatalf("expected cyclic graph to fail")
	}
}

func TestTopologicalOrderEmpty(t *testing.T) {
	t.Parallel()
	order, ok := digraph.TopologicalOrder(digraph.Graph{})
	if !ok || len(order) != 0 {
		t.Fatalf("TopologicalOrder(empty) = %v, %v, want [], true", order, ok)
	}
}
