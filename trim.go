// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "github.com/freeband-go/freeband/internal/digraph"

// ConnectedStates returns, for every state of t, whether it lies on some
// path from the initial state to some terminal state (spec.md I3/§4.C).
// The empty transducer yields an empty (zero-length) result.
func ConnectedStates(t *Transducer) []bool {
	n := t.N()
	if n == 0 {
		return nil
	}

	g := t.UnderlyingDigraph()

	var fromInitial []bool
	if q, ok := t.Initial(); ok {
		fromInitial = digraph.IsReachable(g, []int{q})
	} else {
		fromInitial = make([]bool, n)
	}

	terminals := make([]int, 0, n)
	for q := 0; q < n; q++ {
		if t.IsTerminal(q) {
			terminals = append(terminals, q)
		}
	}
	toTerminal := digraph.IsReachable(digraph.Reverse(g), terminals)

	connected := make([]bool, n)
	for q := 0; q < n; q++ {
		connected[q] = fromInitial[q] && toTerminal[q]
	}
	return connected
}

// InducedSubtransducer returns the subtransducer induced by the subset
// of states for which keep is true, renumbered to 0..|S|-1 in their
// original relative order; transitions leaving S are dropped (both
// delta and lambda set to ⊥ for that cell), and the initial state maps
// over only if it is itself in S.
func InducedSubtransducer(t *Transducer, keep []bool) *Transducer {
	n := t.N()
	if n == 0 {
		return NewTransducer()
	}

	newID := rowPool.Get(n)
	defer rowPool.Put(newID)
	for i := range newID {
		newID[i] = none
	}

	nt := NewTransducer()
	for q := 0; q < n; q++ {
		if !keep[q] {
			continue
		}
		var next, out [2]int
		for a := 0; a < 2; a++ {
			nq, ok := t.Next(q, a)
			if ok && keep[nq] {
				o, _ := t.Out(q, a)
				next[a], out[a] = newID[nq], o
			} else {
				next[a], out[a] = none, none
			}
		}
		newID[q] = nt.addState(next, out, t.IsTerminal(q), t.Label(q))
	}

	if q, ok := t.Initial(); ok && keep[q] {
		nt.SetInitial(newID[q])
	}
	return nt
}

// Trim returns the subtransducer of t induced by its connected states
// (spec.md §4.C): trim(t) = InducedSubtransducer(t, ConnectedStates(t)).
// The empty transducer trims to itself.
func Trim(t *Transducer) *Transducer {
	return InducedSubtransducer(t, ConnectedStates(t))
}
