// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "github.com/freeband-go/freeband/internal/digraph"

// signature is the Revuz key for a state: the tuple of (representative
// of each child, or none) paired with the tuple of output letters on
// each input. Two states with equal signatures behave identically and
// can be merged.
type signature struct {
	child [2]int
	out   [2]int
}

// Minimize returns the minimal transducer equivalent to t (spec.md
// §4.F): trim t, then collapse states with identical Revuz signatures,
// processing them in reverse topological order so that every state's
// signature is computed from already-finalized child representatives,
// exactly as Revuz minimization does for acyclic automata. States merged
// into a representative are never emitted; the result is trimmed once
// more before it is returned.
//
// Uses a hash map from signature to representative state id rather than
// a genuine radix sort: acceptable here since transducer sizes in this
// library are driven by input word length, not by requirements for
// asymptotically optimal minimization.
//
// The new arena is built by re-emitting states in the very same reverse
// topological order used to compute representatives: a state's
// representative can only ever resolve to a state at or beyond its own
// topological position (moving toward the terminal side), so by the
// time a state is re-emitted every child it refers to has already been
// re-emitted, which keeps the arena's "transitions only target
// already-added states" invariant intact without assuming anything
// about original numeric ids.
func Minimize(t *Transducer) *Transducer {
	trimmed := Trim(t)
	n := trimmed.N()
	if n == 0 {
		return trimmed
	}

	topo, ok := digraph.TopologicalOrder(trimmed.UnderlyingDigraph())
	if !ok {
		invariantf("freeband: Minimize: internal error, trim transducer is not acyclic")
	}

	representative := rowPool.Get(n)
	defer rowPool.Put(representative)
	for q := range representative {
		representative[q] = q
	}

	out := NewTransducer()
	remap := rowPool.Get(n)
	defer rowPool.Put(remap)
	for i := range remap {
		remap[i] = none
	}

	seen := make(map[signature]int, n)
	for i := n - 1; i >= 0; i-- {
		q := topo[i]
		var sig signature
		for a := 0; a < 2; a++ {
			nq, ok := trimmed.Next(q, a)
			if !ok {
				sig.child[a], sig.out[a] = none, none
				continue
			}
			o, _ := trimmed.Out(q, a)
			sig.child[a], sig.out[a] = representative[nq], o
		}

		if rep, ok := seen[sig]; ok {
			representative[q] = rep
			continue
		}
		seen[sig] = q
		representative[q] = q

		var next, outLetter [2]int
		for a := 0; a < 2; a++ {
			if sig.child[a] == none {
				next[a], outLetter[a] = none, none
				continue
			}
			next[a], outLetter[a] = remap[sig.child[a]], sig.out[a]
		}
		remap[q] = out.addState(next, outLetter, trimmed.IsTerminal(q), trimmed.Label(q))
	}

	if q, ok := trimmed.Initial(); ok {
		out.SetInitial(remap[representative[q]])
	}

	// Mirrors the reference implementation's final trim after patching
	// representatives: every emitted state should already be connected
	// (it is reachable via the same edges its equivalence class had in
	// trimmed), but trimming again is a cheap safety net against subtle
	// reachability gaps rather than a load-bearing step.
	return Trim(out)
}
