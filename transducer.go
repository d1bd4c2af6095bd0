// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import (
	"iter"

	"github.com/freeband-go/freeband/internal/digraph"
)

// none is the sentinel for delta/lambda's undefined value (bot, written
// ⊥ in spec.md). State ids and output letters are both non-negative by
// domain (I4, the output alphabet is a prefix of the naturals), so -1 is
// never a legal value for either and unambiguously marks "undefined".
//
// delta and lambda are stored as one struct per (state, input) cell
// rather than as two independently-sentineled arrays: AddState is the
// only place a cell is written, and it sets next/out together or not at
// all, so invariant I1 (delta and lambda jointly defined) is enforced by
// construction instead of needing to be checked against drift between
// two separate arrays.
const none = -1

// cell is one (state, input) transition: the next state and the emitted
// output letter, or both none.
type cell struct {
	next int
	out  int
}

func (c cell) defined() bool { return c.next != none }

// Transducer is a deterministic, acyclic, synchronous 2-input
// transducer over input alphabet {0, 1}: the concrete representation of
// a free-band element (spec.md §3).
//
// States are identified by their position in an append-only arena
// (AddState), never by pointer: a transition may only target a state
// that was added earlier, which both satisfies I4 (ids are positions)
// and guarantees I2 (acyclicity) by construction, since every edge goes
// from a higher to a strictly lower or absent id.
//
// NewTransducer returns the empty transducer (N=0, initial=⊥). The zero
// Transducer value is not the same: its initial field is 0 rather than
// none, so Initial reports state 0 even though it has no states.
//
// A *Transducer is immutable once it leaves the function that built it;
// nothing in this package mutates one in place after that point.
type Transducer struct {
	initial int // none for the empty transducer
	states  []state
}

type state struct {
	trans [2]cell
	term  bool
	label string
}

// NewTransducer returns the empty transducer.
func NewTransducer() *Transducer {
	return &Transducer{initial: none}
}

// N returns the number of states.
func (t *Transducer) N() int { return len(t.states) }

// Initial returns the initial state id, or (0, false) if the transducer
// is empty.
func (t *Transducer) Initial() (int, bool) {
	if t.initial == none {
		return 0, false
	}
	return t.initial, true
}

// SetInitial sets the initial state. q must be none (⊥) or a valid
// state id; builders call this once, after all states have been added,
// since the initial state is usually the last state a bottom-up builder
// produces.
func (t *Transducer) SetInitial(q int) {
	if q != none && (q < 0 || q >= len(t.states)) {
		invariantf("freeband: SetInitial: state %d out of range [0,%d)", q, len(t.states))
	}
	t.initial = q
}

// AddState appends a new state and returns its id. next and out give the
// (state, letter) pair for inputs 0 and 1 respectively; next[a]==none
// must hold exactly when out[a]==none (I1). Any defined next[a] must
// reference an already-added state (I2/I4): this is the only kind of
// state Add State can append consistently.
func (t *Transducer) AddState(next [2]int, out [2]int, terminal bool) int {
	return t.addState(next, out, terminal, "")
}

// AddStateLabeled is AddState plus a human-readable debugging label
// (spec.md §3's optional "label" field). Labels play no role in any
// algorithm; they exist purely for diagnostics.
func (t *Transducer) AddStateLabeled(next [2]int, out [2]int, terminal bool, label string) int {
	return t.addState(next, out, terminal, label)
}

func (t *Transducer) addState(next [2]int, out [2]int, terminal bool, label string) int {
	id := len(t.states)
	var trans [2]cell
	for a := range 2 {
		n, o := next[a], out[a]
		if (n == none) != (o == none) {
			invariantf("freeband: AddState: state %d input %d has delta/lambda defined on only one side (next=%d, out=%d)", id, a, n, o)
		}
		if n != none {
			if n < 0 || n >= id {
				invariantf("freeband: AddState: state %d input %d targets state %d, which does not already exist (only states < %d exist)", id, a, n, id)
			}
			if o < 0 {
				invariantf("freeband: AddState: state %d input %d has negative output letter %d", id, a, o)
			}
		}
		trans[a] = cell{next: n, out: o}
	}
	t.states = append(t.states, state{trans: trans, term: terminal, label: label})
	return id
}

// IsTerminal reports whether q is a terminal (accepting) state.
func (t *Transducer) IsTerminal(q int) bool {
	t.checkState(q)
	return t.states[q].term
}

// Next returns (delta(q,a), true), or (0, false) if delta(q,a) is ⊥.
func (t *Transducer) Next(q, a int) (int, bool) {
	t.checkState(q)
	c := t.states[q].trans[checkInput(a)]
	if !c.defined() {
		return 0, false
	}
	return c.next, true
}

// Out returns (lambda(q,a), true), or (0, false) if lambda(q,a) is ⊥.
func (t *Transducer) Out(q, a int) (int, bool) {
	t.checkState(q)
	c := t.states[q].trans[checkInput(a)]
	if !c.defined() {
		return 0, false
	}
	return c.out, true
}

// Label returns q's optional debugging label.
func (t *Transducer) Label(q int) string {
	t.checkState(q)
	return t.states[q].label
}

func (t *Transducer) checkState(q int) {
	if q < 0 || q >= len(t.states) {
		invariantf("freeband: state %d out of range [0,%d)", q, len(t.states))
	}
}

func checkInput(a int) int {
	if a != 0 && a != 1 {
		invariantf("freeband: input letter %d is not 0 or 1", a)
	}
	return a
}

// Traverse walks delta from the initial state consuming input, an
// ordered sequence of 0/1 letters. It returns the sequence of emitted
// output letters and true iff a terminal state is reached after
// consuming input exactly; otherwise (nil, false) — either a transition
// was missing mid-walk or the final state is not terminal. This is a
// domain result (spec.md §7), never an error.
func (t *Transducer) Traverse(input []int) ([]int, bool) {
	q, ok := t.Initial()
	if !ok {
		return nil, false
	}
	out := make([]int, 0, len(input))
	for _, a := range input {
		nq, ok := t.Next(q, a)
		if !ok {
			return nil, false
		}
		o, _ := t.Out(q, a)
		out = append(out, o)
		q = nq
	}
	if !t.IsTerminal(q) {
		return nil, false
	}
	return out, true
}

// States returns an iterator over every state id in ascending order
// together with its terminal flag, the transducer-domain counterpart of
// the teacher's Table.All-style range-over-func iterators (e.g.
// barttable.go's Supernets/Subnets).
func (t *Transducer) States() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for q, st := range t.states {
			if !yield(q, st.term) {
				return
			}
		}
	}
}

// UnderlyingDigraph returns the de-duplicated, ordered adjacency list of
// the transition graph: an edge q -> delta(q,a) for every defined
// transition.
func (t *Transducer) UnderlyingDigraph() digraph.Graph {
	g := make(digraph.Graph, len(t.states))
	for q, st := range t.states {
		seen := make(map[int]bool, 2)
		for _, c := range st.trans {
			if c.defined() && !seen[c.next] {
				seen[c.next] = true
				g[q] = append(g[q], c.next)
			}
		}
	}
	return g
}
