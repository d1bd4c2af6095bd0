// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// PrecomputeQ returns the a-spine from q: [q, delta(q,a), delta(delta(q,a),a), ...]
// ending at the state where delta becomes undefined (spec.md §4.H). Passing
// a == 1 from a transducer's initial state gives its "1-spine"; a == 0
// gives its "0-spine". The returned slice always has length >= 1.
func PrecomputeQ(t *Transducer, q, a int) []int {
	result := []int{q}
	for {
		nq, ok := t.Next(q, a)
		if !ok {
			return result
		}
		q = nq
		result = append(result, q)
	}
}

// TransducerCont returns the content of the free-band element realized
// from state q: the set {lambda(p, 0) : p on the 0-spine from q, lambda(p,0)
// defined} (spec.md §4.H, §6). For q the initial state of a transducer
// realizing a word w, this is exactly cont(w).
func TransducerCont(t *Transducer, q int) *bitset.BitSet {
	b := bitset.New(0)
	for _, p := range PrecomputeQ(t, q, 0) {
		if o, ok := t.Out(p, 0); ok {
			b.Set(uint(o))
		}
	}
	return b
}

// ContentSlice returns b's members as an ascending sorted slice, the
// display-friendly counterpart of TransducerCont's bitset (spec.md §6's
// "set of output letters" is order-agnostic; callers printing it want a
// deterministic order, the same way the teacher sorts prefixes before
// printing a table).
func ContentSlice(b *bitset.BitSet) []int {
	letters := make([]int, 0, b.Count())
	for letter, ok := b.NextSet(0); ok; letter, ok = b.NextSet(letter + 1) {
		letters = append(letters, int(letter))
	}
	slices.Sort(letters)
	return letters
}
