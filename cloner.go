// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

// appendCopy appends a disjoint copy of src's states onto the end of
// dst's arena and returns src's initial state translated into dst's id
// space (or none if src is empty). It is the transducer-domain
// counterpart of the teacher's Cloner[V]-driven deep copy: instead of
// cloning a payload value, it clones an entire state graph so that two
// transducers can be embedded side by side in one arena, the way
// TreelikeTransducer grafts its two child transducers onto a new root
// and Multiply assembles disjoint copies of its two operands (spec.md
// §4.E, §4.H step 1).
//
// Every transition inside src only ever targets a strictly lower src id
// (the arena's acyclicity invariant), so shifting every id by dst's
// current size preserves that invariant in dst: copied transitions
// still only ever target already-appended states.
func appendCopy(dst *Transducer, src *Transducer) int {
	offset := dst.N()
	for q, terminal := range src.States() {
		var next, out [2]int
		for a := 0; a < 2; a++ {
			if n, ok := src.Next(q, a); ok {
				o, _ := src.Out(q, a)
				next[a], out[a] = n+offset, o
			} else {
				next[a], out[a] = none, none
			}
		}
		dst.addState(next, out, terminal, src.Label(q))
	}
	if q, ok := src.Initial(); ok {
		return q + offset
	}
	return none
}
