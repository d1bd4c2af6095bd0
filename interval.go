// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "github.com/freeband-go/freeband/internal/wordops"

// interval identifies a state of the interval transducer by the closed
// index range [i, j] of word it represents.
type interval struct{ i, j int }

// IntervalTransducer builds the interval transducer realizing word in
// linear expected time (spec.md §4.D): for every content size k = 1..N
// it precomputes the prefix/suffix maximal content-k subword indices
// (RIGHT_k, LEFT_k) and allocates one state per distinct interval they
// name, reusing a hash map from interval to state id so repeated
// intervals collapse onto one state as they are discovered.
//
// IntervalTransducer panics on the empty word: pref_ltof/suff_ftol are
// undefined there (spec.md §4.B), so there is no content to found a
// transducer on (see DESIGN.md's Open Question decision on the empty
// word).
func IntervalTransducer(word []int) *Transducer {
	n := len(word)
	if n == 0 {
		invariantf("freeband: IntervalTransducer: word must be non-empty")
	}

	sizeCont := int(wordops.Content(word).Count())
	right := make([][]int, sizeCont)
	left := make([][]int, sizeCont)
	for k := 0; k < sizeCont; k++ {
		right[k] = wordops.ComputeRight(k+1, word)
		left[k] = wordops.ComputeLeft(k+1, word)
	}

	t := NewTransducer()
	sink := t.AddState([2]int{none, none}, [2]int{none, none}, true)

	lookup := make(map[interval]int)

	addInterval := func(k, i, j int) int {
		if id, ok := lookup[interval{i, j}]; ok {
			return id
		}
		var id int
		if k == 0 {
			id = t.AddState([2]int{sink, sink}, [2]int{word[i], word[i]}, false)
		} else {
			r := right[k-1][i]
			l := left[k-1][j]
			if r == wordops.None || l == wordops.None {
				invariantf("freeband: IntervalTransducer: internal error, missing RIGHT_%d[%d] or LEFT_%d[%d]", k, i, k, j)
			}
			leftChild := addInterval(k-1, i, r)
			rightChild := addInterval(k-1, l, j)
			id = t.AddState([2]int{leftChild, rightChild}, [2]int{word[r+1], word[l-1]}, false)
		}
		lookup[interval{i, j}] = id
		return id
	}

	for k := 0; k < sizeCont; k++ {
		for i, j := range right[k] {
			if j != wordops.None {
				addInterval(k, i, j)
			}
		}
		for j, i := range left[k] {
			if i != wordops.None {
				addInterval(k, i, j)
			}
		}
	}

	initial, ok := lookup[interval{0, n - 1}]
	if !ok {
		invariantf("freeband: IntervalTransducer: internal error, no state for the full interval [0,%d]", n-1)
	}
	t.SetInitial(initial)
	return t
}
