// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "github.com/freeband-go/freeband/internal/wordops"

// TreelikeTransducer builds the treelike transducer realizing word
// (spec.md §4.E): a new root splits word into its letter-to-front prefix
// and front-to-letter suffix, grafts the treelike transducers of those
// two (strictly shorter) subwords as its two children, and labels the
// two root transitions with the letters pref_ltof and suff_ftol peeled
// off. Each level peels one content letter and every root has two
// children, so a word of content size N yields 2^(N+1)-1 states: the
// cost is exponential in the content size, traded for a much simpler
// construction than IntervalTransducer; spec.md keeps both as
// the reference pair P1 checks agreement against.
//
// TreelikeTransducer panics on the empty word, for the same reason as
// IntervalTransducer (see DESIGN.md's Open Question decision on the
// empty word); the empty word is only ever seen internally, as the base
// case of the recursion below.
func TreelikeTransducer(word []int) *Transducer {
	if len(word) == 0 {
		invariantf("freeband: TreelikeTransducer: word must be non-empty")
	}
	return treelikeRec(word)
}

func treelikeRec(word []int) *Transducer {
	if len(word) == 0 {
		t := NewTransducer()
		q := t.AddState([2]int{none, none}, [2]int{none, none}, true)
		t.SetInitial(q)
		return t
	}

	pref, ltof, ok := wordops.PrefLtof(word)
	if !ok {
		invariantf("freeband: TreelikeTransducer: internal error, pref_ltof undefined on non-empty word")
	}
	suff, ftol, ok := wordops.SuffFtol(word)
	if !ok {
		invariantf("freeband: TreelikeTransducer: internal error, suff_ftol undefined on non-empty word")
	}

	prefT := treelikeRec(pref)
	suffT := treelikeRec(suff)

	t := NewTransducer()
	prefInit := appendCopy(t, prefT)
	suffInit := appendCopy(t, suffT)
	// The root must be appended last: AddState only accepts transitions
	// that target already-existing states.
	root := t.AddState([2]int{prefInit, suffInit}, [2]int{ltof, ftol}, false)
	t.SetInitial(root)
	return t
}
