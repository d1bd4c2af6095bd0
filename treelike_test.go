// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "testing"

func TestTreelikeTransducerPanicsOnEmptyWord(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("TreelikeTransducer(nil) did not panic")
		}
	}()
	TreelikeTransducer(nil)
}

func TestTreelikeTransducerScenario1StateCount(t *testing.T) {
	tr := TreelikeTransducer(scenario1Word)
	if tr.N() != 15 {
		t.Fatalf("TreelikeTransducer(%v).N() = %d, want 15", scenario1Word, tr.N())
	}
}

// P1: interval and treelike constructions agree on every complete word
// they accept (spec.md §8 P1).
func TestIntervalAndTreelikeAgree(t *testing.T) {
	words := [][]int{
		{0, 1, 0, 2},
		{0},
		{1, 1},
		{0, 1, 2, 1, 0, 2},
		{5, 3, 5, 3, 5},
	}
	inputs := [][]int{
		nil, {0}, {1}, {0, 0}, {0, 1}, {1, 0}, {1, 1},
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 1, 1},
	}
	for _, w := range words {
		iv := IntervalTransducer(w)
		tl := TreelikeTransducer(w)
		for _, in := range inputs {
			ivOut, ivOK := iv.Traverse(in)
			tlOut, tlOK := tl.Traverse(in)
			if ivOK != tlOK {
				t.Fatalf("word %v input %v: interval ok=%v, treelike ok=%v", w, in, ivOK, tlOK)
			}
			if !ivOK {
				continue
			}
			if len(ivOut) != len(tlOut) {
				t.Fatalf("word %v input %v: interval=%v, treelike=%v", w, in, ivOut, tlOut)
			}
			for i := range ivOut {
				if ivOut[i] != tlOut[i] {
					t.Fatalf("word %v input %v: interval=%v, treelike=%v", w, in, ivOut, tlOut)
				}
			}
		}
	}
}
