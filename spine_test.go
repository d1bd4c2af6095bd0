// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "testing"

func TestPrecomputeQSpineLength(t *testing.T) {
	tr := IntervalTransducer(scenario1Word)
	q0, _ := tr.Initial()
	spine := PrecomputeQ(tr, q0, 0)
	if len(spine) == 0 {
		t.Fatalf("PrecomputeQ returned an empty spine")
	}
	if spine[0] != q0 {
		t.Fatalf("PrecomputeQ spine does not start at q0: got %d, want %d", spine[0], q0)
	}
	last := spine[len(spine)-1]
	if _, ok := tr.Next(last, 0); ok {
		t.Fatalf("PrecomputeQ spine ended at state %d, which still has a 0-transition", last)
	}
}

func TestTransducerContMatchesWordContent(t *testing.T) {
	tr := IntervalTransducer(scenario1Word)
	q0, _ := tr.Initial()
	cont := TransducerCont(tr, q0)
	for _, letter := range scenario1Word {
		if !cont.Test(uint(letter)) {
			t.Fatalf("TransducerCont missing letter %d present in word %v", letter, scenario1Word)
		}
	}
	if cont.Count() != 3 {
		t.Fatalf("TransducerCont(%v) has %d letters, want 3", scenario1Word, cont.Count())
	}
}

func TestContentSliceIsSortedAndComplete(t *testing.T) {
	tr := IntervalTransducer(scenario1Word)
	q0, _ := tr.Initial()
	got := ContentSlice(TransducerCont(tr, q0))
	want := []int{0, 1, 2}
	if !wordsEqual(got, want) {
		t.Fatalf("ContentSlice(%v) = %v, want %v", scenario1Word, got, want)
	}
}
