// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "testing"

// P6: T(w1)*T(w2) is equivalent to T(w1++w2) in the free band, for both
// the interval and treelike constructions (spec.md §8 P6).
func TestMultiplyMatchesConcatenation(t *testing.T) {
	cases := [][2][]int{
		{{0, 1, 0, 2}, {1, 2}},
		{{0}, {1}},
		{{0, 1}, {0, 1}},
		{{5, 3, 5}, {3, 5, 3}},
		{{0, 1, 2}, {2, 1, 0}},
	}
	for _, c := range cases {
		w1, w2 := c[0], c[1]
		concat := append(append([]int{}, w1...), w2...)
		want := MinimalTransducer(concat)

		gotInterval := Minimize(Multiply(IntervalTransducer(w1), IntervalTransducer(w2)))
		if !Isomorphic(want, gotInterval) {
			t.Fatalf("Multiply(interval %v, interval %v) not equivalent to T(%v)", w1, w2, concat)
		}

		gotTreelike := Minimize(Multiply(TreelikeTransducer(w1), TreelikeTransducer(w2)))
		if !Isomorphic(want, gotTreelike) {
			t.Fatalf("Multiply(treelike %v, treelike %v) not equivalent to T(%v)", w1, w2, concat)
		}
	}
}

func TestMultiplyPanicsOnEmptyArgument(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Multiply with an empty argument did not panic")
		}
	}()
	Multiply(NewTransducer(), MinimalTransducer([]int{0}))
}

// Idempotence in the free band: x*x == x.
func TestMultiplyIdempotent(t *testing.T) {
	words := [][]int{{0, 1, 0, 2}, {0}, {1, 1}, {0, 1, 2, 1, 0, 2}}
	for _, w := range words {
		x := MinimalTransducer(w)
		prod := Minimize(Multiply(x, x))
		if !Isomorphic(x, prod) {
			t.Fatalf("word %v: x*x is not equivalent to x", w)
		}
	}
}
