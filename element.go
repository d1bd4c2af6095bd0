// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

// Element is a convenience wrapper holding the minimized transducer that
// realizes a word (the word itself is not stored; Word recomputes the
// short-lex least representative), giving free-band elements value-like
// Equal/Mul/Word operations built entirely on top of the §6 operations
// (spec.md §3 Supplemented features, grounded on the original
// `freebandlib.FreeBandElement`). It adds no algorithmic content beyond
// MinimalTransducer/Isomorphic/Multiply/MinWord.
type Element struct {
	t *Transducer
}

// NewElement returns the Element representing word.
func NewElement(word []int) Element {
	return Element{t: MinimalTransducer(word)}
}

// Transducer returns e's underlying minimized transducer.
func (e Element) Transducer() *Transducer {
	return e.t
}

// Word returns the short-lex least word representing e.
func (e Element) Word() []int {
	return MinWord(e.t)
}

// Equal reports whether e and other represent the same free-band
// element.
func (e Element) Equal(other Element) bool {
	return Isomorphic(e.t, other.t)
}

// Mul returns the product e*other.
func (e Element) Mul(other Element) Element {
	return Element{t: Minimize(Multiply(e.t, other.t))}
}
