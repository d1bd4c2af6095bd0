// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

// lemmaCase is the classification of Lemma 5.3 used by MinWord's
// recursion to decide how a state's short-lex image is built from its
// two children's images (spec.md §4.I).
type lemmaCase int

const (
	caseI lemmaCase = iota
	caseII
	caseIII
)

// bEntry is a memoized entry of the table B[q] = (i, j) from spec.md
// §4.I: "the substring w[i+l-1 .. j-1] of the word built so far is the
// result for q", for whichever scope-local offset l applied when q was
// last visited. i == 0 or j == 0 marks the terminal sentinel (q
// contributes nothing further).
type bEntry struct {
	i, j int
	set  bool
}

// MinWord returns the short-lex least word equal to the free-band
// element represented by the minimized transducer t (spec.md §4.I). It
// panics if t has no initial state (an empty transducer represents no
// word under this library's convention that the empty word is
// rejected; see DESIGN.md).
//
// MinWord assumes t is minimized: classifyCase's termination bound (at
// most |cont(q)| steps before reaching a terminal state, per Lemma 5.3)
// only holds for a minimized transducer, so calling this on an
// unminimized one can in principle loop past the bound, which is
// reported as an invariant violation rather than silently returning a
// wrong answer.
func MinWord(t *Transducer) []int {
	q0, ok := t.Initial()
	if !ok {
		invariantf("freeband: MinWord: transducer has no initial state")
	}

	n := t.N()
	b := make([]bEntry, n)
	for q := 0; q < n; q++ {
		if t.IsTerminal(q) {
			b[q] = bEntry{i: 0, j: 1, set: true}
		}
	}

	return minWordRecurse(t, q0, nil, 0, b)
}

func minWordRecurse(t *Transducer, q int, w []int, l int, b []bEntry) []int {
	s := len(w) - l + 1

	if b[q].set {
		i, j := b[q].i, b[q].j
		if i == 0 || j == 0 {
			return w
		}
		return append(w, w[i+l-1:j]...)
	}

	q0, _ := t.Next(q, 0)
	w = minWordRecurse(t, q0, w, l, b)

	c, k := classifyCase(t, q)
	switch c {
	case caseI:
		o0, _ := t.Out(q, 0)
		w = append(w, o0)
		l = 0
	case caseII:
		r, _ := t.Next(q, 0)
		for step := 0; step < k; step++ {
			r, _ = t.Next(r, 1)
		}
		if !b[r].set {
			invariantf("freeband: MinWord: internal error, state %d visited before its B entry was set", r)
		}
		i, j := b[r].i, b[r].j
		if i == 0 || j == 0 || j < i {
			l = 0
		} else {
			l = j - i + 1
		}
	default: // caseIII
		o0, _ := t.Out(q, 0)
		o1, _ := t.Out(q, 1)
		w = append(w, o0, o1)
		l = 0
	}

	q1, _ := t.Next(q, 1)
	w = minWordRecurse(t, q1, w, l, b)

	b[q] = bEntry{i: s, j: len(w), set: true}
	return w
}

// classifyCase determines which of the three cases of Lemma 5.3 applies
// to state q (spec.md §4.I step 3), and the associated k: the number of
// steps along the interleaved 1-spine from delta(q,0) / 0-spine from
// delta(q,1) needed to reach a matching pair of states (case II), or
// the content size (cases I and III, where k is unused by the caller).
func classifyCase(t *Transducer, q int) (lemmaCase, int) {
	n := int(TransducerCont(t, q).Count())

	out0, _ := t.Out(q, 0)
	out1, _ := t.Out(q, 1)
	if out0 == out1 {
		return caseI, n
	}

	u, _ := t.Next(q, 0)
	v, _ := t.Next(q, 1)
	for k := 0; k < n; k++ {
		uOut1, okU := t.Out(u, 1)
		vOut0, okV := t.Out(v, 0)
		uNext1, okUNext := t.Next(u, 1)
		vNext0, okVNext := t.Next(v, 0)
		if okU && okV && okUNext && okVNext &&
			uOut1 == out1 && vOut0 == out0 && uNext1 == vNext0 {
			return caseII, k + 1
		}
		if !okUNext || !okVNext {
			invariantf("freeband: MinWord: internal error, classifyCase ran off the 1-spine/0-spine before reaching a terminal state")
		}
		u, v = uNext1, vNext0
		if t.IsTerminal(u) || t.IsTerminal(v) {
			return caseIII, n
		}
	}
	invariantf("freeband: MinWord: internal error, classifyCase did not terminate within %d steps", n)
	return 0, 0
}
