// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

// Package wordops implements component B of the free-band transducer
// library: content, the pref_ltof/suff_ftol decompositions and the
// linear-time RIGHT_k/LEFT_k precomputations (Radoszewski-Rytter's
// Compute_RIGHT2) that the interval-transducer builder depends on.
//
// Everything here operates on plain words ([]int of non-negative output
// letters); it has no notion of a transducer.
package wordops

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/freeband-go/freeband/internal/scratch"
)

// None is the sentinel used in place of Python's None/Optional for the
// index results of ComputeRight/ComputeLeft: both operate exclusively on
// non-negative indices, so -1 is never a valid value and unambiguously
// marks "no such subword".
const None = -1

// countPool supplies the letter-occurrence counting array ComputeRight
// allocates on every call; IntervalTransducer calls it twice per content
// size (directly and through ComputeLeft), so a single word of content
// size k issues 2k calls that would otherwise each pay for a fresh
// allocation.
var countPool = scratch.NewIntPool()

// Content returns the set of distinct letters occurring in w as a
// bitset indexed by letter value.
func Content(w []int) *bitset.BitSet {
	bs := bitset.New(0)
	for _, letter := range w {
		bs.Set(uint(letter))
	}
	return bs
}

// PrefLtof returns the longest prefix of w whose content has exactly one
// fewer letter than cont(w), together with the letter missing from that
// prefix: the unique letter of cont(w) whose first occurrence in w comes
// last among all letters of the content ("first-to-occur-last").
//
// ok is false, with p and letter zero, exactly when w is empty.
func PrefLtof(w []int) (p []int, letter int, ok bool) {
	k := Content(w).Count()
	seen := bitset.New(0)
	var distinctSeen uint
	for i, x := range w {
		if !seen.Test(uint(x)) {
			distinctSeen++
			if distinctSeen == k {
				return w[:i:i], x, true
			}
			seen.Set(uint(x))
		}
	}
	return nil, 0, false
}

// SuffFtol returns the longest suffix of w whose content has exactly one
// fewer letter than cont(w), together with the missing letter: the
// unique letter of cont(w) whose last occurrence in w comes first among
// all letters of the content ("last-to-occur-first"). The returned word
// is a genuine suffix of w, not of reverse(w).
//
// ok is false, with s and letter zero, exactly when w is empty.
func SuffFtol(w []int) (s []int, letter int, ok bool) {
	p, letter, ok := PrefLtof(reverseOf(w))
	if !ok {
		return nil, 0, false
	}
	return reverseOf(p), letter, true
}

func reverseOf(w []int) []int {
	r := make([]int, len(w))
	for i, x := range w {
		r[len(w)-1-i] = x
	}
	return r
}

// ComputeRight precomputes, for every start index i, the largest index j
// such that cont(w[i:j+1]) has exactly k distinct letters and w[i:j+2]
// (if it exists) would have more than k; i.e. w[i:j+1] is the prefix-
// maximal content-k subword starting at i. The result holds None at i if
// no content-k subword starts there. Runs in O(len(w)) time via a
// two-pointer sweep (Radoszewski-Rytter's Compute_RIGHT2).
func ComputeRight(k int, w []int) []int {
	right := make([]int, len(w))
	for i := range right {
		right[i] = None
	}
	if len(w) == 0 {
		return right
	}

	maxLetter := 0
	for _, x := range w {
		if x > maxLetter {
			maxLetter = x
		}
	}
	count := countPool.Get(maxLetter + 1)
	defer countPool.Put(count)
	for i := range count {
		count[i] = 0
	}
	distinct := 0
	j := -1

	for i := range w {
		if i > 0 {
			prev := w[i-1]
			count[prev]--
			if count[prev] == 0 {
				distinct--
			}
		}
		for j < len(w)-1 && (count[w[j+1]] != 0 || distinct < k) {
			j++
			if count[w[j]] == 0 {
				distinct++
			}
			count[w[j]]++
		}
		if distinct == k {
			right[i] = j
		}
	}
	return right
}

// ComputeLeft precomputes, for every end index j, the smallest index i
// such that w[i:j+1] is the suffix-maximal content-k subword ending at
// j; None at j if no content-k subword ends there. Computed via
// ComputeRight on the reversed word.
func ComputeLeft(k int, w []int) []int {
	rev := reverseOf(w)
	rightOnRev := ComputeRight(k, rev)
	left := make([]int, len(w))
	for x, v := range rightOnRev {
		j := len(w) - 1 - x
		if v == None {
			left[j] = None
		} else {
			left[j] = len(w) - 1 - v
		}
	}
	return left
}
