// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

// Package freeband implements a reference library of algorithms for the
// free band, the free algebraic structure on a finite alphabet under the
// law that repeated concatenation is idempotent (w++w == w). Elements of
// the free band are represented by small, deterministic, acyclic
// synchronous transducers over the fixed input alphabet {0, 1}.
//
// The package exposes five coupled operations on that representation:
// building a transducer from a word in linear time (IntervalTransducer),
// minimizing it to a canonical form (Minimize), testing two minimal
// transducers for isomorphism (Isomorphic, the free band's equality
// test), multiplying two transducers to realize concatenation of their
// elements (Multiply), and recovering the short-lex least word a minimal
// transducer represents (MinWord). TreelikeTransducer is kept alongside
// IntervalTransducer as a slower, more directly-recursive reference
// construction used to cross-check the interval builder.
//
// The package is purely synchronous: every operation is a CPU-bound,
// single-threaded computation over its arguments with no I/O, no
// background work and no shared mutable state. A *Transducer returned by
// any constructor is treated as immutable by every other operation in
// the package; read-only sharing across goroutines is safe.
package freeband
