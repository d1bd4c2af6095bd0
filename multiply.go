// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/freeband-go/freeband/internal/scratch"
)

// rowPool supplies the (sizeY+1)-length rows of K0, K1 and the
// product-state lookup table: all three are built and discarded once
// per Multiply call, and Multiply is the inner step of both P6's
// property test and Element.Mul, so its scratch rows are worth pooling
// the same way ComputeRight's counting array is.
var rowPool = scratch.NewIntPool()

// Multiply returns a transducer representing x*y, given transducers x
// and y representing free-band elements (spec.md §4.H). It assembles a
// product transducer containing disjoint copies of x and y, threads a
// K0/K1-guided scaffold of "splice" states between the 1-spine of the x
// copy and the 0-spine of the y copy (skipping over content letters x
// already introduces, per the free-band absorption law), and grafts the
// scaffold's boundary states back onto the original copies.
//
// The scaffold states built here are not trimmed before being returned:
// some of them become unreachable once boundary edges are redirected
// back into the x/y copies, exactly as in the reference construction.
// Callers that need a clean result should trim or minimize the output.
func Multiply(x, y *Transducer) *Transducer {
	if x.N() == 0 || y.N() == 0 {
		invariantf("freeband: Multiply: both arguments must be non-empty transducers")
	}
	qx0, ok := x.Initial()
	if !ok {
		invariantf("freeband: Multiply: first argument has no initial state")
	}
	qy0, ok := y.Initial()
	if !ok {
		invariantf("freeband: Multiply: second argument has no initial state")
	}

	qx := PrecomputeQ(x, qx0, 1)
	qy := PrecomputeQ(y, qy0, 0)
	sizeX := len(qx) - 1
	sizeY := len(qy) - 1

	k0 := computeK(0, x, y, qx, qy)
	k1 := computeK(1, x, y, qx, qy)

	p := NewTransducer()
	offsetX := p.N()
	appendCopy(p, x)
	offsetY := p.N()
	appendCopy(p, y)

	lookup := make([][]int, sizeX+1)
	for i := range lookup {
		lookup[i] = rowPool.Get(sizeY + 1)
		for j := range lookup[i] {
			lookup[i][j] = none
		}
	}
	defer func() {
		for _, row := range k0 {
			rowPool.Put(row)
		}
		for _, row := range k1 {
			rowPool.Put(row)
		}
		for _, row := range lookup {
			rowPool.Put(row)
		}
	}()

	// redirect maps a splice-state coordinate to the id it should
	// actually be wired to: a coordinate on the boundary (content of
	// one side fully consumed) is grafted straight into the original
	// x/y copy instead of the scaffold, which is what lets the scaffold
	// states that remain unreferenced after this substitution be
	// dropped by a later trim.
	redirect := func(ip, jp int) int {
		switch {
		case jp == sizeY:
			return offsetX + qx[ip]
		case ip == sizeX:
			return offsetY + qy[jp]
		default:
			return lookup[ip][jp]
		}
	}

	for i := sizeX; i >= 0; i-- {
		for j := sizeY; j >= 0; j-- {
			var next, out [2]int

			if d := k0[i][j]; d != none {
				jp := j + d
				next[0] = redirect(i, jp)
				out[0], _ = y.Out(qy[jp-1], 0)
			} else if xc, ok := x.Next(qx[i], 0); ok {
				o, _ := x.Out(qx[i], 0)
				next[0], out[0] = offsetX+xc, o
			} else {
				next[0], out[0] = none, none
			}

			if d := k1[i][j]; d != none {
				ip := i + d
				next[1] = redirect(ip, j)
				out[1], _ = x.Out(qx[ip-1], 1)
			} else if yc, ok := y.Next(qy[j], 1); ok {
				o, _ := y.Out(qy[j], 1)
				next[1], out[1] = offsetY+yc, o
			} else {
				next[1], out[1] = none, none
			}

			lookup[i][j] = p.addState(next, out, false, "")
		}
	}

	p.SetInitial(lookup[0][0])
	return p
}

// computeK computes Kalpha (spec.md §4.H step 3): for alpha == 0, the
// smallest d >= 1 such that lambda(Q_Y[j+d-1], 0) is defined and that
// letter does not appear among lambda(Q_X[i'], 1) for i <= i' < sizeX
// (the content of the x suffix at Q_X[i]); for alpha == 1 the symmetric
// function with the roles of x/y and 0/1 swapped. Implemented by
// scanning the outer index descending while adding one letter per step
// to the running set of already-seen letters, and the inner
// index descending while reusing Kalpha(_, j+1)/Kalpha(i+1, _) + 1 for
// the continuation case - the same two-pointer trick as ComputeRight.
func computeK(alpha int, x, y *Transducer, qx, qy []int) [][]int {
	sizeX, sizeY := len(qx)-1, len(qy)-1
	k := make([][]int, sizeX+1)
	for i := range k {
		k[i] = rowPool.Get(sizeY + 1)
		for j := range k[i] {
			k[i][j] = none
		}
	}

	seen := bitset.New(0)
	if alpha == 0 {
		for i := sizeX; i >= 0; i-- {
			for j := sizeY; j >= 0; j-- {
				letter, ok := y.Out(qy[j], 0)
				if !ok {
					continue
				}
				if !seen.Test(uint(letter)) {
					k[i][j] = 1
				} else if j+1 <= sizeY && k[i][j+1] != none {
					k[i][j] = 1 + k[i][j+1]
				}
			}
			if i != 0 {
				if letter, ok := x.Out(qx[i-1], 1); ok {
					seen.Set(uint(letter))
				}
			}
		}
		return k
	}

	for j := sizeY; j >= 0; j-- {
		for i := sizeX; i >= 0; i-- {
			letter, ok := x.Out(qx[i], 1)
			if !ok {
				continue
			}
			if !seen.Test(uint(letter)) {
				k[i][j] = 1
			} else if i+1 <= sizeX && k[i+1][j] != none {
				k[i][j] = 1 + k[i+1][j]
			}
		}
		if j != 0 {
			if letter, ok := y.Out(qy[j-1], 0); ok {
				seen.Set(uint(letter))
			}
		}
	}
	return k
}
