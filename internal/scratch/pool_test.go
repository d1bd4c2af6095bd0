// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package scratch

import "testing"

func TestIntPoolGetPutStats(t *testing.T) {
	p := NewIntPool()

	live0, total0 := p.Stats()
	if live0 != 0 || total0 != 0 {
		t.Fatalf("initial stats = (%d, %d), want (0, 0)", live0, total0)
	}

	s := p.Get(4)
	if len(s) != 4 {
		t.Fatalf("Get(4) returned len %d, want 4", len(s))
	}
	live1, total1 := p.Stats()
	if live1 != 1 || total1 != 1 {
		t.Fatalf("stats after one Get = (%d, %d), want (1, 1)", live1, total1)
	}

	s[0], s[1], s[2], s[3] = 9, 9, 9, 9
	p.Put(s)

	live2, total2 := p.Stats()
	if live2 != 0 || total2 != 1 {
		t.Fatalf("stats after Put = (%d, %d), want (0, 1)", live2, total2)
	}

	// Get does not zero a reused buffer's contents, only its length:
	// every call site (ComputeRight, Multiply, Minimize, Trim) is
	// responsible for clearing the indices it cares about itself.
	reused := p.Get(4)
	if reused[0] != 9 {
		t.Fatalf("reused buffer was cleared by Get; expected stale capacity reuse (callers must zero themselves), got %d", reused[0])
	}
	p.Put(reused)
}

func TestIntPoolGrowsWhenReusedBufferTooSmall(t *testing.T) {
	p := NewIntPool()
	small := p.Get(2)
	p.Put(small)

	big := p.Get(200)
	if len(big) != 200 {
		t.Fatalf("Get(200) after a small Put returned len %d, want 200", len(big))
	}
}

func TestNilIntPoolIsANoopFallback(t *testing.T) {
	var p *IntPool
	s := p.Get(5)
	if len(s) != 5 {
		t.Fatalf("nil pool Get(5) returned len %d, want 5", len(s))
	}
	p.Put(s) // must not panic

	live, total := p.Stats()
	if live != 0 || total != 0 {
		t.Fatalf("nil pool Stats() = (%d, %d), want (0, 0)", live, total)
	}
}
