// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

package freeband

import "fmt"

// invariantf panics with a descriptive message identifying the violated
// transducer invariant (spec I1-I4). Invariant and precondition
// violations both indicate a caller bug, never a recoverable runtime
// condition, so the library panics rather than returning an error value
// (mirrors the teacher's "logic error, wrong node type" style panics for
// internal inconsistencies).
func invariantf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
