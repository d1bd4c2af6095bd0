// Copyright (c) 2025 The freeband authors
// SPDX-License-Identifier: MIT

// Command freebandwords is a small demonstration driver for the
// freeband library: given two comma-separated words over the natural
// numbers, it reports whether they are equal in the free band, their
// short-lex least representatives, and (optionally) their product.
//
// This is example plumbing only, not part of the core: the core itself
// performs no I/O (spec.md §5).
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/freeband-go/freeband"
)

func main() {
	log.SetFlags(0)

	wordA := flag.String("a", "0,1,0,2", "first word, as comma-separated non-negative integers")
	wordB := flag.String("b", "0,1,0,1,2", "second word, as comma-separated non-negative integers")
	multiply := flag.Bool("mul", false, "also compute and print the product a*b")
	flag.Parse()

	a, err := parseWord(*wordA)
	if err != nil {
		log.Fatalf("freebandwords: parsing -a: %v", err)
	}
	b, err := parseWord(*wordB)
	if err != nil {
		log.Fatalf("freebandwords: parsing -b: %v", err)
	}

	ea := freeband.NewElement(a)
	eb := freeband.NewElement(b)

	log.Printf("a = %v, minimal form = %v, content = %v", a, ea.Word(), freeband.ContentSlice(freeband.TransducerCont(ea.Transducer(), mustInitial(ea.Transducer()))))
	log.Printf("b = %v, minimal form = %v, content = %v", b, eb.Word(), freeband.ContentSlice(freeband.TransducerCont(eb.Transducer(), mustInitial(eb.Transducer()))))
	log.Printf("a equal to b in the free band: %v", ea.Equal(eb))

	if *multiply {
		prod := ea.Mul(eb)
		log.Printf("a*b minimal form = %v", prod.Word())
	}
}

func mustInitial(t *freeband.Transducer) int {
	q, ok := t.Initial()
	if !ok {
		log.Fatalf("freebandwords: internal error, minimal transducer has no initial state")
	}
	return q
}

func parseWord(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	word := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", f, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%q is negative, output letters must be non-negative", f)
		}
		word = append(word, n)
	}
	if len(word) == 0 {
		return nil, fmt.Errorf("word must be non-empty")
	}
	return word, nil
}
