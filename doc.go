/*
Package hanoi generates Towers of Hanoi solutions as lazy move streams.

Given a disk count and three peg labels (source, destination, auxiliary), it
produces the ordered sequence of single-disk moves that transfers the whole
stack, using the classic divide-and-conquer decomposition. The sequence has
exactly 2^n - 1 moves and never places a larger disk on a smaller one.

# Concept

Generation is decoupled from presentation. The Solver hands out a MoveStream
that is produced on demand and can be consumed once; the caller decides where
moves go (a text sink, NDJSON, an HTTP response, a test assertion). Two
strategies emit the identical sequence: native recursion, and an explicit
work-stack for callers that want constant call-stack depth.

Inputs are validated up front: a negative disk count, a count whose move
total would overflow the step counter, and blank or repeated peg labels are
rejected with sentinel errors from the domain package.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/hanoi"
	)

	func main() {
		stream, err := hanoi.Moves(5, "X", "Z", "Y")
		if err != nil {
			log.Fatal(err)
		}
		for m := range stream.All() {
			fmt.Printf("move disk from  %s  to  %s\n", m.From, m.To)
		}
	}

Collected solutions can be cached in a SolutionStore (memory, file, Redis)
via WithStore; see the runner package for ready-made output sinks.
*/
package hanoi
