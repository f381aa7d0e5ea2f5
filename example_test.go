package hanoi_test

import (
	"fmt"
	"log"

	"github.com/aretw0/hanoi"
)

// ExampleMoves prints the three moves that solve a two-disk puzzle.
func ExampleMoves() {
	stream, err := hanoi.Moves(2, "A", "B", "C")
	if err != nil {
		log.Fatal(err)
	}
	for m := range stream.All() {
		fmt.Printf("move disk from  %s  to  %s\n", m.From, m.To)
	}
	// Output:
	// move disk from  A  to  C
	// move disk from  A  to  B
	// move disk from  C  to  B
}

// ExampleMoves_three lists the seven-move solution with disk ranks.
func ExampleMoves_three() {
	stream, _ := hanoi.Moves(3, "A", "B", "C")
	for m := range stream.All() {
		fmt.Println(m)
	}
	// Output:
	// #1 disk 1: A -> B
	// #2 disk 2: A -> C
	// #3 disk 1: B -> C
	// #4 disk 3: A -> B
	// #5 disk 1: C -> A
	// #6 disk 2: C -> B
	// #7 disk 1: A -> B
}
