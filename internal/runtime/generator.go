package runtime

import (
	"iter"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Recursive yields the moves for p using native recursion.
// Stack depth equals the disk count. The puzzle is not validated here.
func Recursive(p domain.Puzzle) iter.Seq[domain.Move] {
	return func(yield func(domain.Move) bool) {
		var step uint64
		solve(p.Disks, p.Source, p.Destination, p.Auxiliary, &step, yield)
	}
}

// solve returns false once yield asked to stop.
func solve(n int, src, dst, aux domain.Peg, step *uint64, yield func(domain.Move) bool) bool {
	if n <= 0 {
		return true
	}
	if !solve(n-1, src, aux, dst, step, yield) {
		return false
	}
	*step++
	if !yield(domain.Move{Step: *step, Disk: n, From: src, To: dst}) {
		return false
	}
	return solve(n-1, aux, dst, src, step, yield)
}

// frame is one pending (n, source, destination, auxiliary) subproblem.
// An expanded frame has already pushed its children and only emits its own move.
type frame struct {
	n             int
	src, dst, aux domain.Peg
	expanded      bool
}

// Iterative yields the same sequence as Recursive from an explicit work-stack,
// so call-stack depth stays constant whatever the disk count.
func Iterative(p domain.Puzzle) iter.Seq[domain.Move] {
	return func(yield func(domain.Move) bool) {
		if p.Disks <= 0 {
			return
		}
		var step uint64
		stack := make([]frame, 0, 2*p.Disks+1)
		stack = append(stack, frame{n: p.Disks, src: p.Source, dst: p.Destination, aux: p.Auxiliary})

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.expanded {
				step++
				if !yield(domain.Move{Step: step, Disk: f.n, From: f.src, To: f.dst}) {
					return
				}
				continue
			}

			// LIFO: push in reverse of the order the recursion visits them.
			if f.n > 1 {
				stack = append(stack, frame{n: f.n - 1, src: f.aux, dst: f.dst, aux: f.src})
			}
			f.expanded = true
			stack = append(stack, f)
			if f.n > 1 {
				stack = append(stack, frame{n: f.n - 1, src: f.src, dst: f.aux, aux: f.dst})
			}
		}
	}
}

// Generator returns the sequence function for a strategy.
func Generator(s domain.Strategy) func(domain.Puzzle) iter.Seq[domain.Move] {
	if s == domain.StrategyIterative {
		return Iterative
	}
	return Recursive
}
