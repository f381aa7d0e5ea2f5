package domain

import "fmt"

// Strategy selects how the generator walks the recursion.
type Strategy string

const (
	// StrategyRecursive uses native recursion; stack depth equals the disk count.
	StrategyRecursive Strategy = "recursive"
	// StrategyIterative walks an explicit work-stack of frames.
	StrategyIterative Strategy = "iterative"
)

// ParseStrategy accepts the strategy names, defaulting an empty string to recursive.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyRecursive:
		return StrategyRecursive, nil
	case StrategyIterative:
		return StrategyIterative, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategyRecursive, StrategyIterative)
}

// Field constants for mapstructure and JSON standardization.
const (
	KeyDisks       = "disks"
	KeySource      = "source"
	KeyDestination = "destination"
	KeyAuxiliary   = "auxiliary"
)
