/*
Package ports defines the driven ports (interfaces) around the Hanoi engine.

These interfaces decouple the move generator from storage backends and from the
transports (HTTP, MCP, CLI) that drive it.

# Key Interfaces

  - Solver: What transports need from the engine (stream, solve, verify).
  - SolutionStore: Persists collected solutions keyed by puzzle.
  - DistributedLocker: Serializes cache fills across replicas.
*/
package ports
