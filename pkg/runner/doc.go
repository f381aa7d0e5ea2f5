/*
Package runner drains move streams into pluggable output handlers.

It is the bridge between the generator (which only produces moves) and the
outside world. The Runner iterates a MoveStream once, forwarding every move to
a Handler and stopping early on cancellation or handler errors.

# Key Components

  - Runner: Drives a stream through a handler and reports a Summary.
  - Handler: Receives Start, Move and Finish callbacks.
  - TextHandler: The plain console format, one "move disk from  X  to  Y" line per move.
  - JSONHandler: NDJSON records for machine consumers.
  - RichHandler: Colored moves, a markdown summary and the final board.

# Usage

	stream, err := solver.Stream(ctx, domain.DefaultPuzzle())
	if err != nil {
		log.Fatal(err)
	}

	r := runner.New(runner.WithHandler(runner.NewTextHandler(os.Stdout)))
	if _, err := r.Run(ctx, stream); err != nil {
		log.Fatal(err)
	}
*/
package runner
