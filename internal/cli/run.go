package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Puzzle   domain.Puzzle
	Output   string
	Numbered bool
	Board    bool
	// Stdout defaults to os.Stdout.
	Stdout io.Writer
}

// Execute streams the puzzle's moves to the selected output.
func Execute(ctx context.Context, app *App, opts RunOptions) (runner.Summary, error) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	stream, err := app.Solver.Stream(ctx, opts.Puzzle)
	if err != nil {
		return runner.Summary{}, err
	}

	r := runner.New(
		runner.WithHandler(newHandler(resolveOutput(opts.Output, out), out, opts)),
		runner.WithLogger(app.Logger),
		runner.WithStrategy(app.Solver.Strategy()),
	)
	return r.Run(ctx, stream)
}

// resolveOutput turns "auto" into rich on a terminal and text elsewhere.
func resolveOutput(mode string, out io.Writer) string {
	if mode != config.OutputAuto {
		return mode
	}
	if f, ok := out.(*os.File); ok && tui.IsTerminal(f) {
		return config.OutputRich
	}
	return config.OutputText
}

func newHandler(mode string, out io.Writer, opts RunOptions) runner.Handler {
	switch mode {
	case config.OutputJSON:
		return runner.NewJSONHandler(out)
	case config.OutputRich:
		tui.PrintBanner(out)
		return runner.NewRichHandler(out,
			runner.WithRichRenderer(tui.NewRenderer()),
			runner.WithBoard(opts.Board && boardFits(opts.Puzzle.Disks, out)),
		)
	default:
		return runner.NewTextHandler(out, runner.WithNumbering(opts.Numbered))
	}
}

// boardFits reports whether three pegs of width 2n+1 fit the terminal.
func boardFits(disks int, out io.Writer) bool {
	if disks > runner.MaxBoardDisks {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return true
	}
	return 3*(2*disks+1)+2 <= tui.Width(f, 80)
}
