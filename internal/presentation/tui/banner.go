package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	` _                       _ `,
	`| |__   __ _ _ __   ___ (_)`,
	`| '_ \ / _' | '_ \ / _ \| |`,
	`| | | | (_| | | | | (_) | |`,
	`|_| |_|\__,_|_| |_|\___/|_|`,
}

// Indigo to Rose, one shade per line.
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// PrintBanner writes the ASCII art banner to w using the terminal's color profile.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i%len(bannerColors)])))
	}
	fmt.Fprintln(w)
}
