package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the hotdeck banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _           _      _           _    ", "#818cf8"},
		{"| |__   ___ | |_ __| | ___  ___| | __", "#a78bfa"},
		{"| '_ \\ / _ \\| __/ _` |/ _ \\/ __| |/ /", "#c084fc"},
		{"| | | | (_) | || (_| |  __/ (__|   < ", "#e879f9"},
		{"|_| |_|\\___/ \\__\\__,_|\\___|\\___|_|\\_\\", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
