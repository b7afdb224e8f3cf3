package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the rigforge ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Amber-to-orange ramp.
	lines := []struct {
		text  string
		color string
	}{
		{`       _        __                        `, "#fbbf24"},
		{`  _ __(_) __ _ / _| ___  _ __ __ _  ___   `, "#f59e0b"},
		{` | '__| |/ _' | |_ / _ \| '__/ _' |/ _ \  `, "#f97316"},
		{` | |  | | (_| |  _| (_) | | | (_| |  __/  `, "#ea580c"},
		{` |_|  |_|\__, |_|  \___/|_|  \__, |\___|  `, "#dc2626"},
		{`         |___/               |___/        `, "#b91c1c"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
