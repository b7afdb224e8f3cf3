package main

import (
	"fmt"
	"os"

	"github.com/dkealton/rigforge"
	"github.com/dkealton/rigforge/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a blueprint outline",
	Long:  `Loads a blueprint and prints its tree as a rendered outline. Falls back to plain markdown when stdout is not a terminal.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		b, err := rigforge.LoadBlueprintFile(s.Registry, args[0])
		if err != nil {
			fmt.Printf("Error loading blueprint: %v\n", err)
			os.Exit(1)
		}

		markdown := tui.Outline(b)
		plain, _ := cmd.Flags().GetBool("plain")
		if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(markdown)
			return
		}

		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			fmt.Print(markdown)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
}
