package main

import (
	"fmt"
	"os"

	"github.com/dkealton/rigforge"
	"github.com/dkealton/rigforge/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the blueprint visualization",
	Long:  `Loads a blueprint and outputs a Mermaid diagram (graph TD) representing the build tree.`,
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

		fmt.Print(graph.GenerateMermaid(b))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
