package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the available build actions",
	Long:  `Prints every registered action definition with its category and attribute schema.`,
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		defs := s.Defs
		sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

		for _, def := range defs {
			fmt.Printf("%s (%s)\n", def.Name, def.Category)
			if def.Description != "" {
				fmt.Printf("  %s\n", def.Description)
			}
			for _, attr := range def.Attrs {
				optional := ""
				if attr.Optional {
					optional = ", optional"
				}
				fmt.Printf("  - %s: %s%s\n", attr.Name, attr.Type, optional)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
