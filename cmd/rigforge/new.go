package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkealton/rigforge"
	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty blueprint file",
	Long:  `Writes a fresh blueprint document with an empty root group. The format (YAML or JSON) follows the file extension.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Error: %s already exists\n", path)
			os.Exit(1)
		}

		b := blueprint.New()
		b.Name = name
		if err := rigforge.SaveBlueprintFile(b, path); err != nil {
			fmt.Printf("Error writing blueprint: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringP("name", "n", "", "Blueprint name (defaults to the file name)")
}
