package main

import (
	"fmt"
	"os"

	"github.com/dkealton/rigforge"
	"github.com/dkealton/rigforge/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a blueprint document for problems",
	Long:  `Walks the raw document and reports every structural error and unknown action type before anything is loaded.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	s, _, err := setup(cmd)
	if err != nil {
		return err
	}

	doc, err := rigforge.ReadDocument(path)
	if err != nil {
		return err
	}

	issues := validator.Check(s.Registry, doc)
	for _, issue := range issues {
		fmt.Println(issue)
	}

	if validator.HasErrors(issues) {
		return fmt.Errorf("%d issue(s) found", len(issues))
	}
	fmt.Println("Blueprint is valid! ✅")
	return nil
}
