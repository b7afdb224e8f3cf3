package main

import (
	"fmt"

	"github.com/dkealton/rigforge"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rigforge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rigforge version %s\n", rigforge.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
