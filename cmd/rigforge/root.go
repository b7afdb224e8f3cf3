package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dkealton/rigforge"
	"github.com/dkealton/rigforge/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rigforge",
	Short: "Rigforge is a blueprint-driven rig build tool",
	Long:  `Rigforge manages rig blueprints: trees of grouped build actions that are validated, serialized, and executed in order.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringSlice("actions-dir", nil, "Extra directories with action definition files")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// setup builds the logger and a registry loaded with built-in and
// extension actions, honoring the persistent flags.
func setup(cmd *cobra.Command) (*rigforge.Setup, *slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(level)

	dirs, _ := cmd.Flags().GetStringSlice("actions-dir")
	s, err := rigforge.Bootstrap(logger, dirs...)
	if err != nil {
		return nil, nil, err
	}
	return s, logger, nil
}
