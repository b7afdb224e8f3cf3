package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkealton/rigforge"
	"github.com/dkealton/rigforge/internal/presentation/tui"
	"github.com/dkealton/rigforge/pkg/observability"
	"github.com/dkealton/rigforge/pkg/runner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a blueprint's build actions in order",
	Long:  `Loads a blueprint and runs its actions depth-first. Actions without a bound runner fail unless --skip-unbound is set.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		b, err := rigforge.LoadBlueprintFile(s.Registry, args[0])
		if err != nil {
			fmt.Printf("Error loading blueprint: %v\n", err)
			os.Exit(1)
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
		}

		collector := observability.NewCollector()

		r := runner.New(logger)
		r.ContinueOnError, _ = cmd.Flags().GetBool("continue-on-error")
		r.SkipUnbound, _ = cmd.Flags().GetBool("skip-unbound")
		r.Hooks = collector.Hooks()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runErr := r.Run(ctx, b)

		report := collector.Report()
		fmt.Printf("\n%d action(s) in %d group(s), %d failure(s), %s\n",
			len(report.Results), report.Groups, report.Failures(), report.Elapsed.Round(time.Millisecond))

		if runErr != nil {
			fmt.Printf("Build failed: %v\n", runErr)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("continue-on-error", false, "Keep running past failing actions and report all failures at the end")
	runCmd.Flags().Bool("skip-unbound", false, "Skip actions that have no runner bound instead of failing")
}
