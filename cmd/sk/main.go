package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chase-seibert/chase-sidekick/internal/debug"
)

var (
	jsonOutput  bool
	verboseFlag bool
	quietFlag   bool

	// Signal-aware context for graceful cancellation
	rootCtx    context.Context
	rootCancel context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   "sk",
	Short: "sk - Jira roadmap hierarchy toolkit",
	Long:  `Traverse Jira issue hierarchies, render them as trees, and keep roadmap ancestry labels in sync.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("sk version %s (%s)\n", Version, Build)
			return
		}
		_ = cmd.Help() // Help() always returns nil for cobra commands
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupSignalContext()
		if verboseFlag {
			debug.SetVerbose(true)
		}
		if quietFlag {
			debug.SetQuiet(true)
		}
		debug.ResetAPICalls()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func setupSignalContext() {
	rootCtx, rootCancel = context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		rootCancel()
	}()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output (errors only)")

	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
