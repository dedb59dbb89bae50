// Package commands implements the subcommands of the treecheck CLI.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

const (
	configFlag  = "config"
	verboseFlag = "verbose"
)

// NewRootCommand creates the treecheck command and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "treecheck",
		Short: "Soak and inspect the ordered tree containers",
		Long: `treecheck drives randomized insert/remove workloads through the AVL and
binary search trees, cross-checking them against each other.

Commands:
  soak      Run a randomized workload and verify tree invariants
  render    Print the structure of a tree built from a list of values
  config    Print the effective soak configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP(configFlag, "c", "", "config file (default .treecheck.yaml in . or $HOME)")
	root.PersistentFlags().BoolP(verboseFlag, "v", false, "verbose output")

	root.AddCommand(NewSoakCommand())
	root.AddCommand(NewRenderCommand())
	root.AddCommand(NewConfigCommand())
	root.AddCommand(versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treecheck %s\n", Version)
		},
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool(verboseFlag); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString(configFlag)
	return path
}
