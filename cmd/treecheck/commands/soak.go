package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/segmentio/avltree/internal/config"
	"github.com/segmentio/avltree/internal/soak"
)

// NewSoakCommand creates the soak subcommand.
func NewSoakCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Run a randomized workload and verify tree invariants",
		Args:  cobra.NoArgs,
		RunE:  runSoak,
	}

	addSettingsFlags(cmd)

	return cmd
}

func addSettingsFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int64("seed", config.DefaultSeed, "seed of the pseudo-random workload")
	flags.Int("operations", config.DefaultOperations, "number of insert/remove operations")
	flags.Int("key-space", config.DefaultKeySpace, "values are drawn from [0, key-space)")
	flags.Float64("remove-ratio", config.DefaultRemoveRatio, "probability that an operation is a removal")
	flags.Int("check-every", config.DefaultCheckEvery, "verify invariants every N operations (0: only at the end)")
	flags.StringSlice("forms", config.DefaultForms, "tree forms to exercise: balance, height, bst")
}

func runSoak(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath(cmd), cmd.Flags())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report, err := soak.Run(cmd.Context(), cfg, newLogger(cmd))

	if report != nil && len(report.Results) > 0 {
		fmt.Fprintln(out, report.Table())
	}

	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(out, "FAIL")
		if report != nil {
			fmt.Fprintf(out, " after %d operations", report.Operations)
		}
		fmt.Fprintln(out)
		return fmt.Errorf("soak: %w", err)
	}

	color.New(color.FgGreen, color.Bold).Fprintf(out, "PASS")
	fmt.Fprintf(out, " %d operations, %d checks in %s\n", report.Operations, report.Checks, report.Elapsed)

	return nil
}
