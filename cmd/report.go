package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutareport/internal/adapter"
	"gooze.dev/pkg/mutareport/internal/controller"
	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
)

var (
	reporterNames       []string
	metricsTextfileFlag string
	showIgnoredFlag     bool
)

const reportLongDescription = `Print the clear-text reports for a mutation testing result document
(default: mutation-results.yaml).

Available reporters:
  - cleartext        summary table, one row per file
  - cleartexttree    tree of folders, files and mutants
  - breakdown        counts and scores per mutator category

The command fails with exit status 2 when the mutation score is below the
break threshold.`

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [results-file]",
		Short: "Print clear-text reports for a mutation testing result",
		Long:  reportLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), resultsPath(args))
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&reporterNames, reporterFlagName, "r", defaultReporters, "reporters to run (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(reporterFlagName), reportersKey)

	cmd.Flags().StringVar(&metricsTextfileFlag, metricsTextfileFlagName, "", "also write Prometheus metrics to this textfile")
	bindFlagToConfig(cmd.Flags().Lookup(metricsTextfileFlagName), metricsTextfileKey)

	cmd.Flags().BoolVar(&showIgnoredFlag, showIgnoredFlagName, false, "list ignored mutants in the tree")
	bindFlagToConfig(cmd.Flags().Lookup(showIgnoredFlagName), showIgnoredKey)
}

func runReport(out io.Writer, path m.Path) error {
	root, err := resultStore.Load(path)
	if err != nil {
		return err
	}

	opts, err := reportOptions(out)
	if err != nil {
		return err
	}

	reporters, err := controller.NewReporters(viper.GetStringSlice(reportersKey), out, opts)
	if err != nil {
		return err
	}

	replay(reporters, root)

	if err := reporters.OnAllMutantsTested(root); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if metricsPath := viper.GetString(metricsTextfileKey); metricsPath != "" {
		if err := adapter.WriteMetricsTextfile(metricsPath, root, opts.Thresholds, opts.Filter); err != nil {
			return err
		}
	}

	gate := domain.EvaluateGate(domain.ComputeStats(root), opts.Thresholds)
	slog.Info("Evaluated break threshold", "path", path, "pass", gate.Pass, "reason", gate.Reason)

	if !gate.Pass {
		return fmt.Errorf("%w: %s", domain.ErrBreakThreshold, gate.Reason)
	}

	return nil
}

// replay feeds a recorded run to the reporters in the order a live run emits it.
func replay(reporter controller.Reporter, root *m.Node) {
	mutants := root.AllMutants()

	reporter.OnMutantsCreated(root)
	reporter.OnStartMutantTestRun(mutants)

	for _, mutant := range mutants {
		reporter.OnMutantTested(mutant)
	}
}
