package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
)

var mergeOutputFlag string

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge inputs...",
		Short: "Merge sharded result documents into one",
		Long: `Merge result documents produced by separate shards. Folders and files with
the same path are combined and mutants are kept in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := cmd.Flags().GetString(outputFlagName)
			if err != nil {
				return err
			}

			return runMerge(parsePaths(args), m.Path(output))
		},
	}

	cmd.Flags().StringVarP(&mergeOutputFlag, outputFlagName, "o", defaultResultsFile, "merged result document")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(inputs []m.Path, output m.Path) error {
	roots := make([]*m.Node, len(inputs))

	var group errgroup.Group

	for i, input := range inputs {
		group.Go(func() error {
			root, err := resultStore.Load(input)
			if err != nil {
				return err
			}

			roots[i] = root

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	merged := domain.Merge(roots...)
	if err := resultStore.Save(output, merged); err != nil {
		return err
	}

	slog.Info("Merged results", "inputs", len(inputs), "output", output, "files", len(merged.Files()))

	return nil
}
