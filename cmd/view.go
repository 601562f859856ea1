package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gooze.dev/pkg/mutareport/internal/controller"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [results-file]",
		Short: "Browse the result tree",
		Long:  "Show the result tree of a mutation testing result document, scrollable when it does not fit the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resultsPath(args)

			root, err := resultStore.Load(path)
			if err != nil {
				return err
			}

			opts, err := reportOptions(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var tree strings.Builder
			if err := controller.RenderTree(&tree, root, opts); err != nil {
				return fmt.Errorf("render tree: %w", err)
			}

			return controller.NewPager(cmd.OutOrStdout()).Show(tree.String())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
