package cmd

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default mutareport.yaml configuration file",
		Long: `Create a mutareport.yaml in the current working directory holding the
thresholds, mutate patterns, reporters and logging settings currently in
effect, then list every key written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			keys := viper.AllKeys()
			slices.Sort(keys)

			cmd.Printf("wrote %s with %d keys:\n", targetPath, len(keys))

			for _, key := range keys {
				cmd.Printf("  %s = %v\n", key, viper.Get(key))
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
