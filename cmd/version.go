package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const vcsRevisionSetting = "vcs.revision"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Print the mutareport module version, the VCS revision it was built from and the Go version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("mutareport version: unknown")
				return
			}

			cmd.Printf("mutareport %s (%s)\n", info.Main.Version, info.Main.Path)

			if revision := buildSetting(info, vcsRevisionSetting); revision != "" {
				cmd.Printf("revision   %s\n", revision)
			}

			cmd.Printf("go version %s\n", info.GoVersion)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildSetting returns the value of a build setting, or "" when absent.
func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}

	return ""
}
