// Package cmd provides the root command and CLI setup for mutareport.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutareport/internal/adapter"
	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
)

// Process exit codes.
const (
	exitCodeError          = 1
	exitCodeBreakThreshold = 2
)

var resultStore adapter.ResultStore = adapter.NewLocalResultStore()

var (
	thresholdHighFlag  int
	thresholdLowFlag   int
	thresholdBreakFlag int
	mutatePatterns     []string
	colorFlag          string
	logFileFlag        string
	verboseFlag        bool
)

const mutatePatternsHelp = `Files are matched against --mutate globs (doublestar syntax):
  - src/**/*.go      include matching files
  - !**/*_gen.go     exclude matching files
Files outside the patterns are reported as Excluded.`

const rootLongDescription = `mutareport prints mutation testing results as clear text: a summary
table with one row per file, a tree of folders, files and mutants, and a
per-mutator breakdown. Scores are coloured by the high and low thresholds
and the break threshold decides the exit status.

` + mutatePatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mutareport",
		Short:         "Clear-text mutation testing reports",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	defaults := m.DefaultThresholds()
	flags := cmd.PersistentFlags()

	flags.IntVar(&thresholdHighFlag, thresholdHighFlagName, defaults.High, "score (percent) at or above which results are good")
	bindFlagToConfig(flags.Lookup(thresholdHighFlagName), thresholdHighKey)

	flags.IntVar(&thresholdLowFlag, thresholdLowFlagName, defaults.Low, "score (percent) below which results are in danger")
	bindFlagToConfig(flags.Lookup(thresholdLowFlagName), thresholdLowKey)

	flags.IntVar(&thresholdBreakFlag, thresholdBreakFlagName, defaults.Break, "minimum score (percent) for a successful exit status")
	bindFlagToConfig(flags.Lookup(thresholdBreakFlagName), thresholdBreakKey)

	flags.StringArrayVarP(&mutatePatterns, mutateFlagName, "m", nil, "glob of files to score, prefix with ! to exclude (can be repeated)")
	bindFlagToConfig(flags.Lookup(mutateFlagName), mutateConfigKey)

	flags.StringVar(&colorFlag, colorFlagName, colorAuto, "colour output: auto, always or never")
	bindFlagToConfig(flags.Lookup(colorFlagName), colorConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, `log file, or "-" for stderr`)
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "enable debug logging")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrBreakThreshold):
		return exitCodeBreakThreshold
	default:
		return exitCodeError
	}
}

// resultsPath returns the results document named by args or the configured default.
func resultsPath(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(resultsConfigKey))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
