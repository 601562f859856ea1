package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	"gooze.dev/pkg/mutareport/internal/controller"
	"gooze.dev/pkg/mutareport/internal/domain"
	m "gooze.dev/pkg/mutareport/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutareport"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	thresholdHighFlagName   = "threshold-high"
	thresholdLowFlagName    = "threshold-low"
	thresholdBreakFlagName  = "threshold-break"
	mutateFlagName          = "mutate"
	colorFlagName           = "color"
	logFileFlagName         = "log-file"
	verboseFlagName         = "verbose"
	reporterFlagName        = "reporter"
	metricsTextfileFlagName = "metrics-textfile"
	showIgnoredFlagName     = "show-ignored"
	outputFlagName          = "output"

	thresholdHighKey   = "thresholds.high"
	thresholdLowKey    = "thresholds.low"
	thresholdBreakKey  = "thresholds.break"
	mutateConfigKey    = "mutate"
	colorConfigKey     = "color"
	resultsConfigKey   = "report.results"
	reportersKey       = "report.reporters"
	showIgnoredKey     = "report.show_ignored"
	metricsTextfileKey = "report.metrics_textfile"

	defaultResultsFile = "mutation-results.yaml"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	envPrefix = "MUTAREPORT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	// stderrLogFilename sends logs to the terminal instead of a file.
	stderrLogFilename = "-"

	defaultLogFilename   = ".mutareport.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// ErrInvalidColorMode is returned for an unsupported --color value.
var ErrInvalidColorMode = errors.New("invalid color mode")

var globalLogger *slog.Logger

var defaultReporters = []string{controller.ReporterClearText, controller.ReporterClearTextTree}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := m.DefaultThresholds()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(thresholdHighKey, defaults.High)
	viper.SetDefault(thresholdLowKey, defaults.Low)
	viper.SetDefault(thresholdBreakKey, defaults.Break)
	viper.SetDefault(mutateConfigKey, []string{})
	viper.SetDefault(colorConfigKey, colorAuto)
	viper.SetDefault(resultsConfigKey, defaultResultsFile)
	viper.SetDefault(reportersKey, defaultReporters)
	viper.SetDefault(showIgnoredKey, false)
	viper.SetDefault(metricsTextfileKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing or unreadable config file leaves the defaults in place.
	_ = viper.ReadInConfig()
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// Logs go to a rotating file, or to stderr when logPath is "-". The level is
// Info by default and Debug when verbose is true.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	var handler slog.Handler

	if logPath == stderrLogFilename {
		handler = log.NewWithOptions(os.Stderr, log.Options{
			Level:           log.Level(logLevel),
			ReportTimestamp: true,
		})
	} else {
		logWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}

		handler = slog.NewTextHandler(logWriter, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
		})
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// loadThresholds reads the thresholds from flags, env and config.
func loadThresholds() (m.Thresholds, error) {
	thresholds := m.Thresholds{
		High:  viper.GetInt(thresholdHighKey),
		Low:   viper.GetInt(thresholdLowKey),
		Break: viper.GetInt(thresholdBreakKey),
	}

	if err := thresholds.Validate(); err != nil {
		return m.Thresholds{}, err
	}

	return thresholds, nil
}

// loadFilter builds the mutate filter. Without patterns nothing is excluded.
func loadFilter() (domain.MutateFilter, error) {
	patterns := viper.GetStringSlice(mutateConfigKey)
	if len(patterns) == 0 {
		return domain.NoFilter{}, nil
	}

	filter, err := domain.NewPathFilter(patterns)
	if err != nil {
		return nil, err
	}

	return filter, nil
}

// newPalette picks the colour palette for out according to mode.
func newPalette(mode string, out io.Writer) (*controller.Palette, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", colorAuto:
		return controller.NewPaletteFor(out), nil
	case colorAlways:
		return controller.NewPalette(termenv.ANSI), nil
	case colorNever:
		return controller.PlainPalette(), nil
	}

	return nil, fmt.Errorf("%w: %q (want %s, %s or %s)", ErrInvalidColorMode, mode, colorAuto, colorAlways, colorNever)
}

// reportOptions assembles the renderer options for out from the configuration.
func reportOptions(out io.Writer) (controller.Options, error) {
	thresholds, err := loadThresholds()
	if err != nil {
		return controller.Options{}, err
	}

	filter, err := loadFilter()
	if err != nil {
		return controller.Options{}, err
	}

	palette, err := newPalette(viper.GetString(colorConfigKey), out)
	if err != nil {
		return controller.Options{}, err
	}

	return controller.Options{
		Thresholds:  thresholds,
		Filter:      filter,
		Palette:     palette,
		ShowIgnored: viper.GetBool(showIgnoredKey),
	}, nil
}
