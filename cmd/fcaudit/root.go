// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fcaudit-cli/internal/config"
	"fcaudit-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// logFile mirrors logs into a file in addition to stderr
	logFile string

	// defaultFormat is the config-supplied report format used when no
	// selector flag is given ("text", "json", or "csv").
	defaultFormat = "text"

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "fc-audit",
		Short: "Analyze FreeCAD documents for cell references",
		Long: TitleStyle.Render("fc-audit") + SubtitleStyle.Render(" - Analyze FreeCAD documents for cell references") + `

fc-audit extracts structured facts from FreeCAD .FCStd documents:
spreadsheet cell aliases, document properties, and the expressions that
reference aliases, including references that cross document boundaries.

` + SubtitleStyle.Render("Examples:") + `
  fc-audit aliases Hull.FCStd              List declared cell aliases
  fc-audit properties *.FCStd --json       Dump property facts as JSON
  fc-audit references Hull.FCStd Deck.FCStd --filter 'Hull*'
                                           Show where matching aliases are used`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fc-audit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "path to log file")

	// Add subcommands
	rootCmd.AddCommand(aliasesCmd)
	rootCmd.AddCommand(propertiesCmd)
	rootCmd.AddCommand(referencesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and environment, then configures the
// logger. Flags win over config values.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil {
		if !verbose {
			verbose = cfg.Verbose
		}
		if logFile == "" {
			logFile = cfg.LogFile
		}
		if cfg.Format != "" {
			defaultFormat = cfg.Format
		}
	}

	setupLogging()
}

// setupLogging configures the default charm logger. Reports go to stdout;
// logs stay on stderr or in the --log-file sink.
func setupLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if logFile == "" {
		return
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+fmt.Sprintf("failed to open log file: %v", err))
		return
	}
	log.SetOutput(f)
	log.Debug("logging to file", "path", logFile)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
