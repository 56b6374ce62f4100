// Package main is the entry point for the pullbadge CLI.
//
// pullbadge can be used either as a library (SDK) or as a standalone binary.
// This CLI provides the standalone binary approach.
//
// Usage:
//
//	pullbadge generate --repo https://github.com/acme/widget # Print badge snippets
//	pullbadge generate -c badges.yaml                          # Every badge in a config
//	pullbadge interactive                                      # Step-by-step form
//	pullbadge validate -c badges.yaml                          # Validate configuration
//	pullbadge version                                          # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/jpalmerr/pullbadge/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "pullbadge",
	Short: "Build GHCR pull count badges",
	Long: `pullbadge builds shields.io badges showing the pull count of a
GitHub Container Registry package.

It turns a GitHub repository URL and a package name into a dynamic JSON
badge URL, Markdown and HTML embeds, and a direct shield.

Quick start:
  pullbadge generate --repo https://github.com/acme/widget
  pullbadge generate --from-git --format markdown >> README.md
  pullbadge interactive

Example config:
  defaults:
    logo: docker
  badges:
    - repository: https://github.com/acme/widget
      package: widget`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this pullbadge binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pullbadge %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("env-file", "", "load environment variables from this file before expanding the config")
}

// newLogger creates a JSON logger on stderr for CLI use.
func newLogger(cmd *cobra.Command) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logrus.NewEntry(logger).WithField("command", cmd.Name())
}

// noColor reports whether --no-color was given.
func noColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("no-color")
	return v
}

// loadConfig loads the --config file, or returns an empty config when the
// flag is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return &config.Config{}, nil
	}

	var envFiles []string
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		envFiles = append(envFiles, envFile)
	}

	cfg, err := config.Load(path, envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
