package main

import (
	"fmt"

	"github.com/jpalmerr/pullbadge/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without generating anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a pullbadge configuration file without generating badges.

This command parses the YAML or TOML, expands environment variables, and
validates every endpoint and badge. It's useful for CI/CD pipelines.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  pullbadge validate -c badges.yaml
  pullbadge validate --config badges.toml --env-file .env`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	requests, err := config.BuildRequests(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Endpoints: %d overridden\n", countSet(cfg.Endpoints.JSONBadge, cfg.Endpoints.APIBase, cfg.Endpoints.ShieldBase))
	fmt.Fprintf(out, "  Badges:    %d\n", len(requests))
	for _, req := range requests {
		fmt.Fprintf(out, "    - %s (%s)\n", req.Repository, req.Package)
	}

	return nil
}

func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
