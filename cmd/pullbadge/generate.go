package main

import (
	"errors"
	"fmt"

	"github.com/jpalmerr/pullbadge"
	"github.com/jpalmerr/pullbadge/config"
	"github.com/jpalmerr/pullbadge/internal/gitremote"
	"github.com/jpalmerr/pullbadge/internal/output"
	"github.com/spf13/cobra"
)

// generateCmd prints badge snippets without the interactive form.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print badge URLs and embeds",
	Long: `Print the badge URL, Markdown, HTML and direct shield for a repository.

The repository comes from --repo, or from the origin remote of the current
git checkout with --from-git. Without either, every badge listed in the
--config file is generated.

Flag values override the config defaults. The package defaults to the
repository name.

Example:
  pullbadge generate --repo https://github.com/acme/widget --logo docker
  pullbadge generate --from-git --package widget-cli --format markdown
  pullbadge generate -c badges.yaml --format json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringP("repo", "r", "", "GitHub repository URL")
	f.Bool("from-git", false, "read the repository URL from the origin remote")
	f.String("dir", ".", "directory searched for a git repository with --from-git")
	f.StringP("package", "p", "", "GHCR package name (defaults to the repository name)")
	f.String("label", "", "badge label (default \"ghcr pulls\")")
	f.String("logo", "", "simple-icons logo, or none")
	f.String("color", "", "badge color, or default")
	f.String("style", "", "badge style, e.g. flat-square")
	f.StringP("format", "f", string(output.FormatText), "output format: text, markdown, html or json")
	f.StringP("config", "c", "", "path to config file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	builder, err := pullbadge.New(config.BuildOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	repoURL, err := repositoryURL(cmd)
	if err != nil {
		return err
	}

	var requests []config.Request
	if repoURL != "" {
		req, err := flagRequest(cmd, repoURL, cfg.Defaults)
		if err != nil {
			return err
		}
		requests = append(requests, req)
	} else {
		if requests, err = config.BuildRequests(cfg); err != nil {
			return err
		}
		if len(requests) == 0 {
			return errors.New("a repository is required: pass --repo, --from-git or a --config with badges")
		}
	}

	entries := make([]output.NamedArtifacts, 0, len(requests))
	for _, req := range requests {
		art, err := builder.Build(req.Repository, req.Package, req.Options)
		if err != nil {
			return fmt.Errorf("%s: %w", req.Repository, err)
		}
		entries = append(entries, output.NamedArtifacts{
			Repository: req.Repository.String(),
			Package:    req.Package,
			Artifacts:  art,
		})
	}

	logger.WithField("badges", len(entries)).Debug("badges generated")
	return output.NewWriter(cmd.OutOrStdout(), noColor(cmd)).WriteArtifacts(entries, format)
}

// repositoryURL resolves --repo and --from-git.
func repositoryURL(cmd *cobra.Command) (string, error) {
	repo, _ := cmd.Flags().GetString("repo")
	fromGit, _ := cmd.Flags().GetBool("from-git")

	if repo != "" || !fromGit {
		return repo, nil
	}

	dir, _ := cmd.Flags().GetString("dir")
	origin, err := gitremote.OriginURL(dir)
	if err != nil {
		return "", fmt.Errorf("--from-git: %w", err)
	}
	return origin, nil
}

// flagRequest builds a request from the command line, falling back to the
// config defaults for options left unset.
func flagRequest(cmd *cobra.Command, repoURL string, defaults pullbadge.BadgeOptions) (config.Request, error) {
	repo, err := pullbadge.ParseRepository(repoURL)
	if err != nil {
		return config.Request{}, fmt.Errorf("%q: %w", repoURL, err)
	}

	f := cmd.Flags()
	pkg, _ := f.GetString("package")
	if pkg == "" {
		pkg = repo.Name()
	}

	var opts pullbadge.BadgeOptions
	opts.Label, _ = f.GetString("label")
	opts.Logo, _ = f.GetString("logo")
	opts.Color, _ = f.GetString("color")
	opts.Style, _ = f.GetString("style")

	return config.Request{
		Repository: repo,
		Package:    pkg,
		Options:    opts.Merge(defaults).Merge(pullbadge.DefaultBadgeOptions()),
	}, nil
}
