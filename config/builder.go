package config

import (
	"github.com/jpalmerr/pullbadge"
	"github.com/sirupsen/logrus"
)

// BuildOptions converts the endpoints section into SDK builder options.
// Empty endpoints are left out so the SDK defaults apply.
func BuildOptions(cfg *Config, logger *logrus.Entry) []pullbadge.Option {
	var opts []pullbadge.Option

	if cfg.Endpoints.JSONBadge != "" {
		opts = append(opts, pullbadge.WithJSONBadgeEndpoint(cfg.Endpoints.JSONBadge))
	}
	if cfg.Endpoints.APIBase != "" {
		opts = append(opts, pullbadge.WithAPIBase(cfg.Endpoints.APIBase))
	}
	if cfg.Endpoints.ShieldBase != "" {
		opts = append(opts, pullbadge.WithShieldBase(cfg.Endpoints.ShieldBase))
	}
	if logger != nil {
		opts = append(opts, pullbadge.WithLogger(logger))
	}

	return opts
}

// Request is one badge ready to build.
type Request struct {
	Repository pullbadge.Repository
	Package    string
	Options    pullbadge.BadgeOptions
}

// BuildRequests converts the badges section into build requests.
//
// Each badge's options are merged over the config defaults, which in turn
// fall back to [pullbadge.DefaultBadgeOptions]. A badge without a package
// uses the repository name, the same default the form offers after loading.
func BuildRequests(cfg *Config) ([]Request, error) {
	defaults := cfg.Defaults.Merge(pullbadge.DefaultBadgeOptions())

	requests := make([]Request, 0, len(cfg.Badges))
	for _, bc := range cfg.Badges {
		repo, err := pullbadge.ParseRepository(bc.Repository)
		if err != nil {
			return nil, err
		}

		pkg := bc.Package
		if pkg == "" {
			pkg = repo.Name()
		}

		requests = append(requests, Request{
			Repository: repo,
			Package:    pkg,
			Options:    bc.Options().Merge(defaults),
		})
	}

	return requests, nil
}
