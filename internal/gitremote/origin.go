// Package gitremote reads the origin remote of a local git checkout so the
// repository URL can be prefilled. It never contacts the remote.
package gitremote

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ErrNoOrigin is returned when the checkout has no usable origin remote.
var ErrNoOrigin = errors.New("no origin remote")

// scpPattern matches git@github.com:owner/repo(.git).
var scpPattern = regexp.MustCompile(`(?i)^[^@/]+@github\.com:([^/]+)/([^/]+?)(?:\.git)?/?$`)

// sshPattern matches ssh://git@github.com/owner/repo(.git).
var sshPattern = regexp.MustCompile(`(?i)^ssh://[^@/]+@github\.com(?::\d+)?/([^/]+)/([^/]+?)(?:\.git)?/?$`)

// OriginURL returns the first URL of the origin remote of the git
// repository containing dir, rewritten to https://github.com/owner/repo when
// it is an SSH GitHub remote. Other URLs are returned unchanged.
func OriginURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open git repository at %s: %w", dir, err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoOrigin
		}
		return "", fmt.Errorf("read origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || strings.TrimSpace(urls[0]) == "" {
		return "", ErrNoOrigin
	}
	return Normalize(urls[0]), nil
}

// Normalize rewrites SSH GitHub remotes to their https form.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, p := range []*regexp.Regexp{scpPattern, sshPattern} {
		if m := p.FindStringSubmatch(raw); m != nil {
			return "https://github.com/" + m[1] + "/" + m[2]
		}
	}
	return raw
}
