package pullbadge

import (
	"regexp"
	"strings"
)

// repositoryPattern accepts any non-slash owner and repo segment. GitHub's
// own naming rules are stricter, but nothing here depends on them.
var repositoryPattern = regexp.MustCompile(`(?i)^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)

var gitSuffixPattern = regexp.MustCompile(`(?i)\.git$`)

// Repository identifies a GitHub repository by owner and name.
//
// Repository is a comparable value type. The zero value means "no
// repository" and is reported by [Repository.IsZero].
type Repository struct {
	owner string
	name  string
}

// NewRepository returns a Repository for the given owner and name.
// Both are trimmed; an error is returned if either ends up empty.
func NewRepository(owner, name string) (Repository, error) {
	owner = strings.TrimSpace(owner)
	name = strings.TrimSpace(name)
	if owner == "" || name == "" {
		return Repository{}, ErrMissingRepository
	}
	return Repository{owner: owner, name: name}, nil
}

// ParseRepository extracts the owner and repo from a GitHub repository URL.
//
// The text is trimmed and must look like https://github.com/OWNER/REPO with
// an optional ".git" suffix and an optional trailing slash. Scheme, host and
// suffix match case-insensitively; owner and repo keep their case.
//
// ParseRepository performs no I/O and never checks that the repository
// exists. Empty or non-matching text, or a repo segment that is only
// ".git", returns [ErrInvalidRepositoryURL].
func ParseRepository(text string) (Repository, error) {
	m := repositoryPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Repository{}, ErrInvalidRepositoryURL
	}

	// "https://github.com/acme/.git" matches with an empty name
	name := gitSuffixPattern.ReplaceAllString(m[2], "")
	if name == "" {
		return Repository{}, ErrInvalidRepositoryURL
	}

	return Repository{owner: m[1], name: name}, nil
}

// Owner returns the account or organization segment.
func (r Repository) Owner() string {
	return r.owner
}

// Name returns the repository name with any ".git" suffix removed.
func (r Repository) Name() string {
	return r.name
}

// IsZero reports whether r has no owner or no name.
func (r Repository) IsZero() bool {
	return r.owner == "" || r.name == ""
}

// Equal reports whether r and other name the same repository.
// Comparison is exact; "Acme/Widget" and "acme/widget" differ.
func (r Repository) Equal(other Repository) bool {
	return r == other
}

// String returns "owner/repo", or "" for the zero value.
func (r Repository) String() string {
	if r.IsZero() {
		return ""
	}
	return r.owner + "/" + r.name
}

// URL returns the canonical https://github.com/owner/repo form.
func (r Repository) URL() string {
	if r.IsZero() {
		return ""
	}
	return "https://github.com/" + r.String()
}
