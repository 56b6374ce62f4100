package pullbadge

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Stage is the position of a [Session] in the form flow.
type Stage int

const (
	// StageNoRepo means no valid repository URL has been entered.
	StageNoRepo Stage = iota

	// StageRepoReady means a repository was accepted but packages are not
	// loaded yet.
	StageRepoReady

	// StagePackageLoaded means a package was confirmed; every edit from here
	// rebuilds the artifacts.
	StagePackageLoaded
)

// String returns the stage name used in logs.
func (s Stage) String() string {
	switch s {
	case StageNoRepo:
		return "no-repo"
	case StageRepoReady:
		return "repo-ready"
	case StagePackageLoaded:
		return "package-loaded"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Transition describes what [Session.EnterRepository] did.
type Transition int

const (
	// TransitionInvalid means the text did not parse; the flow was reset.
	TransitionInvalid Transition = iota

	// TransitionIdentityChanged means a new owner/repo was accepted and all
	// derived state was reset.
	TransitionIdentityChanged

	// TransitionUnchanged means the text resolved to the current owner/repo.
	TransitionUnchanged
)

// Tone classifies a [Hint] for display.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// Hint is the inline status message under the repository field.
type Hint struct {
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`
}

const (
	hintEnterRepository = "Enter the full URL of a GitHub repository."
	hintNeedRepository  = "Add a valid repository URL before continuing."
)

// Session is the state of one badge form.
//
// Session is a value; every method returns a new Session and leaves the
// receiver untouched, so a caller can keep history or compare states. The
// zero Session is not usable; start from [NewSession].
type Session struct {
	builder     *Builder
	repo        Repository
	stage       Stage
	packages    []string
	packageName string
	options     BadgeOptions
	artifacts   Artifacts
	hint        Hint
}

// NewSession returns a session in [StageNoRepo] with default badge options.
// A nil builder uses [DefaultBuilder].
func NewSession(b *Builder) Session {
	if b == nil {
		b = defaultBuilder
	}
	opts := DefaultBadgeOptions()
	opts.Label = b.defaultLabel
	return Session{
		builder: b,
		options: opts,
		hint:    Hint{Message: hintEnterRepository, Tone: ToneInfo},
	}
}

// Repository returns the accepted repository, or the zero value.
func (s Session) Repository() Repository { return s.repo }

// Stage returns the current stage.
func (s Session) Stage() Stage { return s.stage }

// PackageLoaded reports whether the session is in [StagePackageLoaded].
func (s Session) PackageLoaded() bool { return s.stage == StagePackageLoaded }

// Packages returns a copy of the selectable package names.
func (s Session) Packages() []string { return slices.Clone(s.packages) }

// PackageName returns the package name field as typed.
func (s Session) PackageName() string { return s.packageName }

// Options returns the current badge options.
func (s Session) Options() BadgeOptions { return s.options }

// Artifacts returns the derived artifacts. They are empty unless a package
// is loaded and the package name is not blank.
func (s Session) Artifacts() Artifacts { return s.artifacts }

// Hint returns the current status hint.
func (s Session) Hint() Hint { return s.hint }

// CanLoadPackages reports whether [Session.LoadPackages] would succeed.
func (s Session) CanLoadPackages() bool { return !s.repo.IsZero() }

// EnterRepository applies new repository text.
//
// Invalid text clears the repository and resets the flow. Text that
// resolves to a different owner/repo resets the flow and moves to
// [StageRepoReady]. Text that resolves to the same owner/repo keeps the
// current stage, so a loaded package stays loaded.
func (s Session) EnterRepository(text string) (Session, Transition) {
	repo, err := ParseRepository(text)
	if err != nil {
		s = s.reset()
		s.repo = Repository{}
		s.stage = StageNoRepo
		s.hint = Hint{Message: hintEnterRepository, Tone: ToneError}
		return s, TransitionInvalid
	}

	transition := TransitionUnchanged
	if !s.repo.Equal(repo) {
		s = s.reset()
		s.stage = StageRepoReady
		transition = TransitionIdentityChanged
	}

	s.repo = repo
	s.hint = Hint{Message: "Ready: " + repo.String(), Tone: ToneSuccess}
	return s, transition
}

// LoadPackages confirms the repository and offers its name as the default
// package. It moves to [StagePackageLoaded] and builds the artifacts.
//
// Returns [ErrMissingRepository] and an error hint if no repository has
// been accepted.
func (s Session) LoadPackages() (Session, error) {
	if s.repo.IsZero() {
		s.hint = Hint{Message: hintNeedRepository, Tone: ToneError}
		return s, ErrMissingRepository
	}

	name := s.repo.Name()
	s.packages = []string{name}
	s.packageName = name
	s.stage = StagePackageLoaded
	s.hint = Hint{
		Message: fmt.Sprintf("Using %s as the default package. Adjust if the package name differs.", name),
		Tone:    ToneInfo,
	}
	return s.rebuild(), nil
}

// SelectPackage copies a listed package into the package name field.
// Returns an error if name is not one of [Session.Packages].
func (s Session) SelectPackage(name string) (Session, error) {
	if !slices.Contains(s.packages, name) {
		return s, fmt.Errorf("package %q is not in the list", name)
	}
	s.packageName = name
	return s.rebuild(), nil
}

// SetPackageName replaces the package name field.
func (s Session) SetPackageName(name string) Session {
	s.packageName = name
	return s.rebuild()
}

// SetOptions replaces all badge options.
func (s Session) SetOptions(opts BadgeOptions) Session {
	s.options = opts
	return s.rebuild()
}

// SetLabel replaces the badge label.
func (s Session) SetLabel(label string) Session {
	s.options.Label = label
	return s.rebuild()
}

// SetLogo replaces the logo; [LogoNone] removes it.
func (s Session) SetLogo(logo string) Session {
	s.options.Logo = logo
	return s.rebuild()
}

// SetColor replaces the color; [ColorDefault] removes it.
func (s Session) SetColor(color string) Session {
	s.options.Color = color
	return s.rebuild()
}

// SetStyle replaces the style; [StyleFlat] removes it.
func (s Session) SetStyle(style string) Session {
	s.options.Style = style
	return s.rebuild()
}

// effectivePackage is the typed name, or the first listed package when the
// field is empty.
func (s Session) effectivePackage() string {
	name := s.packageName
	if name == "" && len(s.packages) > 0 {
		name = s.packages[0]
	}
	return strings.TrimSpace(name)
}

// rebuild recomputes all artifacts. Outside StagePackageLoaded it is a
// no-op; any build error clears every artifact.
func (s Session) rebuild() Session {
	if s.stage != StagePackageLoaded {
		return s
	}

	art, err := s.builder.Build(s.repo, s.effectivePackage(), s.options)
	if err != nil {
		if !errors.Is(err, ErrMissingPackageName) && !errors.Is(err, ErrMissingRepository) {
			s.builder.logger.WithError(err).Warn("badge build failed")
		}
		s.artifacts = Artifacts{}
		return s
	}
	s.artifacts = art
	return s
}

// reset drops everything derived from the repository. Badge options
// survive, matching a form whose style fields are not cleared.
func (s Session) reset() Session {
	s.stage = StageNoRepo
	s.packages = nil
	s.packageName = ""
	s.artifacts = Artifacts{}
	return s
}
