package pullbadge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedSession(t *testing.T, raw string) Session {
	t.Helper()
	s, tr := NewSession(nil).EnterRepository(raw)
	require.Equal(t, TransitionIdentityChanged, tr)
	s, err := s.LoadPackages()
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := NewSession(nil)

	assert.Equal(t, StageNoRepo, s.Stage())
	assert.False(t, s.PackageLoaded())
	assert.False(t, s.CanLoadPackages())
	assert.True(t, s.Artifacts().IsEmpty())
	assert.Equal(t, Hint{Message: "Enter the full URL of a GitHub repository.", Tone: ToneInfo}, s.Hint())
	assert.Equal(t, DefaultBadgeOptions(), s.Options())
}

func TestSession_EnterRepository(t *testing.T) {
	s, tr := NewSession(nil).EnterRepository("https://github.com/acme/widget")

	assert.Equal(t, TransitionIdentityChanged, tr)
	assert.Equal(t, StageRepoReady, s.Stage())
	assert.Equal(t, "acme/widget", s.Repository().String())
	assert.True(t, s.CanLoadPackages())
	assert.Equal(t, Hint{Message: "Ready: acme/widget", Tone: ToneSuccess}, s.Hint())
}

func TestSession_EnterRepository_Invalid(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")

	s, tr := s.EnterRepository("https://github.com/acme")

	assert.Equal(t, TransitionInvalid, tr)
	assert.Equal(t, StageNoRepo, s.Stage())
	assert.True(t, s.Repository().IsZero())
	assert.False(t, s.CanLoadPackages())
	assert.Empty(t, s.Packages())
	assert.Empty(t, s.PackageName())
	assert.True(t, s.Artifacts().IsEmpty())
	assert.Equal(t, ToneError, s.Hint().Tone)
}

func TestSession_EnterRepository_GitSuffixOnly(t *testing.T) {
	s, tr := NewSession(nil).EnterRepository("https://github.com/acme/.git")

	assert.Equal(t, TransitionInvalid, tr)
	assert.Equal(t, StageNoRepo, s.Stage())
	assert.False(t, s.CanLoadPackages())
	assert.Equal(t, Hint{Message: "Enter the full URL of a GitHub repository.", Tone: ToneError}, s.Hint())
}

func TestSession_IdentityChangeResetsLoadedPackage(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")
	require.False(t, s.Artifacts().IsEmpty())

	s, tr := s.EnterRepository("https://github.com/acme/gadget")

	assert.Equal(t, TransitionIdentityChanged, tr)
	assert.Equal(t, StageRepoReady, s.Stage())
	assert.Empty(t, s.Packages())
	assert.Empty(t, s.PackageName())
	assert.True(t, s.Artifacts().IsEmpty())
}

func TestSession_SameIdentityKeepsLoadedPackage(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")
	before := s.Artifacts()

	s, tr := s.EnterRepository("https://github.com/acme/widget.git/")

	assert.Equal(t, TransitionUnchanged, tr)
	assert.Equal(t, StagePackageLoaded, s.Stage())
	assert.Equal(t, before, s.Artifacts())
	assert.Equal(t, []string{"widget"}, s.Packages())
}

func TestSession_LoadPackages(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")

	assert.Equal(t, StagePackageLoaded, s.Stage())
	assert.Equal(t, []string{"widget"}, s.Packages())
	assert.Equal(t, "widget", s.PackageName())
	assert.Equal(t, Hint{
		Message: "Using widget as the default package. Adjust if the package name differs.",
		Tone:    ToneInfo,
	}, s.Hint())
	assert.Equal(t, acmeShieldURL, s.Artifacts().DirectURL)
	assert.Contains(t, s.Artifacts().JSONURL, "&label=ghcr+pulls")
}

func TestSession_LoadPackagesWithoutRepository(t *testing.T) {
	s, err := NewSession(nil).LoadPackages()

	assert.ErrorIs(t, err, ErrMissingRepository)
	assert.Equal(t, StageNoRepo, s.Stage())
	assert.Equal(t, Hint{Message: "Add a valid repository URL before continuing.", Tone: ToneError}, s.Hint())
}

func TestSession_EditsBeforeLoadDoNotBuild(t *testing.T) {
	s, _ := NewSession(nil).EnterRepository("https://github.com/acme/widget")

	s = s.SetPackageName("widget").SetLabel("pulls").SetLogo("docker")

	assert.True(t, s.Artifacts().IsEmpty())
	assert.Equal(t, "docker", s.Options().Logo)

	// options chosen early are used once loaded
	s, err := s.LoadPackages()
	require.NoError(t, err)
	assert.Contains(t, s.Artifacts().JSONURL, "&label=pulls&logo=docker")
}

func TestSession_EditsRebuildWhenLoaded(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")

	s = s.SetLabel("pulls").SetLogo("docker").SetColor("blue").SetStyle("flat-square")
	assert.Contains(t, s.Artifacts().JSONURL, "&label=pulls&logo=docker&color=blue&style=flat-square")

	s = s.SetLogo(LogoNone).SetColor(ColorDefault).SetStyle(StyleFlat)
	assert.NotContains(t, s.Artifacts().JSONURL, "logo=")
	assert.NotContains(t, s.Artifacts().JSONURL, "color=")
	assert.NotContains(t, s.Artifacts().JSONURL, "style=")

	s = s.SetPackageName("widget-cli")
	assert.Equal(t, "https://ghcr-badge.elias.eu.org/shield/acme/widget/widget-cli", s.Artifacts().DirectURL)

	s = s.SetOptions(BadgeOptions{Label: "downloads"})
	assert.Contains(t, s.Artifacts().JSONMarkdown, "![downloads](")
}

func TestSession_EmptyPackageNameFallsBackToSelection(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")

	s = s.SetPackageName("")

	assert.Equal(t, acmeShieldURL, s.Artifacts().DirectURL)
}

func TestSession_BlankPackageNameClearsArtifacts(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")

	s = s.SetPackageName("   ")
	assert.True(t, s.Artifacts().IsEmpty())
	assert.Equal(t, StagePackageLoaded, s.Stage())

	s = s.SetPackageName("widget")
	assert.False(t, s.Artifacts().IsEmpty())
}

func TestSession_SelectPackage(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")
	s = s.SetPackageName("other")

	s, err := s.SelectPackage("widget")
	require.NoError(t, err)
	assert.Equal(t, "widget", s.PackageName())
	assert.Equal(t, acmeShieldURL, s.Artifacts().DirectURL)

	_, err = s.SelectPackage("missing")
	assert.Error(t, err)
}

func TestSession_ReducersDoNotMutateReceiver(t *testing.T) {
	s := loadedSession(t, "https://github.com/acme/widget")

	_ = s.SetLabel("changed")
	_, _ = s.EnterRepository("https://github.com/other/repo")

	assert.Equal(t, DefaultLabel, s.Options().Label)
	assert.Equal(t, "acme/widget", s.Repository().String())

	pkgs := s.Packages()
	pkgs[0] = "mutated"
	assert.Equal(t, []string{"widget"}, s.Packages())
}

func TestSession_CustomBuilderDefaultLabel(t *testing.T) {
	b, err := New(WithDefaultLabel("downloads"))
	require.NoError(t, err)

	s, _ := NewSession(b).EnterRepository("https://github.com/acme/widget")
	s, err = s.LoadPackages()
	require.NoError(t, err)

	assert.Equal(t, "downloads", s.Options().Label)
	assert.Contains(t, s.Artifacts().JSONURL, "&label=downloads")
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "no-repo", StageNoRepo.String())
	assert.Equal(t, "repo-ready", StageRepoReady.String())
	assert.Equal(t, "package-loaded", StagePackageLoaded.String())
	assert.Equal(t, "stage(9)", Stage(9).String())
}
