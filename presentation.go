package pullbadge

import "time"

// Section is one step of the badge form.
type Section string

const (
	SectionRepository Section = "repository"
	SectionPackage    Section = "package"
	SectionCustomize  Section = "customize"
	SectionPreview    Section = "preview"
	SectionOutput     Section = "output"
)

// Sections lists every section in display order.
func Sections() []Section {
	return []Section{
		SectionRepository,
		SectionPackage,
		SectionCustomize,
		SectionPreview,
		SectionOutput,
	}
}

// Presentation is what a rendering layer should show for a [Session].
// It is computed purely from the session stage.
type Presentation struct {
	// Visible lists the shown sections in display order.
	Visible []Section

	// LoadEnabled mirrors the enabled state of the "load packages" action.
	LoadEnabled bool

	// PreviewSource is the image URL for the preview, empty when hidden.
	PreviewSource string

	// PreviewAlt is the preview alt text.
	PreviewAlt string
}

// IsVisible reports whether sec is shown.
func (p Presentation) IsVisible(sec Section) bool {
	for _, v := range p.Visible {
		if v == sec {
			return true
		}
	}
	return false
}

// Presentation projects the session onto visible sections.
func (s Session) Presentation() Presentation {
	p := Presentation{
		Visible:     []Section{SectionRepository},
		LoadEnabled: s.CanLoadPackages(),
	}
	if s.stage != StagePackageLoaded {
		return p
	}

	p.Visible = Sections()
	if !s.artifacts.IsEmpty() {
		p.PreviewSource = s.artifacts.JSONURL
		p.PreviewAlt = effectiveLabel(s.options.Label, s.builder.defaultLabel)
	}
	return p
}

// Reveal is a section with the delay after which it should appear.
type Reveal struct {
	Section Section
	Delay   time.Duration
}

// revealStep is the gap between consecutive reveals.
const revealStep = 150 * time.Millisecond

// RevealSchedule returns the staggered reveal offsets used when a package
// is loaded. Reveals are independent; repeating one is harmless.
func RevealSchedule() []Reveal {
	steps := []Section{SectionPackage, SectionCustomize, SectionPreview, SectionOutput}
	out := make([]Reveal, len(steps))
	for i, sec := range steps {
		out[i] = Reveal{Section: sec, Delay: time.Duration(i) * revealStep}
	}
	return out
}
