package output

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jpalmerr/pullbadge"
	"github.com/jpalmerr/pullbadge/internal/store"
)

// Renderer draws form snapshots as they change.
//
// Render prints only what differs from the previous snapshot, so feeding it
// every published snapshot yields a readable transcript. Sections revealed
// by loading a package follow pullbadge.RevealSchedule; the pause between
// them is skipped when sleep is nil.
//
// Render and Show are safe to call from different goroutines; each one
// prints as a whole, so Show waits for a reveal in progress.
type Renderer struct {
	mu    sync.Mutex
	w     *Writer
	sleep func(time.Duration)
	prev  store.Snapshot
}

// NewRenderer creates a Renderer. Pass time.Sleep to animate reveals.
func NewRenderer(w *Writer, sleep func(time.Duration)) *Renderer {
	return &Renderer{w: w, sleep: sleep}
}

// Run renders every snapshot from ch until it is closed.
func (r *Renderer) Run(ch <-chan store.Snapshot) {
	for snap := range ch {
		r.Render(snap)
	}
}

// Render prints the changes between the previous snapshot and snap.
// Snapshots older than the last rendered one are ignored.
func (r *Renderer) Render(snap store.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.prev
	if prev.FormID == snap.FormID && snap.Version <= prev.Version {
		return
	}
	r.prev = snap

	if snap.HintMessage != prev.HintMessage || snap.HintTone != prev.HintTone {
		r.w.Tone(pullbadge.Tone(snap.HintTone), snap.HintMessage)
	}

	revealed := !slices.Contains(prev.Visible, string(pullbadge.SectionOutput)) &&
		slices.Contains(snap.Visible, string(pullbadge.SectionOutput))
	if revealed {
		r.reveal(snap)
	} else if slices.Contains(snap.Visible, string(pullbadge.SectionOutput)) && artifactsChanged(prev, snap) {
		r.section(pullbadge.SectionPreview, snap)
		r.section(pullbadge.SectionOutput, snap)
	}

	if snap.Toast != "" && snap.Toast != prev.Toast {
		r.w.Plain("» " + snap.Toast)
	}
	for _, target := range snap.Acknowledged {
		if !slices.Contains(prev.Acknowledged, target) {
			r.w.Muted("  [" + target + "] Copied!")
		}
	}
}

// Show prints the whole snapshot regardless of what changed.
func (r *Renderer) Show(snap store.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.w.Tone(pullbadge.Tone(snap.HintTone), snap.HintMessage)
	for _, sec := range pullbadge.Sections() {
		if slices.Contains(snap.Visible, string(sec)) {
			r.section(sec, snap)
		}
	}
	if snap.Toast != "" {
		r.w.Plain("» " + snap.Toast)
	}
}

// reveal prints the newly visible sections on the reveal schedule.
func (r *Renderer) reveal(snap store.Snapshot) {
	var elapsed time.Duration
	for _, step := range pullbadge.RevealSchedule() {
		if r.sleep != nil && step.Delay > elapsed {
			r.sleep(step.Delay - elapsed)
			elapsed = step.Delay
		}
		r.section(step.Section, snap)
	}
}

func (r *Renderer) section(sec pullbadge.Section, snap store.Snapshot) {
	switch sec {
	case pullbadge.SectionRepository:
		repo := snap.Repository
		if repo == "" {
			repo = "(none)"
		}
		r.w.Heading("Repository")
		r.w.Plainf("  %s", repo)
		if !snap.LoadEnabled {
			r.w.Muted("  load: disabled")
		}

	case pullbadge.SectionPackage:
		r.w.Heading("Package")
		r.w.Plainf("  name: %s", snap.PackageName)
		r.w.Muted("  available: " + strings.Join(snap.Packages, ", "))

	case pullbadge.SectionCustomize:
		r.w.Heading("Customize")
		for _, key := range []string{"label", "logo", "color", "style"} {
			r.w.Plainf("  %-6s %s", key+":", snap.Options[key])
		}

	case pullbadge.SectionPreview:
		r.w.Heading("Preview")
		if snap.PreviewSource == "" {
			r.w.Muted("  (no preview)")
			return
		}
		html, err := pullbadge.RenderPreview(snap.Artifacts[string(pullbadge.FieldJSONMarkdown)])
		if err != nil {
			r.w.Tone(pullbadge.ToneError, fmt.Sprintf("preview failed: %v", err))
			return
		}
		r.w.Plain("  " + strings.TrimSpace(html))

	case pullbadge.SectionOutput:
		r.w.Heading("Output")
		if len(snap.Artifacts) == 0 {
			r.w.Muted("  (enter a package name)")
			return
		}
		for _, f := range pullbadge.Fields() {
			r.w.Muted(fmt.Sprintf("  %s [%s]:", f.Title(), f))
			r.w.Plain("    " + snap.Artifacts[string(f)])
		}
	}
}

func artifactsChanged(a, b store.Snapshot) bool {
	if len(a.Artifacts) != len(b.Artifacts) {
		return true
	}
	for k, v := range b.Artifacts {
		if a.Artifacts[k] != v {
			return true
		}
	}
	return false
}
