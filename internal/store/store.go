package store

import "time"

// Snapshot is everything a renderer needs to draw one form.
//
// Snapshot is decoupled from the pullbadge types so renderers and the
// controller can evolve independently. Slices and maps in a published
// Snapshot must not be modified.
type Snapshot struct {
	// FormID identifies the form that produced the snapshot.
	FormID string `json:"form_id"`

	// Version increases by one with every published snapshot of a form.
	Version uint64 `json:"version"`

	// Stage is the session stage name ("no-repo", "repo-ready", "package-loaded").
	Stage string `json:"stage"`

	// Repository is "owner/repo", empty when none is accepted.
	Repository string `json:"repository"`

	// HintMessage and HintTone describe the inline repository hint.
	HintMessage string `json:"hint_message"`
	HintTone    string `json:"hint_tone"`

	// Visible lists the shown sections in display order.
	Visible []string `json:"visible"`

	// LoadEnabled reports whether packages can be loaded.
	LoadEnabled bool `json:"load_enabled"`

	// Packages are the selectable package names.
	Packages []string `json:"packages"`

	// PackageName is the package name field as typed.
	PackageName string `json:"package_name"`

	// Options holds label, logo, color and style.
	Options map[string]string `json:"options"`

	// Artifacts maps artifact field ids to their text, in no particular order.
	Artifacts map[string]string `json:"artifacts"`

	// PreviewSource is the preview image URL, empty when there is none.
	PreviewSource string `json:"preview_source"`

	// Toast is the visible notice, empty when hidden.
	Toast string `json:"toast"`

	// Acknowledged lists copy targets currently showing "Copied!".
	Acknowledged []string `json:"acknowledged"`

	// UpdatedAt is when the snapshot was published.
	UpdatedAt time.Time `json:"updated_at"`
}

// Store defines the interface for storing and subscribing to snapshots.
//
// Store implementations must be safe for concurrent access.
type Store interface {
	// Update stores a snapshot and notifies all subscribers.
	// Snapshots are keyed by FormID, so later updates replace earlier ones.
	Update(snap Snapshot)

	// Get returns the latest snapshot of a form.
	Get(formID string) (Snapshot, bool)

	// GetAll returns the latest snapshot of every form.
	GetAll() []Snapshot

	// Subscribe returns a channel that receives snapshots.
	// Caller must call Unsubscribe when done to prevent resource leaks.
	Subscribe() <-chan Snapshot

	// Unsubscribe removes a subscription and closes the channel.
	// Safe to call with a channel that was already unsubscribed.
	Unsubscribe(ch <-chan Snapshot)
}
