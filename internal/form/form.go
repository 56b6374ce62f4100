// Package form is the event-driven controller behind the interactive badge
// form. It owns one pullbadge.Session, runs the clipboard effect, drives
// the toast timers and publishes a store.Snapshot after every change.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jpalmerr/pullbadge"
	"github.com/jpalmerr/pullbadge/internal/notice"
	"github.com/jpalmerr/pullbadge/internal/store"
	"github.com/sirupsen/logrus"
)

// Kind is the type of a form event.
type Kind string

const (
	KindRepository Kind = "repo"
	KindLoad       Kind = "load"
	KindSelect     Kind = "select"
	KindPackage    Kind = "package"
	KindLabel      Kind = "label"
	KindLogo       Kind = "logo"
	KindColor      Kind = "color"
	KindStyle      Kind = "style"
	KindCopy       Kind = "copy"
)

// Event is one user interaction.
type Event struct {
	Kind  Kind
	Value string
}

// ErrUnknownEvent is returned by Apply for an unsupported event kind.
var ErrUnknownEvent = errors.New("unknown event")

// Config configures a Form. Zero fields get defaults.
type Config struct {
	// Builder builds the artifacts. Defaults to pullbadge.DefaultBuilder().
	Builder *pullbadge.Builder

	// Store receives snapshots. Defaults to a new MemoryStore.
	Store store.Store

	// Clipboard performs copies. A nil clipboard makes every copy fail
	// with a notice.
	Clipboard pullbadge.Clipboard

	// Defaults seeds the badge options; empty fields keep the session defaults.
	Defaults pullbadge.BadgeOptions

	// ToastDuration defaults to pullbadge.NoticeDuration.
	ToastDuration time.Duration

	// AckDuration defaults to pullbadge.AcknowledgeDuration.
	AckDuration time.Duration

	Logger *logrus.Entry
}

// Form applies events to a session and publishes the result.
//
// Form is safe for concurrent use; timers publish from their own goroutines.
type Form struct {
	mu        sync.Mutex
	id        string
	version   uint64
	session   pullbadge.Session
	store     store.Store
	notifier  *notice.Notifier
	clipboard pullbadge.Clipboard
	logger    *logrus.Entry
}

// New creates a Form and publishes its initial snapshot.
func New(cfg Config) *Form {
	if cfg.Builder == nil {
		cfg.Builder = pullbadge.DefaultBuilder()
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = pullbadge.NoticeDuration
	}
	if cfg.AckDuration <= 0 {
		cfg.AckDuration = pullbadge.AcknowledgeDuration
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	id := uuid.NewString()
	s := pullbadge.NewSession(cfg.Builder)
	s = s.SetOptions(cfg.Defaults.Merge(s.Options()))

	f := &Form{
		id:        id,
		session:   s,
		store:     cfg.Store,
		clipboard: cfg.Clipboard,
		logger:    cfg.Logger.WithField("form_id", id),
	}
	f.notifier = notice.New(cfg.ToastDuration, cfg.AckDuration, f.publish)
	f.publish()
	return f
}

// ID returns the form id used as the snapshot key.
func (f *Form) ID() string {
	return f.id
}

// Session returns the current session.
func (f *Form) Session() pullbadge.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

// Snapshot returns the latest published snapshot.
func (f *Form) Snapshot() store.Snapshot {
	snap, _ := f.store.Get(f.id)
	return snap
}

// Close stops pending timers. The form must not be used afterwards.
func (f *Form) Close() {
	f.notifier.Stop()
}

// Apply handles one event.
//
// Domain failures (an invalid URL, a missing repository, a failed copy) are
// reported through the hint or a toast and return nil. Apply returns an
// error only for malformed events: an unknown kind, an unknown copy target
// or a package that is not in the list.
func (f *Form) Apply(ctx context.Context, ev Event) error {
	if ev.Kind == KindCopy {
		return f.copy(ctx, ev.Value)
	}

	f.mu.Lock()
	prev := f.session
	next, err := f.reduce(prev, ev)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.session = next
	f.mu.Unlock()

	if prev.Stage() != next.Stage() {
		f.logger.WithFields(logrus.Fields{
			"from":       prev.Stage().String(),
			"to":         next.Stage().String(),
			"repository": next.Repository().String(),
		}).Debug("form stage changed")
	}

	f.publish()
	return nil
}

// reduce maps an event onto a session reducer.
func (f *Form) reduce(s pullbadge.Session, ev Event) (pullbadge.Session, error) {
	switch ev.Kind {
	case KindRepository:
		next, _ := s.EnterRepository(ev.Value)
		return next, nil
	case KindLoad:
		// a missing repository is surfaced through the hint
		next, _ := s.LoadPackages()
		return next, nil
	case KindSelect:
		return s.SelectPackage(ev.Value)
	case KindPackage:
		return s.SetPackageName(ev.Value), nil
	case KindLabel:
		return s.SetLabel(ev.Value), nil
	case KindLogo:
		return s.SetLogo(ev.Value), nil
	case KindColor:
		return s.SetColor(ev.Value), nil
	case KindStyle:
		return s.SetStyle(ev.Value), nil
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
}

// copy writes one artifact to the clipboard and shows the outcome.
func (f *Form) copy(ctx context.Context, target string) error {
	field, err := pullbadge.ParseField(target)
	if err != nil {
		return err
	}
	if f.notifier.IsAcknowledged(string(field)) {
		// trigger is disabled until the acknowledgment reverts
		return nil
	}

	f.mu.Lock()
	text := f.session.Artifacts().Get(field)
	f.mu.Unlock()

	res := pullbadge.Copy(ctx, f.clipboard, text, f.logger)
	f.notifier.Show(res.Notice)
	if res.Acknowledged {
		f.notifier.Acknowledge(string(field))
	}
	return nil
}

// publish stores a snapshot of the current state.
//
// The notifier is read under f.mu so the highest version always carries
// the latest toast. The notifier never calls back while holding its lock.
func (f *Form) publish() {
	f.mu.Lock()
	f.version++
	snap := buildSnapshot(f.id, f.version, f.session)
	snap.Toast = f.notifier.Current().Message
	snap.Acknowledged = f.notifier.Acknowledged()
	// update under the lock so versions reach the store in order
	f.store.Update(snap)
	f.mu.Unlock()
}

// buildSnapshot converts a session into the store representation.
func buildSnapshot(id string, version uint64, s pullbadge.Session) store.Snapshot {
	p := s.Presentation()
	hint := s.Hint()
	opts := s.Options()

	visible := make([]string, len(p.Visible))
	for i, sec := range p.Visible {
		visible[i] = string(sec)
	}

	var artifacts map[string]string
	if art := s.Artifacts(); !art.IsEmpty() {
		artifacts = make(map[string]string, len(pullbadge.Fields()))
		for _, field := range pullbadge.Fields() {
			artifacts[string(field)] = art.Get(field)
		}
	}

	return store.Snapshot{
		FormID:      id,
		Version:     version,
		Stage:       s.Stage().String(),
		Repository:  s.Repository().String(),
		HintMessage: hint.Message,
		HintTone:    string(hint.Tone),
		Visible:     visible,
		LoadEnabled: p.LoadEnabled,
		Packages:    s.Packages(),
		PackageName: s.PackageName(),
		Options: map[string]string{
			"label": opts.Label,
			"logo":  opts.Logo,
			"color": opts.Color,
			"style": opts.Style,
		},
		Artifacts:     artifacts,
		PreviewSource: p.PreviewSource,
		UpdatedAt:     time.Now(),
	}
}
