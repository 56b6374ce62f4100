package form

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/jpalmerr/pullbadge"
	"github.com/jpalmerr/pullbadge/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClipboard struct {
	texts []string
	err   error
}

func (r *recordingClipboard) WriteText(_ context.Context, text string) error {
	if r.err != nil {
		return r.err
	}
	r.texts = append(r.texts, text)
	return nil
}

func newTestForm(t *testing.T, cb pullbadge.Clipboard) (*Form, *store.MemoryStore) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	st := store.NewMemoryStore()
	f := New(Config{
		Store:         st,
		Clipboard:     cb,
		ToastDuration: 200 * time.Millisecond,
		AckDuration:   200 * time.Millisecond,
		Logger:        logrus.NewEntry(logger),
	})
	t.Cleanup(f.Close)
	return f, st
}

func apply(t *testing.T, f *Form, events ...Event) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, f.Apply(context.Background(), ev))
	}
}

func TestNew_PublishesInitialSnapshot(t *testing.T) {
	f, st := newTestForm(t, nil)

	snap, ok := st.Get(f.ID())
	require.True(t, ok)
	assert.Equal(t, uint64(1), snap.Version)
	assert.Equal(t, "no-repo", snap.Stage)
	assert.Equal(t, "info", snap.HintTone)
	assert.Equal(t, []string{"repository"}, snap.Visible)
	assert.False(t, snap.LoadEnabled)
	assert.Nil(t, snap.Artifacts)
	assert.Equal(t, "ghcr pulls", snap.Options["label"])
}

func TestNew_Defaults(t *testing.T) {
	f := New(Config{Defaults: pullbadge.BadgeOptions{Logo: "docker"}})
	defer f.Close()

	opts := f.Session().Options()
	assert.Equal(t, "docker", opts.Logo)
	assert.Equal(t, pullbadge.DefaultLabel, opts.Label)
	assert.Equal(t, pullbadge.ColorDefault, opts.Color)
}

func TestForm_FullFlow(t *testing.T) {
	f, _ := newTestForm(t, nil)

	apply(t, f, Event{Kind: KindRepository, Value: "https://github.com/acme/widget"})
	snap := f.Snapshot()
	assert.Equal(t, "repo-ready", snap.Stage)
	assert.Equal(t, "Ready: acme/widget", snap.HintMessage)
	assert.True(t, snap.LoadEnabled)

	apply(t, f,
		Event{Kind: KindLoad},
		Event{Kind: KindLabel, Value: "pulls"},
		Event{Kind: KindLogo, Value: "docker"},
		Event{Kind: KindColor, Value: "blue"},
		Event{Kind: KindStyle, Value: "flat-square"},
	)

	snap = f.Snapshot()
	assert.Equal(t, "package-loaded", snap.Stage)
	assert.Equal(t, []string{"repository", "package", "customize", "preview", "output"}, snap.Visible)
	assert.Equal(t, []string{"widget"}, snap.Packages)
	assert.Contains(t, snap.Artifacts["json-url"], "&label=pulls&logo=docker&color=blue&style=flat-square")
	assert.Equal(t, "https://ghcr-badge.elias.eu.org/shield/acme/widget/widget", snap.Artifacts["direct-url"])
	assert.Equal(t, snap.Artifacts["json-url"], snap.PreviewSource)

	apply(t, f, Event{Kind: KindPackage, Value: "widget-cli"})
	assert.Equal(t, "https://ghcr-badge.elias.eu.org/shield/acme/widget/widget-cli", f.Snapshot().Artifacts["direct-url"])

	apply(t, f, Event{Kind: KindSelect, Value: "widget"})
	assert.Equal(t, "widget", f.Snapshot().PackageName)
}

func TestForm_IdentityChangeResets(t *testing.T) {
	f, _ := newTestForm(t, nil)

	apply(t, f,
		Event{Kind: KindRepository, Value: "https://github.com/acme/widget"},
		Event{Kind: KindLoad},
		Event{Kind: KindRepository, Value: "https://github.com/acme/gadget"},
	)

	snap := f.Snapshot()
	assert.Equal(t, "repo-ready", snap.Stage)
	assert.Nil(t, snap.Artifacts)
	assert.Empty(t, snap.Packages)
	assert.Equal(t, []string{"repository"}, snap.Visible)
}

func TestForm_LoadWithoutRepositoryIsNotAnError(t *testing.T) {
	f, _ := newTestForm(t, nil)

	apply(t, f, Event{Kind: KindLoad})

	snap := f.Snapshot()
	assert.Equal(t, "error", snap.HintTone)
	assert.Equal(t, "Add a valid repository URL before continuing.", snap.HintMessage)
}

func TestForm_MalformedEvents(t *testing.T) {
	f, _ := newTestForm(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, f.Apply(ctx, Event{Kind: "bogus"}), ErrUnknownEvent)
	assert.Error(t, f.Apply(ctx, Event{Kind: KindCopy, Value: "bogus"}))
	assert.Error(t, f.Apply(ctx, Event{Kind: KindSelect, Value: "missing"}))
}

func TestForm_CopySuccess(t *testing.T) {
	cb := &recordingClipboard{}
	f, _ := newTestForm(t, cb)

	apply(t, f,
		Event{Kind: KindRepository, Value: "https://github.com/acme/widget"},
		Event{Kind: KindLoad},
		Event{Kind: KindCopy, Value: "direct-markdown"},
	)

	require.Len(t, cb.texts, 1)
	assert.Equal(t, "![GHCR Pulls](https://ghcr-badge.elias.eu.org/shield/acme/widget/widget)", cb.texts[0])

	snap := f.Snapshot()
	assert.Equal(t, "Copied to clipboard!", snap.Toast)
	assert.Equal(t, []string{"direct-markdown"}, snap.Acknowledged)

	// disabled while acknowledged
	apply(t, f, Event{Kind: KindCopy, Value: "direct-markdown"})
	assert.Len(t, cb.texts, 1)

	assert.Eventually(t, func() bool {
		s := f.Snapshot()
		return s.Toast == "" && len(s.Acknowledged) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestForm_CopyBeforeArtifacts(t *testing.T) {
	cb := &recordingClipboard{}
	f, _ := newTestForm(t, cb)

	apply(t, f, Event{Kind: KindCopy, Value: "json-url"})

	assert.Empty(t, cb.texts)
	assert.Equal(t, "Nothing to copy yet. Complete the steps above first.", f.Snapshot().Toast)
	assert.Empty(t, f.Snapshot().Acknowledged)
}

func TestForm_CopyFailureLeavesStateAlone(t *testing.T) {
	cb := &recordingClipboard{err: errors.New("denied")}
	f, _ := newTestForm(t, cb)

	apply(t, f,
		Event{Kind: KindRepository, Value: "https://github.com/acme/widget"},
		Event{Kind: KindLoad},
	)
	before := f.Session()

	apply(t, f, Event{Kind: KindCopy, Value: "json-url"})

	assert.Equal(t, before, f.Session())
	snap := f.Snapshot()
	assert.Equal(t, "Copy failed. Please select the text manually.", snap.Toast)
	assert.Empty(t, snap.Acknowledged)
	assert.Equal(t, "package-loaded", snap.Stage)
}

func TestForm_SubscribersSeeVersionsInOrder(t *testing.T) {
	f, st := newTestForm(t, nil)
	ch := st.Subscribe()
	defer st.Unsubscribe(ch)

	apply(t, f,
		Event{Kind: KindRepository, Value: "https://github.com/acme/widget"},
		Event{Kind: KindLoad},
	)

	first := <-ch
	second := <-ch
	assert.Equal(t, first.Version+1, second.Version)
	assert.Equal(t, "package-loaded", second.Stage)
}

func TestForm_ExpiredToastNotRepublishedByConcurrentEvents(t *testing.T) {
	cb := &recordingClipboard{}
	f, st := newTestForm(t, cb)

	apply(t, f,
		Event{Kind: KindRepository, Value: "https://github.com/acme/widget"},
		Event{Kind: KindLoad},
		Event{Kind: KindCopy, Value: "json-url"},
	)
	require.Equal(t, "Copied to clipboard!", f.Snapshot().Toast)

	// keep publishing across the toast and acknowledgment expiry
	var wg sync.WaitGroup
	deadline := time.Now().Add(400 * time.Millisecond)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				_ = f.Apply(context.Background(), Event{Kind: KindLabel, Value: "pulls"})
			}
		}()
	}
	wg.Wait()

	snap, ok := st.Get(f.ID())
	require.True(t, ok)
	assert.Empty(t, snap.Toast)
	assert.Empty(t, snap.Acknowledged)
}
