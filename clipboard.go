package pullbadge

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// NoticeDuration is how long a copy notice stays visible.
	NoticeDuration = 3 * time.Second

	// AcknowledgeDuration is how long a copy button shows "Copied!".
	AcknowledgeDuration = 2 * time.Second
)

const (
	noticeCopied      = "Copied to clipboard!"
	noticeCopyFailed  = "Copy failed. Please select the text manually."
	noticeNothingCopy = "Nothing to copy yet. Complete the steps above first."
)

// Clipboard writes text to a system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Multiplexer selects the OSC 52 passthrough wrapping.
type Multiplexer int

const (
	MultiplexerNone Multiplexer = iota
	MultiplexerTmux
	MultiplexerScreen
)

// OSC52Clipboard copies by writing an OSC 52 escape sequence to a terminal.
// The terminal emulator performs the actual clipboard write, which also
// works over SSH.
type OSC52Clipboard struct {
	mu  sync.Mutex
	out io.Writer
	mux Multiplexer
}

// NewOSC52Clipboard returns a clipboard writing to out, typically os.Stderr.
func NewOSC52Clipboard(out io.Writer, mux Multiplexer) *OSC52Clipboard {
	return &OSC52Clipboard{out: out, mux: mux}
}

// WriteText writes text as an OSC 52 sequence. It honors ctx cancellation
// before writing.
func (c *OSC52Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	seq := osc52.New(text)
	switch c.mux {
	case MultiplexerTmux:
		seq = seq.Tmux()
	case MultiplexerScreen:
		seq = seq.Screen()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := seq.WriteTo(c.out)
	return err
}

// CopyResult is the outcome of [Copy].
type CopyResult struct {
	// Notice is the toast message to show.
	Notice string

	// Acknowledged is true when the trigger should show "Copied!".
	Acknowledged bool

	// Err is nil on success. It wraps [ErrNothingToCopy] or
	// [ErrClipboardWrite]; it is informational and never needs handling.
	Err error
}

// Copy writes text to cb and reports what to tell the user.
//
// Copy never returns an error or panics: a blank text, a failing clipboard
// and a panicking clipboard all become a notice. Failures are logged with a
// correlation id that also appears in CopyResult.Err. A nil logger uses the
// standard logrus logger.
func Copy(ctx context.Context, cb Clipboard, text string, logger *logrus.Entry) CopyResult {
	if strings.TrimSpace(text) == "" {
		return CopyResult{Notice: noticeNothingCopy, Err: ErrNothingToCopy}
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	if err := safeWrite(ctx, cb, text); err != nil {
		correlationID := uuid.NewString()
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"error":          err.Error(),
		}).Warn("clipboard write failed")
		return CopyResult{
			Notice: noticeCopyFailed,
			Err:    fmt.Errorf("%w (correlation_id: %s): %w", ErrClipboardWrite, correlationID, err),
		}
	}

	return CopyResult{Notice: noticeCopied, Acknowledged: true}
}

// safeWrite calls cb.WriteText, turning a panic into an error.
func safeWrite(ctx context.Context, cb Clipboard, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard panic: %v", r)
		}
	}()
	if cb == nil {
		return fmt.Errorf("no clipboard available")
	}
	return cb.WriteText(ctx, text)
}
