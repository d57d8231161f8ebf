package client

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCopiedFor is how long the copied indicator stays on.
const DefaultCopiedFor = 2 * time.Second

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// CopyButton copies a value and shows a short lived confirmation.
type CopyButton struct {
	clip       Clipboard
	resetAfter time.Duration
	log        zerolog.Logger

	mu     sync.Mutex
	copied bool
	timer  *time.Timer
	// OnChange, if set, is called with the new indicator state.
	OnChange func(copied bool)
}

// NewCopyButton returns a copy button writing to clip. A non-positive
// resetAfter uses DefaultCopiedFor.
func NewCopyButton(clip Clipboard, resetAfter time.Duration, log zerolog.Logger) *CopyButton {
	if resetAfter <= 0 {
		resetAfter = DefaultCopiedFor
	}
	return &CopyButton{clip: clip, resetAfter: resetAfter, log: log}
}

// CopyLabel is the accessible label of a copy control in the given state.
func CopyLabel(copied bool) string {
	if copied {
		return "Email copied to clipboard"
	}
	return "Copy email to clipboard"
}

// Copied reports whether the confirmation is showing.
func (b *CopyButton) Copied() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copied
}

// Copy writes text to the clipboard. A rejected write is logged and otherwise
// ignored; the indicator keeps its current state.
func (b *CopyButton) Copy(ctx context.Context, text string) {
	if err := b.clip.WriteText(ctx, text); err != nil {
		b.log.Error().Err(err).Msg("failed to copy email")
		return
	}

	b.set(true)
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.resetAfter, b.reset)
	b.mu.Unlock()
}

// Close stops a pending reset.
func (b *CopyButton) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *CopyButton) reset() { b.set(false) }

func (b *CopyButton) set(copied bool) {
	b.mu.Lock()
	changed := b.copied != copied
	b.copied = copied
	onChange := b.OnChange
	b.mu.Unlock()
	if changed && onChange != nil {
		onChange(copied)
	}
}
