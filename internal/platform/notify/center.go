// Package notify holds the user-visible notification collaborator: at most
// one notice at a time, auto-dismissed after a fixed window, superseded
// immediately by any newer notice.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	cartports "storefront-demo/internal/domains/cart/ports"
)

// DefaultTTL matches the original demo's ~2 second display window.
const DefaultTTL = 2 * time.Second

// Notice is the currently displayed message.
type Notice struct {
	Message  string    `json:"message"`
	PostedAt time.Time `json:"postedAt"`
}

var _ cartports.Notifier = (*Center)(nil)

// Center retains the latest notice and schedules its dismissal. Posting while
// a notice is displayed replaces it at once; the superseded dismissal timer is
// stopped so it cannot clear the newer notice.
type Center struct {
	mu      sync.Mutex
	current *Notice
	timer   *time.Timer
	seq     uint64
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

func NewCenter(ttl time.Duration, logger *slog.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, logger: logger, now: time.Now}
}

// Notify implements the cart Notifier port.
func (c *Center) Notify(ctx context.Context, message string) {
	c.Post(ctx, message)
}

// Post displays the message, superseding any current notice.
func (c *Center) Post(ctx context.Context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	c.current = &Notice{Message: message, PostedAt: c.now()}
	c.timer = time.AfterFunc(c.ttl, func() { c.dismiss(seq) })
	if c.logger != nil {
		c.logger.InfoContext(ctx, "notice posted", slog.String("message", message))
	}
}

// Current returns the displayed notice, or nil when none is showing.
func (c *Center) Current() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	clone := *c.current
	return &clone
}

// dismiss clears the notice unless a newer one superseded it.
func (c *Center) dismiss(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.current = nil
	c.timer = nil
}
