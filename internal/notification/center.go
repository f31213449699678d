package notification

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// Center is the in-memory notification store for the current session.
// Entries are only mutated through its methods; the unread counter is kept
// consistent with the entry list on every mutation. Entries are not
// persisted across restarts.
type Center struct {
	mu      sync.Mutex
	entries []domain.Notification // newest first
	unread  int

	subMu  sync.Mutex
	subs   []chan domain.Notification
	logger *slog.Logger
}

// NewCenter returns an empty notification center.
func NewCenter(logger *slog.Logger) *Center {
	return &Center{logger: logger}
}

// Add stores the entry and announces it to all subscribers without
// blocking. The entry's ID and CreatedAt are filled in when empty.
func (c *Center) Add(n domain.Notification) domain.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	c.mu.Lock()
	c.entries = append([]domain.Notification{n}, c.entries...)
	if !n.IsRead {
		c.unread++
	}
	c.mu.Unlock()

	c.publish(n)
	return n
}

// publish delivers the entry to subscribers. A subscriber that cannot keep
// up has the announcement dropped rather than blocking the caller.
func (c *Center) publish(n domain.Notification) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- n:
		default:
			c.logger.Warn("dropping notification announcement, subscriber full",
				slog.String("id", n.ID))
		}
	}
}

// Subscribe registers a channel that receives every added entry. The
// returned cancel function removes the subscription and is idempotent.
func (c *Center) Subscribe(buffer int) (<-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, buffer)

	c.subMu.Lock()
	c.subs = append(c.subs, ch)
	c.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.subMu.Lock()
			defer c.subMu.Unlock()
			for i, sub := range c.subs {
				if sub == ch {
					c.subs = append(c.subs[:i], c.subs[i+1:]...)
					break
				}
			}
		})
	}
	return ch, cancel
}

// MarkRead flips a single entry to read. Unknown ids are ignored.
func (c *Center) MarkRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == id {
			if !c.entries[i].IsRead {
				c.entries[i].IsRead = true
				c.unread--
			}
			return
		}
	}
}

// MarkAllRead flips every entry to read.
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		c.entries[i].IsRead = true
	}
	c.unread = 0
}

// Dismiss removes the entry entirely, adjusting the unread count when the
// removed entry was unread. Unknown ids are ignored.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == id {
			if !c.entries[i].IsRead {
				c.unread--
			}
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// List returns a copy of all entries, newest first.
func (c *Center) List() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Notification(nil), c.entries...)
}

// Unread returns the number of unread entries.
func (c *Center) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}
