package notification

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

func newTestCenter() *Center {
	return NewCenter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func timeout(t *testing.T) <-chan time.Time {
	t.Helper()
	return time.After(time.Second)
}

// countUnread recomputes the unread count from the list so tests can check
// the maintained counter against ground truth.
func countUnread(c *Center) int {
	n := 0
	for _, e := range c.List() {
		if !e.IsRead {
			n++
		}
	}
	return n
}

func TestAddAssignsIDAndOrdersNewestFirst(t *testing.T) {
	c := newTestCenter()

	first := c.Add(domain.Notification{Title: "first"})
	second := c.Add(domain.Notification{Title: "second"})
	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)
	assert.Equal(t, 2, c.Unread())
}

func TestUnreadCountInvariant(t *testing.T) {
	c := newTestCenter()

	a := c.Add(domain.Notification{Title: "a"})
	b := c.Add(domain.Notification{Title: "b"})
	d := c.Add(domain.Notification{Title: "c"})
	assert.Equal(t, countUnread(c), c.Unread())

	c.MarkRead(a.ID)
	assert.Equal(t, 2, c.Unread())
	assert.Equal(t, countUnread(c), c.Unread())

	// marking the same entry again must not double-decrement
	c.MarkRead(a.ID)
	assert.Equal(t, 2, c.Unread())

	// dismissing an unread entry adjusts the count
	c.Dismiss(b.ID)
	assert.Equal(t, 1, c.Unread())
	assert.Equal(t, countUnread(c), c.Unread())
	assert.Len(t, c.List(), 2)

	// dismissing a read entry does not
	c.MarkRead(d.ID)
	c.Dismiss(d.ID)
	assert.Equal(t, 0, c.Unread())
	assert.Len(t, c.List(), 1)

	c.MarkAllRead()
	assert.Equal(t, 0, c.Unread())
	assert.Equal(t, countUnread(c), c.Unread())

	// unknown ids are ignored
	c.MarkRead("nope")
	c.Dismiss("nope")
	assert.Equal(t, 0, c.Unread())
}

func TestDismissRemovesEntry(t *testing.T) {
	c := newTestCenter()
	n := c.Add(domain.Notification{Title: "gone"})
	c.Dismiss(n.ID)
	assert.Empty(t, c.List())
	assert.Equal(t, 0, c.Unread())
}

func TestSubscribeReceivesAnnouncements(t *testing.T) {
	c := newTestCenter()
	ch, cancel := c.Subscribe(4)
	defer cancel()

	added := c.Add(domain.Notification{Title: "toast"})

	select {
	case got := <-ch:
		assert.Equal(t, added.ID, got.ID)
	default:
		t.Fatal("expected an announcement on the subscriber channel")
	}
}

func TestSubscribeDoesNotBlockOnFullSubscriber(t *testing.T) {
	c := newTestCenter()
	_, cancel := c.Subscribe(0) // zero buffer: every announcement drops
	defer cancel()

	done := make(chan struct{})
	go func() {
		c.Add(domain.Notification{Title: "dropped"})
		close(done)
	}()

	select {
	case <-done:
	case <-timeout(t):
		t.Fatal("Add blocked on a full subscriber")
	}
	assert.Len(t, c.List(), 1)
}

func TestSubscribeCancelIsIdempotent(t *testing.T) {
	c := newTestCenter()
	_, cancel := c.Subscribe(1)
	cancel()
	cancel() // second call must be a no-op
	c.Add(domain.Notification{Title: "after cancel"})
	assert.Equal(t, 1, c.Unread())
}
