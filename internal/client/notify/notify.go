// Package notify implements transient user-facing notifications
// (toasts): short messages that appear on an event and remove
// themselves after a duration.
package notify

import (
	"sync"
	"time"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

// Toast is one transient notification. IDs are time-derived and unique
// within a Center, which is what makes targeted removal work.
type Toast struct {
	ID      int64
	Message string
	Type    Type
}

// Center keeps the active toasts in insertion order. An optional sink
// is invoked for every added toast (the CLI uses it to print them).
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	lastID int64
	ttl    time.Duration
	sink   func(Toast)
}

// NewCenter builds a Center whose toasts expire after ttl. A ttl of
// zero disables auto-expiry.
func NewCenter(ttl time.Duration, sink func(Toast)) *Center {
	return &Center{ttl: ttl, sink: sink}
}

// Add registers a toast and returns its ID. Toasts added within the
// same millisecond still get distinct IDs.
func (c *Center) Add(message string, t Type) int64 {
	c.mu.Lock()
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	toast := Toast{ID: id, Message: message, Type: t}
	c.toasts = append(c.toasts, toast)
	sink := c.sink
	c.mu.Unlock()

	if sink != nil {
		sink(toast)
	}
	if c.ttl > 0 {
		time.AfterFunc(c.ttl, func() { c.Remove(id) })
	}
	return id
}

// Remove drops the toast with the given ID. Unknown IDs are ignored.
func (c *Center) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

// Active returns the live toasts in insertion order.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Center) Success(message string) int64 { return c.Add(message, TypeSuccess) }
func (c *Center) Error(message string) int64   { return c.Add(message, TypeError) }
func (c *Center) Info(message string) int64    { return c.Add(message, TypeInfo) }
func (c *Center) Warning(message string) int64 { return c.Add(message, TypeWarning) }
