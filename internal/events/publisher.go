// Package events publishes activity events for downstream consumers.
package events

import (
	"context"
	"sync"
	"time"
)

// Event types.
const (
	LogCreated    = "log.created"
	Checkin       = "checkin"
	Checkout      = "checkout"
	RewardApplied = "reward.applied"
)

// Event is one user activity.
type Event struct {
	Type    string    `json:"type"`
	UID     string    `json:"uid"`
	Subject string    `json:"subject,omitempty"`
	At      time.Time `json:"at"`
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
