package service

import (
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
)

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	// Location is the timezone schedules and statistics days are evaluated in.
	Location *time.Location
	// OverdueDelay is how far ahead an overdue one-off task is re-armed at startup.
	OverdueDelay time.Duration
	// MaxConcurrentChannels bounds how many channel batches the scheduler runs at once.
	MaxConcurrentChannels int64
	// Now is the wall clock; tests replace it.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.OverdueDelay <= 0 {
		o.OverdueDelay = domain.DefaultOverdueDelay
	}
	if o.MaxConcurrentChannels <= 0 {
		o.MaxConcurrentChannels = 4
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
