package entity

import "time"

// Channel is an access-gated chat whose join requests this bot mediates.
type Channel struct {
	ID             int64
	Title          string
	IsActive       bool
	AutoApprove    bool
	WelcomeMessage *string
	Schedule       *SchedulePolicy
	AcceptedCount  int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// ScheduleInvalid is set when the stored policy could not be decoded.
	// Schedule is nil then and the channel never fires until a new policy is saved.
	ScheduleInvalid bool
}

// EffectiveSchedule returns the channel schedule, or the default policy when none is stored.
func (c *Channel) EffectiveSchedule() SchedulePolicy {
	if c.Schedule == nil {
		return DefaultSchedulePolicy()
	}
	return *c.Schedule
}

// HasWelcome reports whether a non-empty welcome message is configured.
func (c *Channel) HasWelcome() bool {
	return c.WelcomeMessage != nil && *c.WelcomeMessage != ""
}

// ChannelInfo is display-only metadata fetched from the chat platform.
type ChannelInfo struct {
	ID          int64
	Title       string
	Username    string
	Description string
	FetchedAt   time.Time
}
