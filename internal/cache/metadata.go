package cache

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

type entry struct {
	info      *entity.ChannelInfo
	expiresAt time.Time
}

// ChannelInfo caches channel metadata for a fixed time so admin screens do
// not hit the Bot API on every render. It is a ChannelInfoFetcher itself.
type ChannelInfo struct {
	next contract.ChannelInfoFetcher
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[int64]entry
}

func NewChannelInfo(next contract.ChannelInfoFetcher, ttl time.Duration) *ChannelInfo {
	return &ChannelInfo{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int64]entry),
	}
}

func (c *ChannelInfo) FetchChannelInfo(ctx context.Context, channelID int64) (*entity.ChannelInfo, error) {
	now := c.now()

	c.mu.Lock()
	cached, ok := c.entries[channelID]
	c.mu.Unlock()

	if ok && now.Before(cached.expiresAt) {
		return cached.info, nil
	}

	info, err := c.next.FetchChannelInfo(ctx, channelID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[channelID] = entry{info: info, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()

	return info, nil
}

// Invalidate drops the cached entry of a channel.
func (c *ChannelInfo) Invalidate(channelID int64) {
	c.mu.Lock()
	delete(c.entries, channelID)
	c.mu.Unlock()
}

// Purge removes expired entries and returns how many were dropped.
func (c *ChannelInfo) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	var removed int
	for id, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor purges expired entries every interval until ctx is done.
func (c *ChannelInfo) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}
