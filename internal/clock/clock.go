package clock

import (
	"fmt"
	"time"
)

// Clock supplies the current time in the target market's timezone.
type Clock interface {
	Now() time.Time
}

// MarketClock is the real clock, pinned to a configured IANA timezone.
type MarketClock struct {
	loc *time.Location
}

// NewMarketClock resolves the timezone once at startup. An unknown zone
// name is a configuration error, not a silent UTC fallback.
func NewMarketClock(timezone string) (*MarketClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &MarketClock{loc: loc}, nil
}

func (c *MarketClock) Now() time.Time { return time.Now().In(c.loc) }

// FixedClock returns a controllable fixed time for tests.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }
