package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skyfold/flightdeck/internal/index"
	"github.com/skyfold/flightdeck/internal/logger"
	"github.com/skyfold/flightdeck/internal/sources/serpflights"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Provider   *serpflights.Client  // flight search provider client
	Advisories *index.AdvisoryIndex // in-memory route advisory table (nil if advisories disabled)

	LongLayoverMinutes int           // gap threshold for flagging long layovers
	SearchCacheTTL     time.Duration // TTL for cached search responses
	RedisClient        *redis.Client // Redis connection (nil if result cache disabled)

	AdvisoryReloadTrigger chan struct{} // Channel to trigger manual advisory reload (nil if advisories disabled)

	TrustProxy         bool // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateLimitBurst     int
	RateLimitPerMinute int
}
