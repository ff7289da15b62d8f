package deps

import (
	"time"

	"github.com/MrSnakeDoc/curator/internal/auth"
	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/contrib"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/metrics"
	"github.com/MrSnakeDoc/curator/internal/store"
	"github.com/MrSnakeDoc/curator/internal/version"
	"github.com/MrSnakeDoc/curator/internal/workspace"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Build     version.Info
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Workspace   *workspace.Workspace // the working copy of this process
	Editor      *catalog.Editor      // admin operations
	Suggestions *contrib.List        // visitor suggestions of the session
	Store       store.Backend        // pinged by /readyz
	Metrics     *metrics.Collector   // nil disables /metrics

	Auth   auth.Authenticator // admin credential check
	Tokens *auth.TokenIssuer  // admin session tokens

	AllowedOrigins []string // CORS origins
	AllowedHosts   []string // Host headers allowed to access the server
	AdminCIDRs     []string // networks allowed to reach /admin
	TrustProxy     bool     // true if running behind a trusted reverse proxy

	MaxUploadBytes      int64 // CSV import size limit
	ContribBurst        int   // suggestions per client burst
	ContribRefillPerMin int   // suggestions regained per minute
}

// Now returns the current time from TimeNow, or the wall clock.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
