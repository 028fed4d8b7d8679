package deps

import (
	"io/fs"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
	"github.com/MrSnakeDoc/tubenotes/internal/service"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

type Deps struct {
	Logger            logger.Logger
	StartTime         time.Time
	Version           string
	Commit            string
	BuildDate         string
	GoVersion         string
	AllowedCIDRS      []string         // IPs allowed to access the readyz endpoint
	TrustProxy        bool             // true if running behind a trusted reverse proxy
	Service           *service.Service // domain operations
	Store             store.Store      // active backend, pinged by readyz
	Static            fs.FS            // frontend files served under /static
	SummaryRatePerMin int              // per-IP refill rate for summary creation (0 disables)
	SummaryBurst      int              // per-IP burst for summary creation
}
