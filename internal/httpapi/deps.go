package httpapi

import (
	"database/sql"
	"sync/atomic"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/config"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/logger"
	"careerguide-engine/internal/secrets"
)

type Deps struct {
	DB  *sql.DB
	Svc *advisor.Service
	Hub *events.Hub
	Log *logger.Logger

	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	Issuer  *auth.Issuer
	Secrets *secrets.Store

	// Submission limiter; reset on config reload.
	Limiter *UserLimiter
}
