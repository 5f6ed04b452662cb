// Package advisor runs the engine's operations: it loads snapshots from the
// store, hands them to the pure rank/match/analytics packages, persists the
// few mutations and announces them on the event hub.
package advisor

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/config"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/logger"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidInput    = errors.New("invalid input")
	ErrForbidden       = errors.New("admin access required")
)

type Service struct {
	DB      *sql.DB
	Config  func() config.Config
	Catalog config.CatalogFile
	Events  events.Publisher
	Log     *logger.Logger
	Now     func() time.Time
}

func New(db *sql.DB, cfg func() config.Config, catalog config.CatalogFile, pub events.Publisher, log *logger.Logger) *Service {
	return &Service{
		DB:      db,
		Config:  cfg,
		Catalog: catalog,
		Events:  pub,
		Log:     log,
		Now:     time.Now,
	}
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthenticated
	}
	return nil
}

func requireAdmin(id auth.Identity) error {
	if err := requireUser(id.UserID); err != nil {
		return err
	}
	if !id.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// publish is best effort; a missing hub only loses live updates.
func (s *Service) publish(ctx context.Context, aud events.Audience, typ string, data any) {
	if s.Events == nil {
		return
	}
	s.Events.PublishTo(aud, events.MakeEvent(RequestIDFrom(ctx), typ, 1, data))
}

type reqIDKey struct{}

// WithRequestID tags ctx so events published while serving a request carry
// its id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(reqIDKey{}).(string)
	return id
}

func hasNonBlank(xs []string) bool {
	for _, x := range xs {
		if strings.TrimSpace(x) != "" {
			return true
		}
	}
	return false
}
