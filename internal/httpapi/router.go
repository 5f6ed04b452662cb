package httpapi

import (
	"net/http"

	"careerguide-engine/internal/config"
)

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
		Log:         d.Log,
		OnChange: func(c config.Config) {
			if d.Limiter != nil {
				d.Limiter.Update(c.Limits.SubmissionsPerMinute, c.Limits.Burst)
			}
		},
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Careers
	crh := CareersHandler{Svc: d.Svc, Log: d.Log}
	mux.HandleFunc("/careers", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: crh.List,
	}))
	mux.HandleFunc("/careers/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: crh.Categories,
	}))
	mux.HandleFunc("/careers/saved", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  crh.ListSaved,
		http.MethodPost: crh.ToggleSaved,
	}))
	mux.HandleFunc("/careers/seed", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: crh.Seed,
	}))

	// Assessments
	ah := AssessmentsHandler{Svc: d.Svc, Log: d.Log, Limiter: d.Limiter}
	mux.HandleFunc("/assessments", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ah.ListMine,
		http.MethodPost: ah.Submit,
	}))

	// Profile
	ph := ProfileHandler{Svc: d.Svc, Log: d.Log}
	mux.HandleFunc("/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Get,
		http.MethodPut: ph.Put,
	}))
	mux.HandleFunc("/profile/onboarding", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Onboarding,
	}))

	// Goals
	gh := GoalsHandler{Svc: d.Svc, Log: d.Log}
	mux.HandleFunc("/goals", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  gh.List,
		http.MethodPost: gh.Create,
	}))
	mux.HandleFunc("/goals/", methodMux(map[string]http.HandlerFunc{
		http.MethodPatch:  gh.UpdateByPath, // expects /goals/{id}
		http.MethodDelete: gh.DeleteByPath,
	}))

	// Mentorship
	mh := MentorshipHandler{Svc: d.Svc, Log: d.Log}
	mux.HandleFunc("/counselors", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: mh.Counselors,
	}))
	mux.HandleFunc("/counselors/seed", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: mh.SeedCounselors,
	}))
	mux.HandleFunc("/sessions", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  mh.ListSessions,
		http.MethodPost: mh.Book,
	}))

	// Feedback
	fh := FeedbackHandler{Svc: d.Svc, Log: d.Log}
	mux.HandleFunc("/feedback", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  fh.ListMine,
		http.MethodPost: fh.Submit,
	}))

	// Dashboards
	dh := DashboardHandler{Svc: d.Svc, Log: d.Log}
	mux.HandleFunc("/dashboard/student", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Student,
	}))
	mux.HandleFunc("/dashboard/resume", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Resume,
	}))
	mux.HandleFunc("/dashboard/admin", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Admin,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Maintenance (local admin only)
	dbh := DBHandler{DB: d.DB, Log: d.Log}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dbh.Checkpoint,
	}))
	sh := SecretsHandler{Secrets: d.Secrets, Issuer: d.Issuer, Log: d.Log}
	mux.HandleFunc("/api/secrets/jwt", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.RotateSigningSecret,
	}))

	return mux
}

// Wrap applies the standard middleware chain.
func Wrap(d Deps, h http.Handler) http.Handler {
	return Chain(h,
		Recover(d.Log),
		RequestID,
		AccessLog(d.Log),
		Cors,
		Authenticate(d.Issuer),
	)
}
