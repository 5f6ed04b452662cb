package advisor

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"careerguide-engine/internal/analytics"
	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/match"
	"careerguide-engine/internal/rank"
	"careerguide-engine/internal/store"
)

type StudentDashboard struct {
	Career           *domain.CareerPath   `json:"career"`
	SkillCoverage    rank.SkillCoverage   `json:"skillCoverage"`
	LatestAssessment *domain.Assessment   `json:"latestAssessment"`
	SavedCareers     []domain.SavedCareer `json:"savedCareers"`
}

type AdminDashboard struct {
	Summary              analytics.Summary                `json:"summary"`
	Matches              []match.Suggestion               `json:"matches"`
	Duplicates           analytics.DuplicateAlert         `json:"duplicates"`
	FeatureUsage         []analytics.FeatureUsage         `json:"featureUsage"`
	CounselorPerformance []analytics.CounselorPerformance `json:"counselorPerformance"`
	GeneratedAt          time.Time                        `json:"generatedAt"`
}

type studentSnapshot struct {
	profile *domain.Profile
	latest  *domain.Assessment
	saved   []domain.SavedCareer
	career  *domain.CareerPath
}

// loadStudent reads the caller's profile, latest assessment and saved
// careers concurrently, then resolves the career the dashboard targets:
// careerID when given, else the top recommendation of the latest
// assessment, else the most recently saved career.
func (s *Service) loadStudent(ctx context.Context, userID, careerID string) (studentSnapshot, error) {
	var snap studentSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := store.GetProfile(gctx, s.DB, userID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err == nil {
			snap.profile = &p
		}
		return err
	})
	g.Go(func() error {
		a, err := store.LatestAssessment(gctx, s.DB, userID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err == nil {
			snap.latest = &a
		}
		return err
	})
	g.Go(func() error {
		saved, err := store.ListSavedCareers(gctx, s.DB, userID)
		snap.saved = saved
		return err
	})
	if careerID != "" {
		g.Go(func() error {
			c, err := store.GetCareer(gctx, s.DB, careerID)
			if err == nil {
				snap.career = &c
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return snap, err
	}

	if snap.career == nil && snap.latest != nil && len(snap.latest.RecommendedCareers) > 0 {
		c, err := store.FindCareerByTitle(ctx, s.DB, snap.latest.RecommendedCareers[0])
		if err == nil {
			snap.career = &c
		} else if !errors.Is(err, store.ErrNotFound) {
			return snap, err
		}
	}
	if snap.career == nil && len(snap.saved) > 0 {
		c := snap.saved[0].Career
		snap.career = &c
	}
	if snap.saved == nil {
		snap.saved = []domain.SavedCareer{}
	}
	return snap, nil
}

func (s *Service) StudentDashboard(ctx context.Context, userID, careerID string) (StudentDashboard, error) {
	if err := requireUser(userID); err != nil {
		return StudentDashboard{}, err
	}
	snap, err := s.loadStudent(ctx, userID, careerID)
	if err != nil {
		return StudentDashboard{}, err
	}
	return StudentDashboard{
		Career:           snap.career,
		SkillCoverage:    rank.ComputeSkillCoverage(snap.profile, snap.career, snap.latest),
		LatestAssessment: snap.latest,
		SavedCareers:     snap.saved,
	}, nil
}

// ResumeCheck scores resume text against the dashboard's target career.
func (s *Service) ResumeCheck(ctx context.Context, userID, careerID, resume string) (rank.ResumeReport, error) {
	if err := requireUser(userID); err != nil {
		return rank.ResumeReport{}, err
	}
	snap, err := s.loadStudent(ctx, userID, careerID)
	if err != nil {
		return rank.ResumeReport{}, err
	}
	return rank.EvaluateResume(resume, snap.career), nil
}

func (s *Service) AdminDashboard(ctx context.Context, id auth.Identity) (AdminDashboard, error) {
	if err := requireAdmin(id); err != nil {
		return AdminDashboard{}, err
	}
	return s.buildAdminDashboard(ctx)
}

// buildAdminDashboard recomputes every admin panel from fresh reads. It is
// the single source for both the HTTP view and the periodic snapshot.
func (s *Service) buildAdminDashboard(ctx context.Context) (AdminDashboard, error) {
	var (
		sessions    []domain.MentorshipSession
		assessments []domain.Assessment
		counselors  []domain.Counselor
		careers     []domain.CareerPath
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sessions, err = store.ListSessions(gctx, s.DB, "")
		return err
	})
	g.Go(func() (err error) {
		assessments, err = store.ListAssessments(gctx, s.DB, "", 0)
		return err
	})
	g.Go(func() (err error) {
		counselors, err = store.ListCounselors(gctx, s.DB)
		return err
	})
	g.Go(func() (err error) {
		careers, err = store.ListCareers(gctx, s.DB)
		return err
	})
	if err := g.Wait(); err != nil {
		return AdminDashboard{}, err
	}

	cfg := s.Config()
	matches := match.Suggest(assessments, counselors, cfg.Matching)
	if matches == nil {
		matches = []match.Suggestion{}
	}
	return AdminDashboard{
		Summary:              analytics.Summarize(sessions, assessments, cfg.App.Location()),
		Matches:              matches,
		Duplicates:           analytics.DetectDuplicates(sessions, cfg.Analytics.DuplicateSessionThreshold),
		FeatureUsage:         analytics.FeatureUsageBars(len(careers), len(sessions), len(assessments)),
		CounselorPerformance: analytics.CounselorLoad(counselors, sessions),
		GeneratedAt:          s.Now().UTC(),
	}, nil
}

// PublishDashboardSnapshot pushes a fresh admin summary to admin
// subscribers only.
func (s *Service) PublishDashboardSnapshot(ctx context.Context) error {
	d, err := s.buildAdminDashboard(ctx)
	if err != nil {
		return err
	}
	s.publish(ctx, events.Admins(), events.DashboardRefreshed, d)
	return nil
}
