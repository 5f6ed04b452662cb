package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/config"
	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/logger"
	"careerguide-engine/internal/rank"
	"careerguide-engine/internal/store"
)

type recorder struct {
	mu        sync.Mutex
	events    []events.Event
	audiences []events.Audience
}

func (r *recorder) PublishTo(aud events.Audience, evt string) {
	var e events.Event
	_ = json.Unmarshal([]byte(evt), &e)
	r.mu.Lock()
	r.events = append(r.events, e)
	r.audiences = append(r.audiences, aud)
	r.mu.Unlock()
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

var testNow = time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *recorder) {
	t.Helper()
	d, err := store.Open(filepath.Join(t.TempDir(), "engine.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = d.Close() })
	if err := store.Migrate(d.Pool); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	rec := &recorder{}
	svc := New(d.Pool, func() config.Config { return cfg }, config.DefaultCatalog(), rec, logger.Nop())
	svc.Now = func() time.Time { return testNow }
	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatal(err)
	}
	return svc, rec
}

var admin = auth.Identity{UserID: "admin-1", Role: auth.RoleAdmin}

func TestSubmitAssessment(t *testing.T) {
	t.Parallel()
	svc, rec := newTestService(t)
	ctx := WithRequestID(context.Background(), "req-9")

	got, err := svc.SubmitAssessment(ctx, "u1", AssessmentInput{
		Interests:  []string{"data"},
		Strengths:  []string{"Python", "SQL"},
		FocusAreas: []string{"MLOps"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.RecommendedCareers) != 1 || got.RecommendedCareers[0] != "Data Scientist" {
		t.Fatalf("recommended: got=%v want=[Data Scientist]", got.RecommendedCareers)
	}
	if got.ConfidenceScore != 70 {
		t.Fatalf("confidence: got=%d want=70", got.ConfidenceScore)
	}

	mine, err := svc.ListMyAssessments(ctx, "u1")
	if err != nil || len(mine) != 1 {
		t.Fatalf("stored: got=%d err=%v want=1", len(mine), err)
	}
	if mine[0].Summary != got.Summary || mine[0].FocusAreas[0] != "MLOps" {
		t.Fatalf("stored assessment: got=%+v", mine[0])
	}
	if types := rec.types(); len(types) != 1 || types[0] != events.AssessmentSubmitted {
		t.Fatalf("events: got=%v", types)
	}
	if rec.audiences[0] != events.ForUser("u1") {
		t.Fatalf("audience: got=%+v want owner u1", rec.audiences[0])
	}
	if rec.events[0].RequestID != "req-9" {
		t.Fatalf("request id: got=%q want=req-9", rec.events[0].RequestID)
	}
}

func TestSubmitAssessmentRejects(t *testing.T) {
	t.Parallel()
	svc, rec := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		userID string
		in     AssessmentInput
		want   error
	}{
		{"anonymous", "", AssessmentInput{Interests: []string{"data"}, Strengths: []string{"SQL"}}, ErrUnauthenticated},
		{"no strengths", "u1", AssessmentInput{Interests: []string{"data"}, Strengths: []string{" ", ""}}, ErrInvalidInput},
		{"no interests", "u1", AssessmentInput{Strengths: []string{"SQL"}}, ErrInvalidInput},
	}
	for _, tc := range cases {
		if _, err := svc.SubmitAssessment(ctx, tc.userID, tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got=%v want=%v", tc.name, err, tc.want)
		}
	}
	all, _ := store.ListAssessments(ctx, svc.DB, "", 0)
	if len(all) != 0 {
		t.Fatalf("rejected submissions were stored: %d", len(all))
	}
	if len(rec.types()) != 0 {
		t.Fatalf("rejected submissions published: %v", rec.types())
	}
}

func TestSubmitWithEmptyFocusAndNoMatch(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	got, err := svc.SubmitAssessment(context.Background(), "u1", AssessmentInput{
		Interests: []string{"astronomy"},
		Strengths: []string{"juggling"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.RecommendedCareers) != 0 || got.ConfidenceScore != 25 || got.Summary != rank.FallbackSummary {
		t.Fatalf("fallback: got=%+v", got)
	}
}

func TestBookSession(t *testing.T) {
	t.Parallel()
	svc, rec := newTestService(t)
	ctx := context.Background()
	counselors, _ := svc.ListCounselors(ctx)
	c := counselors[0]

	if _, err := svc.BookSession(ctx, "u1", BookingInput{CounselorID: c.ID, SessionDate: testNow.Add(-time.Hour), Goal: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("past date: got=%v want=%v", err, ErrInvalidInput)
	}
	if _, err := svc.BookSession(ctx, "u1", BookingInput{CounselorID: c.ID, SessionDate: testNow.Add(time.Hour), Goal: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank goal: got=%v want=%v", err, ErrInvalidInput)
	}
	if _, err := svc.BookSession(ctx, "u1", BookingInput{CounselorID: "ghost", SessionDate: testNow.Add(time.Hour), Goal: "x"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("unknown counselor: got=%v want=%v", err, store.ErrNotFound)
	}

	sess, err := svc.BookSession(ctx, "u1", BookingInput{CounselorID: c.ID, SessionDate: testNow.Add(24 * time.Hour), Goal: "  Mock interview  "})
	if err != nil {
		t.Fatal(err)
	}
	if sess.Goal != "Mock interview" || sess.Status != domain.SessionScheduled {
		t.Fatalf("session: got=%+v", sess)
	}

	mine, err := svc.ListMySessions(ctx, "u1")
	if err != nil || len(mine) != 1 {
		t.Fatalf("list: got=%d err=%v", len(mine), err)
	}
	if mine[0].Counselor == nil || mine[0].Counselor.Name != c.Name {
		t.Fatalf("counselor join: got=%+v", mine[0].Counselor)
	}
	if types := rec.types(); len(types) != 1 || types[0] != events.SessionBooked {
		t.Fatalf("events: got=%v", types)
	}
}

func TestGoalsLifecycle(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateGoal(ctx, "u1", GoalInput{Title: "<b></b>"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty title: got=%v want=%v", err, ErrInvalidInput)
	}
	if _, err := svc.CreateGoal(ctx, "u1", GoalInput{Title: "x", Status: "someday"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad status: got=%v want=%v", err, ErrInvalidInput)
	}

	g, err := svc.CreateGoal(ctx, "u1", GoalInput{Title: "Finish <i>portfolio</i>", Category: "Learning"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Title != "Finish portfolio" || g.Status != domain.GoalPending {
		t.Fatalf("goal: got=%+v", g)
	}
	if _, err := svc.UpdateGoalStatus(ctx, "u2", g.ID, domain.GoalCompleted); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("foreign update: got=%v want=%v", err, store.ErrNotFound)
	}
	if _, err := svc.UpdateGoalStatus(ctx, "u1", g.ID, domain.GoalCompleted); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteGoal(ctx, "u1", g.ID); err != nil {
		t.Fatal(err)
	}
	goals, _ := svc.ListGoals(ctx, "u1")
	if len(goals) != 0 {
		t.Fatalf("goals after delete: got=%d want=0", len(goals))
	}
}

func TestSubmitFeedback(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, r := range []float64{0, 5.5} {
		if _, err := svc.SubmitFeedback(ctx, "u1", FeedbackInput{Rating: r}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rating %v: got=%v want=%v", r, err, ErrInvalidInput)
		}
	}
	f, err := svc.SubmitFeedback(ctx, "u1", FeedbackInput{Rating: 4.6, Mood: "happy", Message: " <p>Loved the <b>mentor</b></p> "})
	if err != nil {
		t.Fatal(err)
	}
	if f.Rating != 5 || f.Message != "Loved the mentor" {
		t.Fatalf("feedback: got=%+v", f)
	}
}

func TestProfileAndOnboarding(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	st, err := svc.Onboarding(ctx, "")
	if err != nil || st.IsAuthenticated || st.IsOnboarded {
		t.Fatalf("anonymous: got=%+v err=%v", st, err)
	}
	st, _ = svc.Onboarding(ctx, "u1")
	if !st.IsAuthenticated || st.IsOnboarded {
		t.Fatalf("before profile: got=%+v", st)
	}
	p, err := svc.SaveProfile(ctx, "u1", domain.Profile{Skills: []string{" Python", "python", "SQL"}, Interests: []string{"Data"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Skills) != 2 {
		t.Fatalf("skills: got=%v", p.Skills)
	}
	st, _ = svc.Onboarding(ctx, "u1")
	if !st.IsOnboarded {
		t.Fatal("profile should mark user onboarded")
	}
}

func TestStudentDashboardTargetsLatestRecommendation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	empty, err := svc.StudentDashboard(ctx, "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Career != nil || empty.SkillCoverage.CoreMatch != 45 || empty.SkillCoverage.InterestFit != 50 {
		t.Fatalf("no data: got=%+v", empty)
	}

	if _, err := svc.SaveProfile(ctx, "u1", domain.Profile{Skills: []string{"Python", "SQL"}, Interests: []string{"data science"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SubmitAssessment(ctx, "u1", AssessmentInput{Interests: []string{"data"}, Strengths: []string{"Python"}}); err != nil {
		t.Fatal(err)
	}

	d, err := svc.StudentDashboard(ctx, "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if d.Career == nil || d.Career.Title != "Data Scientist" {
		t.Fatalf("career: got=%+v", d.Career)
	}
	want := rank.SkillCoverage{CoreMatch: 50, GrowthMatch: 0, InterestFit: 100}
	if d.SkillCoverage != want {
		t.Fatalf("coverage: got=%+v want=%+v", d.SkillCoverage, want)
	}

	if _, err := svc.StudentDashboard(ctx, "u1", "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("unknown career: got=%v want=%v", err, store.ErrNotFound)
	}

	rep, err := svc.ResumeCheck(ctx, "u1", "", "Built Python and SQL pipelines")
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.KeywordMatches) != 2 {
		t.Fatalf("resume matches: got=%v", rep.KeywordMatches)
	}
}

func TestAdminDashboard(t *testing.T) {
	t.Parallel()
	svc, rec := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AdminDashboard(ctx, auth.Identity{UserID: "u1", Role: auth.RoleStudent}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("student: got=%v want=%v", err, ErrForbidden)
	}
	if _, err := svc.AdminDashboard(ctx, auth.Identity{}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous: got=%v want=%v", err, ErrUnauthenticated)
	}

	empty, err := svc.AdminDashboard(ctx, admin)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Summary.TopCareer != "Not enough data" || len(empty.Matches) != 0 || empty.Duplicates.SuspiciousLogins {
		t.Fatalf("empty dashboard: got=%+v", empty)
	}

	counselors, _ := svc.ListCounselors(ctx)
	for i := 0; i < 4; i++ {
		at := testNow.Add(time.Duration(i+1) * time.Hour)
		if _, err := svc.BookSession(ctx, "busy", BookingInput{CounselorID: counselors[0].ID, SessionDate: at, Goal: "g"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.SubmitAssessment(ctx, "u1", AssessmentInput{Interests: []string{"product"}, Strengths: []string{"Strategy"}, FocusAreas: []string{"Leadership"}}); err != nil {
		t.Fatal(err)
	}

	d, err := svc.AdminDashboard(ctx, admin)
	if err != nil {
		t.Fatal(err)
	}
	if d.Summary.TotalSessions != 4 || d.Summary.UniqueLearners != 1 || d.Summary.TopCareer != "Product Manager" {
		t.Fatalf("summary: got=%+v", d.Summary)
	}
	if !d.Duplicates.SuspiciousLogins || len(d.Duplicates.Duplicates) != 1 || d.Duplicates.Duplicates[0] != "busy" {
		t.Fatalf("duplicates: got=%+v", d.Duplicates)
	}
	if len(d.Matches) != 1 || d.Matches[0].CounselorName != "Ananya Rao" {
		t.Fatalf("matches: got=%+v", d.Matches)
	}
	if len(d.FeatureUsage) != 5 || d.FeatureUsage[1].Usage != 4*5+28 {
		t.Fatalf("usage: got=%+v", d.FeatureUsage)
	}

	if err := svc.PublishDashboardSnapshot(ctx); err != nil {
		t.Fatal(err)
	}
	types := rec.types()
	if types[len(types)-1] != events.DashboardRefreshed {
		t.Fatalf("last event: got=%q want=%q", types[len(types)-1], events.DashboardRefreshed)
	}
	rec.mu.Lock()
	aud := rec.audiences[len(rec.audiences)-1]
	rec.mu.Unlock()
	if aud != events.Admins() {
		t.Fatalf("snapshot audience: got=%+v want=%+v", aud, events.Admins())
	}
}

func TestSeedRequiresAdmin(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, _, err := svc.SeedCatalog(ctx, auth.Identity{UserID: "u1"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got=%v want=%v", err, ErrForbidden)
	}
	careers, counselors, err := svc.SeedCatalog(ctx, admin)
	if err != nil || careers != 0 || counselors != 0 {
		t.Fatalf("reseed: careers=%d counselors=%d err=%v", careers, counselors, err)
	}
}
