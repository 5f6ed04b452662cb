package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/store"
	"careerguide-engine/internal/textutil"
)

type BookingInput struct {
	CounselorID string    `json:"counselorId"`
	SessionDate time.Time `json:"sessionDate"`
	Goal        string    `json:"goal"`
}

func (s *Service) ListCounselors(ctx context.Context) ([]domain.Counselor, error) {
	return store.ListCounselors(ctx, s.DB)
}

func (s *Service) SeedCounselors(ctx context.Context, id auth.Identity) (int, error) {
	if err := requireAdmin(id); err != nil {
		return 0, err
	}
	return store.SeedCounselorsIfEmpty(ctx, s.DB, s.Catalog)
}

func (s *Service) BookSession(ctx context.Context, userID string, in BookingInput) (domain.MentorshipSession, error) {
	if err := requireUser(userID); err != nil {
		return domain.MentorshipSession{}, err
	}
	if !in.SessionDate.After(s.Now()) {
		return domain.MentorshipSession{}, fmt.Errorf("%w: pick a future date", ErrInvalidInput)
	}
	goal := textutil.PlainText(in.Goal)
	if goal == "" {
		return domain.MentorshipSession{}, fmt.Errorf("%w: add a session goal", ErrInvalidInput)
	}
	if strings.TrimSpace(in.CounselorID) == "" {
		return domain.MentorshipSession{}, fmt.Errorf("%w: choose a counselor", ErrInvalidInput)
	}
	if _, err := store.GetCounselor(ctx, s.DB, in.CounselorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MentorshipSession{}, fmt.Errorf("counselor %s: %w", in.CounselorID, err)
		}
		return domain.MentorshipSession{}, err
	}

	sess, err := store.InsertSession(ctx, s.DB, domain.MentorshipSession{
		UserID:      userID,
		CounselorID: in.CounselorID,
		SessionDate: in.SessionDate,
		Goal:        goal,
		Status:      domain.SessionScheduled,
		CreatedAt:   s.Now().UTC(),
	})
	if err != nil {
		return domain.MentorshipSession{}, fmt.Errorf("book session: %w", err)
	}
	s.Log.Info("session booked", "user_id", userID, "counselor", in.CounselorID, "at", sess.SessionDate)
	s.publish(ctx, events.ForUser(userID), events.SessionBooked, map[string]string{"id": sess.ID, "counselorId": sess.CounselorID})
	return sess, nil
}

// ListMySessions returns the caller's sessions newest first, each joined
// with its counselor.
func (s *Service) ListMySessions(ctx context.Context, userID string) ([]domain.SessionWithCounselor, error) {
	out := []domain.SessionWithCounselor{}
	if requireUser(userID) != nil {
		return out, nil
	}
	sessions, err := store.ListSessions(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	counselors, err := store.ListCounselors(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Counselor, len(counselors))
	for _, c := range counselors {
		byID[c.ID] = c
	}
	for _, sess := range sessions {
		e := domain.SessionWithCounselor{Session: sess}
		if c, ok := byID[sess.CounselorID]; ok {
			e.Counselor = &c
		}
		out = append(out, e)
	}
	return out, nil
}
