package advisor

import (
	"context"
	"fmt"
	"math"

	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/store"
	"careerguide-engine/internal/textutil"
)

type FeedbackInput struct {
	Rating   float64 `json:"rating"`
	Mood     string  `json:"mood"`
	Category string  `json:"category"`
	Message  string  `json:"message"`
}

func (s *Service) SubmitFeedback(ctx context.Context, userID string, in FeedbackInput) (domain.Feedback, error) {
	if err := requireUser(userID); err != nil {
		return domain.Feedback{}, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Feedback{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	f, err := store.InsertFeedback(ctx, s.DB, domain.Feedback{
		UserID:    userID,
		Rating:    int(math.Round(in.Rating)),
		Mood:      textutil.CleanText(in.Mood),
		Category:  textutil.CleanText(in.Category),
		Message:   textutil.PlainText(in.Message),
		CreatedAt: s.Now().UTC(),
	})
	if err != nil {
		return domain.Feedback{}, err
	}
	s.publish(ctx, events.ForUser(userID), events.FeedbackSubmitted, map[string]any{"id": f.ID, "rating": f.Rating, "category": f.Category})
	return f, nil
}

func (s *Service) ListMyFeedback(ctx context.Context, userID string) ([]domain.Feedback, error) {
	if requireUser(userID) != nil {
		return []domain.Feedback{}, nil
	}
	return store.ListFeedback(ctx, s.DB, userID, recentLimit)
}
