package advisor

import (
	"context"
	"fmt"

	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/rank"
	"careerguide-engine/internal/store"
)

const recentLimit = 5

type AssessmentInput struct {
	Interests  []string `json:"interests"`
	Strengths  []string `json:"strengths"`
	FocusAreas []string `json:"focusAreas"`
}

// SubmitAssessment ranks the catalog for the caller's self-report and stores
// the result as one new assessment. Nothing is written when the caller is
// anonymous or the input is rejected.
func (s *Service) SubmitAssessment(ctx context.Context, userID string, in AssessmentInput) (domain.Recommendation, error) {
	if err := requireUser(userID); err != nil {
		return domain.Recommendation{}, err
	}
	if !hasNonBlank(in.Strengths) {
		return domain.Recommendation{}, fmt.Errorf("%w: add at least one strength", ErrInvalidInput)
	}
	if !hasNonBlank(in.Interests) {
		return domain.Recommendation{}, fmt.Errorf("%w: add at least one interest", ErrInvalidInput)
	}
	if in.FocusAreas == nil {
		in.FocusAreas = []string{}
	}

	catalog, err := store.ListCareers(ctx, s.DB)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("load catalog: %w", err)
	}

	res := rank.NewRanker(s.Config().Scoring).Rank(rank.Submission{
		Interests:  in.Interests,
		Strengths:  in.Strengths,
		FocusAreas: in.FocusAreas,
	}, catalog)
	rec := res.Recommendation

	saved, err := store.InsertAssessment(ctx, s.DB, domain.Assessment{
		UserID:             userID,
		Interests:          in.Interests,
		Strengths:          in.Strengths,
		FocusAreas:         in.FocusAreas,
		RecommendedCareers: rec.RecommendedCareers,
		ConfidenceScore:    rec.ConfidenceScore,
		Summary:            rec.Summary,
		CreatedAt:          s.Now().UTC(),
	})
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("save assessment: %w", err)
	}

	s.Log.Info("assessment submitted",
		"user_id", userID,
		"catalog", len(catalog),
		"recommended", len(rec.RecommendedCareers),
		"confidence", rec.ConfidenceScore,
	)
	s.publish(ctx, events.ForUser(userID), events.AssessmentSubmitted, map[string]any{
		"id":                 saved.ID,
		"recommendedCareers": rec.RecommendedCareers,
		"confidenceScore":    rec.ConfidenceScore,
	})
	return rec, nil
}

// ListMyAssessments returns the caller's newest assessments.
func (s *Service) ListMyAssessments(ctx context.Context, userID string) ([]domain.Assessment, error) {
	if requireUser(userID) != nil {
		return []domain.Assessment{}, nil
	}
	return store.ListAssessments(ctx, s.DB, userID, recentLimit)
}
