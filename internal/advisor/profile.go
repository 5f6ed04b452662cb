package advisor

import (
	"context"
	"errors"
	"fmt"

	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/store"
	"careerguide-engine/internal/textutil"
)

// GetProfile returns nil without error when the caller has no profile yet.
func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if requireUser(userID) != nil {
		return nil, nil
	}
	p, err := store.GetProfile(ctx, s.DB, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) SaveProfile(ctx context.Context, userID string, in domain.Profile) (domain.Profile, error) {
	if err := requireUser(userID); err != nil {
		return domain.Profile{}, err
	}
	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		return domain.Profile{}, fmt.Errorf("%w: experience years must be >= 0", ErrInvalidInput)
	}
	p := domain.Profile{
		UserID:          userID,
		Headline:        textutil.PlainText(in.Headline),
		Bio:             textutil.PlainText(in.Bio),
		Skills:          textutil.CleanList(in.Skills),
		Interests:       textutil.CleanList(in.Interests),
		CurrentRole:     textutil.CleanText(in.CurrentRole),
		TargetRole:      textutil.CleanText(in.TargetRole),
		ExperienceYears: in.ExperienceYears,
	}
	return store.UpsertProfile(ctx, s.DB, p)
}

func (s *Service) Onboarding(ctx context.Context, userID string) (domain.OnboardingStatus, error) {
	if requireUser(userID) != nil {
		return domain.OnboardingStatus{}, nil
	}
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.OnboardingStatus{}, err
	}
	return domain.OnboardingStatus{IsOnboarded: p != nil, IsAuthenticated: true}, nil
}
