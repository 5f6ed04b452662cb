package advisor

import (
	"context"
	"fmt"

	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/store"
)

func (s *Service) ListCareers(ctx context.Context) ([]domain.CareerPath, error) {
	return store.ListCareers(ctx, s.DB)
}

func (s *Service) CareerCategories(ctx context.Context) ([]string, error) {
	return store.CareerCategories(ctx, s.DB)
}

// ToggleSavedCareer reports "saved" or "removed".
func (s *Service) ToggleSavedCareer(ctx context.Context, userID, careerID string) (string, error) {
	if err := requireUser(userID); err != nil {
		return "", err
	}
	state, err := store.ToggleSavedCareer(ctx, s.DB, userID, careerID)
	if err != nil {
		return "", err
	}
	s.publish(ctx, events.ForUser(userID), events.CareerSaved, map[string]string{"careerId": careerID, "state": state})
	return state, nil
}

func (s *Service) ListSavedCareers(ctx context.Context, userID string) ([]domain.SavedCareer, error) {
	if requireUser(userID) != nil {
		return []domain.SavedCareer{}, nil
	}
	return store.ListSavedCareers(ctx, s.DB, userID)
}

// SeedCatalog loads the seed career paths and counselors into empty tables.
func (s *Service) SeedCatalog(ctx context.Context, id auth.Identity) (careers, counselors int, err error) {
	if err := requireAdmin(id); err != nil {
		return 0, 0, err
	}
	return s.seed(ctx)
}

func (s *Service) seed(ctx context.Context) (careers, counselors int, err error) {
	careers, err = store.SeedCareersIfEmpty(ctx, s.DB, s.Catalog)
	if err != nil {
		return 0, 0, fmt.Errorf("seed careers: %w", err)
	}
	counselors, err = store.SeedCounselorsIfEmpty(ctx, s.DB, s.Catalog)
	if err != nil {
		return careers, 0, fmt.Errorf("seed counselors: %w", err)
	}
	if careers > 0 || counselors > 0 {
		s.Log.Info("catalog seeded", "careers", careers, "counselors", counselors)
	}
	return careers, counselors, nil
}

// Bootstrap seeds an empty database at startup.
func (s *Service) Bootstrap(ctx context.Context) error {
	_, _, err := s.seed(ctx)
	return err
}
