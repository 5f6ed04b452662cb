package advisor

import (
	"context"
	"fmt"
	"time"

	"careerguide-engine/internal/domain"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/store"
	"careerguide-engine/internal/textutil"
)

type GoalInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.GoalStatus `json:"status"`
	Deadline    *time.Time        `json:"deadline"`
	Category    string            `json:"category"`
}

func (s *Service) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	if requireUser(userID) != nil {
		return []domain.Goal{}, nil
	}
	return store.ListGoals(ctx, s.DB, userID)
}

func (s *Service) CreateGoal(ctx context.Context, userID string, in GoalInput) (domain.Goal, error) {
	if err := requireUser(userID); err != nil {
		return domain.Goal{}, err
	}
	title := textutil.PlainText(in.Title)
	if title == "" {
		return domain.Goal{}, fmt.Errorf("%w: goal title is required", ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = domain.GoalPending
	}
	if !in.Status.Valid() {
		return domain.Goal{}, fmt.Errorf("%w: unknown goal status %q", ErrInvalidInput, in.Status)
	}

	g, err := store.InsertGoal(ctx, s.DB, domain.Goal{
		UserID:      userID,
		Title:       title,
		Description: textutil.PlainText(in.Description),
		Status:      in.Status,
		Deadline:    in.Deadline,
		Category:    textutil.CleanText(in.Category),
		CreatedAt:   s.Now().UTC(),
	})
	if err != nil {
		return domain.Goal{}, err
	}
	s.publish(ctx, events.ForUser(userID), events.GoalChanged, map[string]string{"id": g.ID, "status": string(g.Status)})
	return g, nil
}

func (s *Service) UpdateGoalStatus(ctx context.Context, userID, goalID string, status domain.GoalStatus) (domain.Goal, error) {
	if err := requireUser(userID); err != nil {
		return domain.Goal{}, err
	}
	if !status.Valid() {
		return domain.Goal{}, fmt.Errorf("%w: unknown goal status %q", ErrInvalidInput, status)
	}
	g, err := store.UpdateGoalStatus(ctx, s.DB, userID, goalID, status)
	if err != nil {
		return domain.Goal{}, err
	}
	s.publish(ctx, events.ForUser(userID), events.GoalChanged, map[string]string{"id": g.ID, "status": string(g.Status)})
	return g, nil
}

func (s *Service) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := store.DeleteGoal(ctx, s.DB, userID, goalID); err != nil {
		return err
	}
	s.publish(ctx, events.ForUser(userID), events.GoalChanged, map[string]string{"id": goalID, "status": "deleted"})
	return nil
}
