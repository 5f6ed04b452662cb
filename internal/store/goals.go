package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"careerguide-engine/internal/domain"
)

const goalCols = `id, user_id, title, description, status, deadline, category, created_at`

func scanGoal(r rowScanner) (domain.Goal, error) {
	var g domain.Goal
	var status, created string
	var deadline sql.NullInt64
	if err := r.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &status, &deadline, &g.Category, &created); err != nil {
		return g, err
	}
	g.Status = domain.GoalStatus(status)
	g.Deadline = fromNullMillis(deadline)
	g.CreatedAt = decodeTime(created)
	return g, nil
}

func InsertGoal(ctx context.Context, db *sql.DB, g domain.Goal) (domain.Goal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	if g.Status == "" {
		g.Status = domain.GoalPending
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO goals (`+goalCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		g.ID, g.UserID, g.Title, g.Description, string(g.Status), nullMillis(g.Deadline), g.Category, encodeTime(g.CreatedAt),
	)
	if err != nil {
		return domain.Goal{}, err
	}
	g.Deadline = fromNullMillis(nullMillis(g.Deadline))
	return g, nil
}

func ListGoals(ctx context.Context, db *sql.DB, userID string) ([]domain.Goal, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+goalCols+` FROM goals WHERE user_id = ?
ORDER BY created_at DESC, rowid DESC;`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// UpdateGoalStatus changes the status of a goal owned by userID. A goal that
// does not exist or belongs to someone else yields ErrNotFound.
func UpdateGoalStatus(ctx context.Context, db *sql.DB, userID, goalID string, status domain.GoalStatus) (domain.Goal, error) {
	res, err := db.ExecContext(ctx, `UPDATE goals SET status = ? WHERE id = ? AND user_id = ?;`,
		string(status), goalID, userID)
	if err != nil {
		return domain.Goal{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Goal{}, ErrNotFound
	}
	g, err := scanGoal(db.QueryRowContext(ctx, `SELECT `+goalCols+` FROM goals WHERE id = ?;`, goalID))
	if errors.Is(err, sql.ErrNoRows) {
		return g, ErrNotFound
	}
	return g, err
}

func DeleteGoal(ctx context.Context, db *sql.DB, userID, goalID string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM goals WHERE id = ? AND user_id = ?;`, goalID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
