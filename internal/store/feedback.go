package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"careerguide-engine/internal/domain"
)

func InsertFeedback(ctx context.Context, db *sql.DB, f domain.Feedback) (domain.Feedback, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO feedback (id, user_id, rating, mood, category, message, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		f.ID, f.UserID, f.Rating, f.Mood, f.Category, f.Message, encodeTime(f.CreatedAt))
	if err != nil {
		return domain.Feedback{}, err
	}
	return f, nil
}

func ListFeedback(ctx context.Context, db *sql.DB, userID string, limit int) ([]domain.Feedback, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, user_id, rating, mood, category, message, created_at
FROM feedback WHERE user_id = ?
ORDER BY created_at DESC, rowid DESC
LIMIT ?;`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Feedback{}
	for rows.Next() {
		var f domain.Feedback
		var created string
		if err := rows.Scan(&f.ID, &f.UserID, &f.Rating, &f.Mood, &f.Category, &f.Message, &created); err != nil {
			return nil, err
		}
		f.CreatedAt = decodeTime(created)
		out = append(out, f)
	}
	return out, rows.Err()
}
