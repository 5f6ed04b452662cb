package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"careerguide-engine/internal/domain"
)

const assessmentCols = `id, user_id, interests, strengths, focus_areas, recommended_careers, confidence_score, summary, created_at`

func scanAssessment(r rowScanner) (domain.Assessment, error) {
	var a domain.Assessment
	var interests, strengths, focus, recs, created string
	if err := r.Scan(&a.ID, &a.UserID, &interests, &strengths, &focus, &recs,
		&a.ConfidenceScore, &a.Summary, &created); err != nil {
		return a, err
	}
	a.Interests = decodeList(interests)
	a.Strengths = decodeList(strengths)
	a.FocusAreas = decodeList(focus)
	a.RecommendedCareers = decodeList(recs)
	a.CreatedAt = decodeTime(created)
	return a, nil
}

// InsertAssessment writes one assessment in a single statement. ID and
// CreatedAt are assigned when empty.
func InsertAssessment(ctx context.Context, db *sql.DB, a domain.Assessment) (domain.Assessment, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.RecommendedCareers == nil {
		a.RecommendedCareers = []string{}
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO assessments (`+assessmentCols+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		a.ID, a.UserID, encodeList(a.Interests), encodeList(a.Strengths), encodeList(a.FocusAreas),
		encodeList(a.RecommendedCareers), a.ConfidenceScore, a.Summary, encodeTime(a.CreatedAt),
	)
	if err != nil {
		return domain.Assessment{}, err
	}
	return a, nil
}

// ListAssessments returns assessments newest first. An empty userID lists
// every user's; limit <= 0 means no limit.
func ListAssessments(ctx context.Context, db *sql.DB, userID string, limit int) ([]domain.Assessment, error) {
	where, args := userFilter(userID)
	if limit <= 0 {
		limit = -1
	}
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, `SELECT `+assessmentCols+` FROM assessments `+where+`
ORDER BY created_at DESC, rowid DESC
LIMIT ?;`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func LatestAssessment(ctx context.Context, db *sql.DB, userID string) (domain.Assessment, error) {
	row := db.QueryRowContext(ctx, `SELECT `+assessmentCols+` FROM assessments WHERE user_id = ?
ORDER BY created_at DESC, rowid DESC LIMIT 1;`, userID)
	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return a, ErrNotFound
	}
	return a, err
}
