package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"careerguide-engine/internal/domain"
)

const counselorCols = `id, name, specialization, bio, experience_years, rating, focus_areas, availability`

func scanCounselor(r rowScanner) (domain.Counselor, error) {
	var c domain.Counselor
	var focus, avail string
	if err := r.Scan(&c.ID, &c.Name, &c.Specialization, &c.Bio, &c.ExperienceYears,
		&c.Rating, &focus, &avail); err != nil {
		return c, err
	}
	c.FocusAreas = decodeList(focus)
	c.Availability = decodeList(avail)
	return c, nil
}

// ListCounselors returns counselors in catalog order.
func ListCounselors(ctx context.Context, db *sql.DB) ([]domain.Counselor, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+counselorCols+` FROM counselors ORDER BY position ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Counselor{}
	for rows.Next() {
		c, err := scanCounselor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func GetCounselor(ctx context.Context, db *sql.DB, id string) (domain.Counselor, error) {
	c, err := scanCounselor(db.QueryRowContext(ctx, `SELECT `+counselorCols+` FROM counselors WHERE id = ?;`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

func InsertCounselors(ctx context.Context, db *sql.DB, counselors []domain.Counselor) ([]domain.Counselor, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM counselors;`).Scan(&next); err != nil {
		return nil, err
	}

	out := make([]domain.Counselor, 0, len(counselors))
	for i, c := range counselors {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO counselors (id, position, name, specialization, bio, experience_years, rating, focus_areas, availability)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			c.ID, next+i, c.Name, c.Specialization, c.Bio, c.ExperienceYears, c.Rating,
			encodeList(c.FocusAreas), encodeList(c.Availability),
		); err != nil {
			return nil, fmt.Errorf("insert counselor %q: %w", c.Name, err)
		}
		out = append(out, c)
	}
	return out, tx.Commit()
}
