package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careerguide-engine/internal/domain"
)

const careerCols = `id, title, description, required_skills, skills_to_grow, category, growth_outlook, difficulty, estimated_salary`

func scanCareer(r rowScanner) (domain.CareerPath, error) {
	var c domain.CareerPath
	var req, grow string
	if err := r.Scan(&c.ID, &c.Title, &c.Description, &req, &grow,
		&c.Category, &c.GrowthOutlook, &c.Difficulty, &c.EstimatedSalary); err != nil {
		return c, err
	}
	c.RequiredSkills = decodeList(req)
	c.SkillsToGrow = decodeList(grow)
	return c, nil
}

// ListCareers returns the catalog in seed order.
func ListCareers(ctx context.Context, db *sql.DB) ([]domain.CareerPath, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+careerCols+` FROM career_paths ORDER BY position ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CareerPath{}
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func GetCareer(ctx context.Context, db *sql.DB, id string) (domain.CareerPath, error) {
	row := db.QueryRowContext(ctx, `SELECT `+careerCols+` FROM career_paths WHERE id = ?;`, id)
	c, err := scanCareer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

// FindCareerByTitle is used to resolve a recommendation title back to a
// catalog entry. The match is case-insensitive.
func FindCareerByTitle(ctx context.Context, db *sql.DB, title string) (domain.CareerPath, error) {
	row := db.QueryRowContext(ctx, `SELECT `+careerCols+` FROM career_paths WHERE lower(title) = lower(?) ORDER BY position LIMIT 1;`, title)
	c, err := scanCareer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

// CareerCategories lists distinct categories in first-seen catalog order.
func CareerCategories(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
SELECT category FROM career_paths
WHERE category != ''
GROUP BY category
ORDER BY MIN(position) ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// InsertCareers appends careers after the current last position.
func InsertCareers(ctx context.Context, db *sql.DB, careers []domain.CareerPath) ([]domain.CareerPath, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM career_paths;`).Scan(&next); err != nil {
		return nil, err
	}

	out := make([]domain.CareerPath, 0, len(careers))
	for i, c := range careers {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO career_paths (id, position, title, description, required_skills, skills_to_grow, category, growth_outlook, difficulty, estimated_salary)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			c.ID, next+i, c.Title, c.Description, encodeList(c.RequiredSkills), encodeList(c.SkillsToGrow),
			c.Category, c.GrowthOutlook, c.Difficulty, c.EstimatedSalary,
		); err != nil {
			return nil, fmt.Errorf("insert career %q: %w", c.Title, err)
		}
		c.RequiredSkills = decodeList(encodeList(c.RequiredSkills))
		c.SkillsToGrow = decodeList(encodeList(c.SkillsToGrow))
		out = append(out, c)
	}
	return out, tx.Commit()
}

// ToggleSavedCareer saves the career for the user, or removes it when it
// was already saved. It reports "saved" or "removed".
func ToggleSavedCareer(ctx context.Context, db *sql.DB, userID, careerID string) (string, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM career_paths WHERE id = ?;`, careerID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM saved_careers WHERE user_id = ? AND career_id = ?;`, userID, careerID)
	if err != nil {
		return "", err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return "removed", tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO saved_careers (id, user_id, career_id, created_at) VALUES (?, ?, ?, ?);`,
		uuid.NewString(), userID, careerID, encodeTime(time.Now())); err != nil {
		return "", err
	}
	return "saved", tx.Commit()
}

func ListSavedCareers(ctx context.Context, db *sql.DB, userID string) ([]domain.SavedCareer, error) {
	rows, err := db.QueryContext(ctx, `
SELECT s.id, c.id, c.title, c.description, c.required_skills, c.skills_to_grow, c.category, c.growth_outlook, c.difficulty, c.estimated_salary
FROM saved_careers s
JOIN career_paths c ON c.id = s.career_id
WHERE s.user_id = ?
ORDER BY s.created_at DESC, s.rowid DESC;`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SavedCareer{}
	for rows.Next() {
		var s domain.SavedCareer
		var req, grow string
		c := &s.Career
		if err := rows.Scan(&s.SavedCareerID, &c.ID, &c.Title, &c.Description, &req, &grow,
			&c.Category, &c.GrowthOutlook, &c.Difficulty, &c.EstimatedSalary); err != nil {
			return nil, err
		}
		c.RequiredSkills = decodeList(req)
		c.SkillsToGrow = decodeList(grow)
		out = append(out, s)
	}
	return out, rows.Err()
}
