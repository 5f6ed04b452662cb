package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"careerguide-engine/internal/domain"
)

func GetProfile(ctx context.Context, db *sql.DB, userID string) (domain.Profile, error) {
	var p domain.Profile
	var skills, interests string
	var years sql.NullInt64
	err := db.QueryRowContext(ctx, `
SELECT id, user_id, headline, bio, skills, interests, current_role, target_role, experience_years
FROM profiles WHERE user_id = ?;`, userID).Scan(
		&p.ID, &p.UserID, &p.Headline, &p.Bio, &skills, &interests, &p.CurrentRole, &p.TargetRole, &years)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	if err != nil {
		return p, err
	}
	p.Skills = decodeList(skills)
	p.Interests = decodeList(interests)
	if years.Valid {
		y := int(years.Int64)
		p.ExperienceYears = &y
	}
	return p, nil
}

// UpsertProfile creates or replaces the user's single profile row.
func UpsertProfile(ctx context.Context, db *sql.DB, p domain.Profile) (domain.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	var years sql.NullInt64
	if p.ExperienceYears != nil {
		years = sql.NullInt64{Int64: int64(*p.ExperienceYears), Valid: true}
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO profiles (id, user_id, headline, bio, skills, interests, current_role, target_role, experience_years, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
  headline = excluded.headline,
  bio = excluded.bio,
  skills = excluded.skills,
  interests = excluded.interests,
  current_role = excluded.current_role,
  target_role = excluded.target_role,
  experience_years = excluded.experience_years,
  updated_at = excluded.updated_at;`,
		p.ID, p.UserID, p.Headline, p.Bio, encodeList(p.Skills), encodeList(p.Interests),
		p.CurrentRole, p.TargetRole, years, encodeTime(time.Now()),
	)
	if err != nil {
		return domain.Profile{}, err
	}
	return GetProfile(ctx, db, p.UserID)
}
