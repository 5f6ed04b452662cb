package store

import (
	"context"
	"database/sql"

	"careerguide-engine/internal/config"
	"careerguide-engine/internal/domain"
)

// SeedCareersIfEmpty inserts the catalog's career paths when the table is
// empty and reports how many were added.
func SeedCareersIfEmpty(ctx context.Context, db *sql.DB, cat config.CatalogFile) (int, error) {
	n, err := count(ctx, db, "career_paths")
	if err != nil || n > 0 {
		return 0, err
	}
	careers := make([]domain.CareerPath, 0, len(cat.CareerPaths))
	for _, c := range cat.CareerPaths {
		careers = append(careers, c.Domain())
	}
	added, err := InsertCareers(ctx, db, careers)
	return len(added), err
}

func SeedCounselorsIfEmpty(ctx context.Context, db *sql.DB, cat config.CatalogFile) (int, error) {
	n, err := count(ctx, db, "counselors")
	if err != nil || n > 0 {
		return 0, err
	}
	counselors := make([]domain.Counselor, 0, len(cat.Counselors))
	for _, c := range cat.Counselors {
		counselors = append(counselors, c.Domain())
	}
	added, err := InsertCounselors(ctx, db, counselors)
	return len(added), err
}

func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+`;`).Scan(&n)
	return n, err
}
