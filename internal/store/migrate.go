package store

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 1

var schemaV1 = []string{
	`
CREATE TABLE IF NOT EXISTS career_paths (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  required_skills TEXT NOT NULL DEFAULT '[]',
  skills_to_grow TEXT NOT NULL DEFAULT '[]',
  category TEXT NOT NULL DEFAULT '',
  growth_outlook TEXT NOT NULL DEFAULT '',
  difficulty TEXT NOT NULL DEFAULT '',
  estimated_salary TEXT NOT NULL DEFAULT ''
);`,
	`
CREATE TABLE IF NOT EXISTS saved_careers (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  career_id TEXT NOT NULL REFERENCES career_paths(id) ON DELETE CASCADE,
  created_at TEXT NOT NULL,
  UNIQUE(user_id, career_id)
);`,
	`
CREATE TABLE IF NOT EXISTS assessments (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  interests TEXT NOT NULL DEFAULT '[]',
  strengths TEXT NOT NULL DEFAULT '[]',
  focus_areas TEXT NOT NULL DEFAULT '[]',
  recommended_careers TEXT NOT NULL DEFAULT '[]',
  confidence_score INTEGER NOT NULL,
  summary TEXT NOT NULL,
  created_at TEXT NOT NULL
);`,
	`
CREATE TABLE IF NOT EXISTS counselors (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  specialization TEXT NOT NULL DEFAULT '',
  bio TEXT NOT NULL DEFAULT '',
  experience_years INTEGER NOT NULL DEFAULT 0,
  rating REAL NOT NULL DEFAULT 0,
  focus_areas TEXT NOT NULL DEFAULT '[]',
  availability TEXT NOT NULL DEFAULT '[]'
);`,
	`
CREATE TABLE IF NOT EXISTS mentorship_sessions (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  counselor_id TEXT NOT NULL,
  session_date INTEGER NOT NULL,
  goal TEXT NOT NULL,
  status TEXT NOT NULL,
  notes TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);`,
	`
CREATE TABLE IF NOT EXISTS goals (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL,
  deadline INTEGER,
  category TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);`,
	`
CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL UNIQUE,
  headline TEXT NOT NULL DEFAULT '',
  bio TEXT NOT NULL DEFAULT '',
  skills TEXT NOT NULL DEFAULT '[]',
  interests TEXT NOT NULL DEFAULT '[]',
  current_role TEXT NOT NULL DEFAULT '',
  target_role TEXT NOT NULL DEFAULT '',
  experience_years INTEGER,
  updated_at TEXT NOT NULL
);`,
	`
CREATE TABLE IF NOT EXISTS feedback (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  rating INTEGER NOT NULL,
  mood TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  message TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_user ON assessments(user_id, created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON mentorship_sessions(user_id, created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id, created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_user ON feedback(user_id, created_at);`,
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= schemaVersion {
		return tx.Commit()
	}

	for _, stmt := range schemaV1 {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("migrate v1: %w", err)
		}
	}

	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return err
	}
	return tx.Commit()
}
