package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"careerguide-engine/internal/domain"
)

func InsertSession(ctx context.Context, db *sql.DB, s domain.MentorshipSession) (domain.MentorshipSession, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = domain.SessionScheduled
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO mentorship_sessions (id, user_id, counselor_id, session_date, goal, status, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		s.ID, s.UserID, s.CounselorID, encodeMillis(s.SessionDate), s.Goal, string(s.Status), s.Notes, encodeTime(s.CreatedAt),
	)
	if err != nil {
		return domain.MentorshipSession{}, err
	}
	s.SessionDate = decodeMillis(encodeMillis(s.SessionDate))
	return s, nil
}

// ListSessions returns sessions newest-created first. An empty userID
// lists every user's sessions.
func ListSessions(ctx context.Context, db *sql.DB, userID string) ([]domain.MentorshipSession, error) {
	where, args := userFilter(userID)
	rows, err := db.QueryContext(ctx, `
SELECT id, user_id, counselor_id, session_date, goal, status, notes, created_at
FROM mentorship_sessions `+where+`
ORDER BY created_at DESC, rowid DESC;`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MentorshipSession{}
	for rows.Next() {
		var s domain.MentorshipSession
		var date int64
		var status, created string
		if err := rows.Scan(&s.ID, &s.UserID, &s.CounselorID, &date, &s.Goal, &status, &s.Notes, &created); err != nil {
			return nil, err
		}
		s.SessionDate = decodeMillis(date)
		s.Status = domain.SessionStatus(status)
		s.CreatedAt = decodeTime(created)
		out = append(out, s)
	}
	return out, rows.Err()
}
