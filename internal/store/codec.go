package store

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Lists are stored as JSON text; timestamps as fixed-width UTC text so string
// order is time order, except scheduling instants which are unix milliseconds.

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func encodeList(xs []string) string {
	if xs == nil {
		xs = []string{}
	}
	b, _ := json.Marshal(xs)
	return string(b)
}

func decodeList(s string) []string {
	out := []string{}
	_ = json.Unmarshal([]byte(s), &out)
	return out
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func encodeMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func decodeMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: encodeMillis(*t), Valid: true}
}

func fromNullMillis(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := decodeMillis(n.Int64)
	return &t
}

type rowScanner interface {
	Scan(dest ...any) error
}

// userFilter narrows a query to one user; an empty id selects every row.
func userFilter(userID string) (string, []any) {
	if userID == "" {
		return "", nil
	}
	return "WHERE user_id = ?", []any{userID}
}
