// Package analytics derives admin-dashboard figures from session and
// assessment history. Everything here is recomputed on every read.
package analytics

import (
	"fmt"
	"time"

	"careerguide-engine/internal/domain"
)

const NoData = "No data"

// PeakHour returns the busiest hour of day in loc. Ties go to the earliest
// hour. ok is false when there are no sessions.
func PeakHour(sessions []domain.MentorshipSession, loc *time.Location) (hour int, ok bool) {
	if len(sessions) == 0 {
		return 0, false
	}
	if loc == nil {
		loc = time.Local
	}
	var counts [24]int
	for _, s := range sessions {
		counts[s.SessionDate.In(loc).Hour()]++
	}
	for h := 1; h < 24; h++ {
		if counts[h] > counts[hour] {
			hour = h
		}
	}
	return hour, true
}

func PeakHourLabel(sessions []domain.MentorshipSession, loc *time.Location) string {
	hour, ok := PeakHour(sessions, loc)
	if !ok {
		return NoData
	}
	return "Peak: " + HourLabel(hour)
}

// HourLabel formats 0..23 on a 12-hour clock: 0 -> "12 AM", 13 -> "1 PM".
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
