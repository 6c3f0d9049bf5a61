package service

import (
	"math"

	"github.com/locvowork/staff_attendance/internal/domain"
)

// SummarizeDay aggregates the records dated date against a roster of staffCount.
// Late arrivals count as present.
func SummarizeDay(date string, records []domain.AttendanceRecord, staffCount int) domain.DailySummary {
	summary := domain.DailySummary{Date: date, TotalStaff: staffCount}

	for _, r := range records {
		if r.Date != date {
			continue
		}
		switch r.Status {
		case domain.StatusPresent:
			summary.Present++
		case domain.StatusLate:
			summary.Present++
			summary.Late++
		}
	}

	summary.Absent = staffCount - summary.Present
	if summary.Absent < 0 {
		summary.Absent = 0
	}
	if staffCount > 0 {
		summary.AttendancePercent = percent(summary.Present, staffCount)
	}
	return summary
}

// StaffStatsFor aggregates one member's records. No history means a perfect rate.
func StaffStatsFor(records []domain.AttendanceRecord) domain.StaffStats {
	stats := domain.StaffStats{TotalDays: len(records)}

	for _, r := range records {
		switch r.Status {
		case domain.StatusPresent:
			stats.PresentDays++
		case domain.StatusLate:
			stats.LateDays++
		}
	}

	stats.AttendanceRate = 100
	if stats.TotalDays > 0 {
		stats.AttendanceRate = percent(stats.PresentDays+stats.LateDays, stats.TotalDays)
	}
	return stats
}

func percent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
