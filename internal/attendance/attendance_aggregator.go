package attendance

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go-erp/internal/shared/period"
)

const (
	fullDayHours = 8
	halfDayHours = 4
)

type Tally struct {
	Present float64
	Absent  float64
}

// Aggregate classifies every day of p for each employee. Sundays and holidays count as present,
// other days are scored from the hours worked that day: 8h or more is present, 4h to 8h is half
// present and half absent, anything less is absent. Employees come from the roster and from the
// records, so someone with no records is still reported. Records outside p are ignored.
func Aggregate(employees []string, records []AttendanceRecord, p period.Period, holidays []int) map[string]Tally {
	days := p.DaysInMonth()

	off := make(map[int]bool, len(holidays))
	for _, d := range holidays {
		if d >= 1 && d <= days {
			off[d] = true
		}
	}

	worked := make(map[string]map[int]float64)
	for _, id := range employees {
		if id != "" {
			worked[id] = make(map[int]float64)
		}
	}
	for _, rec := range records {
		if rec.EmployeeID == "" || !p.Contains(rec.AttendanceDate) {
			continue
		}
		perDay, ok := worked[rec.EmployeeID]
		if !ok {
			perDay = make(map[int]float64)
			worked[rec.EmployeeID] = perDay
		}
		perDay[rec.AttendanceDate.UTC().Day()] += WorkedHours(rec)
	}

	result := make(map[string]Tally, len(worked))
	for id, perDay := range worked {
		var t Tally
		for day := 1; day <= days; day++ {
			if off[day] || p.Date(day).Weekday() == time.Sunday {
				t.Present++
				continue
			}
			switch h := perDay[day]; {
			case h >= fullDayHours:
				t.Present++
			case h >= halfDayHours:
				t.Present += 0.5
				t.Absent += 0.5
			default:
				t.Absent++
			}
		}
		result[id] = t
	}
	return result
}

// WorkedHours is zero for a session that is still open.
func WorkedHours(rec AttendanceRecord) float64 {
	if rec.Status == StatusOpen || (rec.CheckOut == nil && rec.Hours == nil && rec.Duration == nil) {
		return 0
	}
	if rec.Hours != nil {
		return clampHours(*rec.Hours)
	}
	if rec.Duration != nil {
		return ParseWorkedHours(*rec.Duration)
	}
	return clampHours(rec.CheckOut.Sub(rec.CheckIn).Hours())
}

// ParseWorkedHours reads "8h 30m", "8h", "45m" or a bare number of hours like "7.5".
// Anything it cannot read is 0 hours.
func ParseWorkedHours(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if s == "" {
		return 0
	}
	if h, err := strconv.ParseFloat(s, 64); err == nil {
		return clampHours(h)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return clampHours(d.Hours())
}

// FormatDuration renders d the way durations are stored, e.g. "8h 5m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
}

func clampHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}
