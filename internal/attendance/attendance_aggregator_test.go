package attendance

import (
	"testing"
	"time"

	"go-erp/internal/shared/period"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func closed(employeeID string, d int, hours float64) AttendanceRecord {
	in := day(d).Add(9 * time.Hour)
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return AttendanceRecord{EmployeeID: employeeID, AttendanceDate: day(d), CheckIn: in, CheckOut: &out, Status: StatusClosed}
}

func strPtr(v string) *string { return &v }

func TestAggregate(t *testing.T) {
	march := period.New(3, 2024)

	t.Run("roster employee without records only gets sundays", func(t *testing.T) {
		got := Aggregate([]string{"a@x.io"}, nil, march, nil)

		assert.Equal(t, Tally{Present: 5, Absent: 26}, got["a@x.io"])
	})

	t.Run("classifies worked hours per day", func(t *testing.T) {
		halfDay := AttendanceRecord{EmployeeID: "a@x.io", AttendanceDate: day(5), CheckIn: day(5), Duration: strPtr("4h 30m"), Status: StatusClosed}
		open := AttendanceRecord{EmployeeID: "a@x.io", AttendanceDate: day(7), CheckIn: day(7).Add(9 * time.Hour), Status: StatusOpen}
		april := AttendanceRecord{EmployeeID: "a@x.io", AttendanceDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), Hours: floatPtr(9), Status: StatusClosed}

		records := []AttendanceRecord{
			closed("a@x.io", 4, 8),
			halfDay,
			closed("a@x.io", 6, 5),
			closed("a@x.io", 6, 3),
			open,
			april,
			closed("a@x.io", 3, 8),
		}

		got := Aggregate(nil, records, march, []int{1})

		assert.Equal(t, Tally{Present: 8.5, Absent: 22.5}, got["a@x.io"])
	})

	t.Run("employees from records are added to the roster", func(t *testing.T) {
		got := Aggregate([]string{"a@x.io", ""}, []AttendanceRecord{closed("b@x.io", 4, 10)}, march, nil)

		assert.Len(t, got, 2)
		assert.Equal(t, 6.0, got["b@x.io"].Present)
	})

	t.Run("holidays outside the month are ignored", func(t *testing.T) {
		got := Aggregate([]string{"a@x.io"}, nil, march, []int{0, 32, -1})

		assert.Equal(t, Tally{Present: 5, Absent: 26}, got["a@x.io"])
	})

	t.Run("present plus absent always covers the month", func(t *testing.T) {
		for _, p := range []period.Period{period.New(2, 2024), period.New(2, 2023), period.New(4, 2024), march} {
			got := Aggregate([]string{"a@x.io"}, []AttendanceRecord{closed("a@x.io", 4, 6)}, p, []int{2, 9})
			tally := got["a@x.io"]
			assert.Equal(t, float64(p.DaysInMonth()), tally.Present+tally.Absent, p.String())
		}
	})
}

func floatPtr(v float64) *float64 { return &v }

func TestWorkedHours(t *testing.T) {
	in := day(4).Add(9 * time.Hour)
	out := in.Add(7*time.Hour + 30*time.Minute)

	assert.Equal(t, 6.25, WorkedHours(AttendanceRecord{Hours: floatPtr(6.25), Duration: strPtr("1h"), Status: StatusClosed}))
	assert.Equal(t, 1.0, WorkedHours(AttendanceRecord{Duration: strPtr("1h"), CheckIn: in, CheckOut: &out, Status: StatusClosed}))
	assert.Equal(t, 7.5, WorkedHours(AttendanceRecord{CheckIn: in, CheckOut: &out, Status: StatusClosed}))
	assert.Equal(t, 0.0, WorkedHours(AttendanceRecord{CheckIn: in, Status: StatusClosed}))
	assert.Equal(t, 0.0, WorkedHours(AttendanceRecord{CheckIn: in, CheckOut: &out, Status: StatusOpen}))
	assert.Equal(t, 0.0, WorkedHours(AttendanceRecord{Hours: floatPtr(-3), Status: StatusClosed}))
}

func TestParseWorkedHours(t *testing.T) {
	cases := map[string]float64{
		"8h 30m": 8.5,
		"8h":     8,
		"45m":    0.75,
		"7.5":    7.5,
		" 4h ":   4,
		"":       0,
		"later":  0,
		"-2h":    0,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseWorkedHours(raw), raw)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "8h 5m", FormatDuration(8*time.Hour+5*time.Minute+40*time.Second))
	assert.Equal(t, "0h 0m", FormatDuration(-time.Minute))
}
