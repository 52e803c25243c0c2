package domain

import "time"

const dateLayout = "2006-01-02"

// DateWindow is an inclusive range of calendar dates.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TrailingWeek covers today and the seven days before it.
func TrailingWeek(today time.Time) DateWindow {
	end := Day(today)
	return DateWindow{Start: end.AddDate(0, 0, -7), End: end}
}

// MonthToDate covers the first of today's month through today.
func MonthToDate(today time.Time) DateWindow {
	end := Day(today)
	return DateWindow{Start: end.AddDate(0, 0, 1-end.Day()), End: end}
}

// Contains compares calendar dates only; the time of day of t is ignored.
func (w DateWindow) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, w.Start.Location())
	return !d.Before(w.Start) && !d.After(w.End)
}

// ContainsDate parses the leading YYYY-MM-DD of s and reports whether it is in the window.
// Unparseable input is never contained.
func (w DateWindow) ContainsDate(s string) bool {
	if len(s) < len(dateLayout) {
		return false
	}
	t, err := time.ParseInLocation(dateLayout, s[:len(dateLayout)], w.Start.Location())
	if err != nil {
		return false
	}
	return w.Contains(t)
}

func (w DateWindow) Duration() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
