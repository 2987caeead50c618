package domain

import "time"

// Weekday enumerates schedule days.
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

// Weekdays lists all days in order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimeRange is a within-day interval in "HH:MM" wall-clock form.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Minutes returns the length of the range in minutes, zero if malformed
// or inverted.
func (tr TimeRange) Minutes() int {
	start, err := time.Parse("15:04", tr.Start)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", tr.End)
	if err != nil {
		return 0
	}
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(d.Minutes())
}

// OverlapMinutes returns the overlapping minutes between two ranges on
// the same day.
func (tr TimeRange) OverlapMinutes(other TimeRange) int {
	aStart, err := time.Parse("15:04", tr.Start)
	if err != nil {
		return 0
	}
	aEnd, err := time.Parse("15:04", tr.End)
	if err != nil {
		return 0
	}
	bStart, err := time.Parse("15:04", other.Start)
	if err != nil {
		return 0
	}
	bEnd, err := time.Parse("15:04", other.End)
	if err != nil {
		return 0
	}
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(d.Minutes())
}

// Schedule maps days to an optional working interval. Days without an
// entry are off.
type Schedule map[Weekday]TimeRange

// TotalMinutes sums the scheduled minutes across all days.
func (s Schedule) TotalMinutes() int {
	total := 0
	for _, tr := range s {
		total += tr.Minutes()
	}
	return total
}

// OverlapScore returns the fraction of required's scheduled time that
// available covers, in [0,1]. An empty requirement or availability
// scores zero.
func OverlapScore(available, required Schedule) float64 {
	requiredTotal := required.TotalMinutes()
	if requiredTotal == 0 || len(available) == 0 {
		return 0
	}
	covered := 0
	for day, need := range required {
		have, ok := available[day]
		if !ok {
			continue
		}
		covered += have.OverlapMinutes(need)
	}
	return float64(covered) / float64(requiredTotal)
}
