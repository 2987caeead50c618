package dto

import (
	"github.com/neogig/neogig/internal/domain"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// TimeRangePayload is a wire-level within-day interval.
type TimeRangePayload struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

// SchedulePayload is the wire form of a weekly schedule, keyed by day
// code (MON..SUN).
type SchedulePayload map[string]TimeRangePayload

var validDays = map[string]domain.Weekday{
	string(domain.Monday):    domain.Monday,
	string(domain.Tuesday):   domain.Tuesday,
	string(domain.Wednesday): domain.Wednesday,
	string(domain.Thursday):  domain.Thursday,
	string(domain.Friday):    domain.Friday,
	string(domain.Saturday):  domain.Saturday,
	string(domain.Sunday):    domain.Sunday,
}

// ToDomain converts the payload, rejecting unknown day codes.
func (p SchedulePayload) ToDomain() (domain.Schedule, error) {
	if p == nil {
		return nil, nil
	}
	schedule := make(domain.Schedule, len(p))
	for day, tr := range p {
		weekday, ok := validDays[day]
		if !ok {
			return nil, apperrors.NewValidationError("unknown schedule day", map[string]any{"day": day})
		}
		schedule[weekday] = domain.TimeRange{Start: tr.Start, End: tr.End}
	}
	return schedule, nil
}

// ScheduleFromDomain converts a schedule for responses.
func ScheduleFromDomain(s domain.Schedule) SchedulePayload {
	if s == nil {
		return nil
	}
	payload := make(SchedulePayload, len(s))
	for day, tr := range s {
		payload[string(day)] = TimeRangePayload{Start: tr.Start, End: tr.End}
	}
	return payload
}
