package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRangeMinutes(t *testing.T) {
	tests := []struct {
		name string
		tr   TimeRange
		want int
	}{
		{name: "full workday", tr: TimeRange{Start: "09:00", End: "17:00"}, want: 480},
		{name: "one minute", tr: TimeRange{Start: "12:00", End: "12:01"}, want: 1},
		{name: "inverted", tr: TimeRange{Start: "17:00", End: "09:00"}, want: 0},
		{name: "equal endpoints", tr: TimeRange{Start: "09:00", End: "09:00"}, want: 0},
		{name: "malformed start", tr: TimeRange{Start: "9am", End: "17:00"}, want: 0},
		{name: "malformed end", tr: TimeRange{Start: "09:00", End: ""}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tr.Minutes())
		})
	}
}

func TestTimeRangeOverlapMinutes(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want int
	}{
		{
			name: "partial overlap",
			a:    TimeRange{Start: "09:00", End: "13:00"},
			b:    TimeRange{Start: "11:00", End: "17:00"},
			want: 120,
		},
		{
			name: "contained",
			a:    TimeRange{Start: "08:00", End: "18:00"},
			b:    TimeRange{Start: "10:00", End: "12:00"},
			want: 120,
		},
		{
			name: "disjoint",
			a:    TimeRange{Start: "08:00", End: "10:00"},
			b:    TimeRange{Start: "14:00", End: "16:00"},
			want: 0,
		},
		{
			name: "touching endpoints",
			a:    TimeRange{Start: "08:00", End: "12:00"},
			b:    TimeRange{Start: "12:00", End: "16:00"},
			want: 0,
		},
		{
			name: "identical",
			a:    TimeRange{Start: "09:00", End: "17:00"},
			b:    TimeRange{Start: "09:00", End: "17:00"},
			want: 480,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.OverlapMinutes(tt.b))
			assert.Equal(t, tt.want, tt.b.OverlapMinutes(tt.a))
		})
	}
}

func TestOverlapScore(t *testing.T) {
	fullWeek := Schedule{
		Monday:    {Start: "09:00", End: "17:00"},
		Tuesday:   {Start: "09:00", End: "17:00"},
		Wednesday: {Start: "09:00", End: "17:00"},
	}

	tests := []struct {
		name      string
		available Schedule
		required  Schedule
		want      float64
	}{
		{
			name:      "full coverage",
			available: fullWeek,
			required:  Schedule{Monday: {Start: "10:00", End: "12:00"}},
			want:      1,
		},
		{
			name:      "half coverage",
			available: Schedule{Monday: {Start: "09:00", End: "13:00"}},
			required:  Schedule{Monday: {Start: "09:00", End: "17:00"}},
			want:      0.5,
		},
		{
			name:      "missing day",
			available: Schedule{Monday: {Start: "09:00", End: "17:00"}},
			required: Schedule{
				Monday:  {Start: "09:00", End: "17:00"},
				Tuesday: {Start: "09:00", End: "17:00"},
			},
			want: 0.5,
		},
		{
			name:      "no overlap",
			available: Schedule{Monday: {Start: "18:00", End: "22:00"}},
			required:  Schedule{Monday: {Start: "09:00", End: "17:00"}},
			want:      0,
		},
		{
			name:      "empty requirement",
			available: fullWeek,
			required:  Schedule{},
			want:      0,
		},
		{
			name:      "empty availability",
			available: Schedule{},
			required:  Schedule{Monday: {Start: "09:00", End: "17:00"}},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapScore(tt.available, tt.required)
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, 1.0)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScheduleTotalMinutes(t *testing.T) {
	s := Schedule{
		Monday:  {Start: "09:00", End: "17:00"},
		Tuesday: {Start: "10:00", End: "12:00"},
		Friday:  {Start: "bad", End: "17:00"},
	}
	assert.Equal(t, 600, s.TotalMinutes())
	assert.Equal(t, 0, Schedule{}.TotalMinutes())
}
