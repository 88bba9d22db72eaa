package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "same day rental counts as one day",
			start: date(2024, time.May, 1),
			end:   date(2024, time.May, 1),
			want:  1,
		},
		{
			name:  "both endpoints are billable",
			start: date(2024, time.May, 1),
			end:   date(2024, time.May, 3),
			want:  3,
		},
		{
			name:  "range across month boundary",
			start: date(2024, time.May, 30),
			end:   date(2024, time.June, 2),
			want:  4,
		},
		{
			name:  "time of day is ignored",
			start: time.Date(2024, time.May, 1, 23, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.May, 2, 1, 0, 0, 0, time.UTC),
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(tt.start, tt.end))
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	t.Parallel()

	booking := &Booking{
		StartDate: date(2024, time.May, 10),
		EndDate:   date(2024, time.May, 15),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"fully inside", date(2024, time.May, 11), date(2024, time.May, 14), true},
		{"fully covers", date(2024, time.May, 1), date(2024, time.May, 31), true},
		{"touches start boundary", date(2024, time.May, 1), date(2024, time.May, 10), true},
		{"touches end boundary", date(2024, time.May, 15), date(2024, time.May, 20), true},
		{"ends day before", date(2024, time.May, 1), date(2024, time.May, 9), false},
		{"starts day after", date(2024, time.May, 16), date(2024, time.May, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBookingStatus(t *testing.T) {
	t.Parallel()

	pending := &Booking{Status: StatusPending}
	assert.True(t, pending.IsActive())
	assert.False(t, pending.IsCancelled())

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.True(t, cancelled.IsCancelled())
}
