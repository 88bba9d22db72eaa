package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a car rental booking in the system
//
// TotalDays and TotalAmount are computed once at creation and never
// recomputed: later changes to the car's daily price do not affect
// existing bookings.
type Booking struct {
	ID          int64
	UserID      int64
	CarID       int64
	StartDate   time.Time // date only, inclusive
	EndDate     time.Time // date only, inclusive, >= StartDate
	TotalDays   int
	TotalAmount float64
	Status      BookingStatus

	CreatedAt time.Time
}

// IsActive returns true if the booking still occupies its date range
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps returns true if the booking's date range intersects
// [start, end] (both ranges inclusive on both ends)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// UserBooking is a booking joined with display fields of the rented car
type UserBooking struct {
	Booking
	CarName     string
	CarBrand    string
	CarImageURL *string
}

// RentalDays returns the number of billable days for an inclusive date
// range: both endpoints count as rented days, so a same-day rental is 1
func RentalDays(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
