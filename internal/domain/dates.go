package domain

import (
	"fmt"
	"time"
)

// DateLayout is the textual date format exchanged with front ends (MM/dd/yyyy).
const DateLayout = "01/02/2006"

// RecommendationOffsetDays is how far the recommended window is shifted when the
// requested room cannot be booked.
const RecommendationOffsetDays = 7

// DateOf drops the time of day and pins t to UTC midnight.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must use MM/dd/yyyy: %w", s, ErrInvalidArgument)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateStay checks that both dates are set and checkIn is strictly before checkOut.
func ValidateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("check-in and check-out dates are required: %w", ErrInvalidArgument)
	}
	if !DateOf(checkIn).Before(DateOf(checkOut)) {
		return fmt.Errorf("check-in date must be before check-out date: %w", ErrInvalidArgument)
	}
	return nil
}

func RecommendedWindow(checkIn, checkOut time.Time) (time.Time, time.Time) {
	return DateOf(checkIn).AddDate(0, 0, RecommendationOffsetDays),
		DateOf(checkOut).AddDate(0, 0, RecommendationOffsetDays)
}
