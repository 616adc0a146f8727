// Package booking implements the reservation pricing rules and the
// pre-submission checks the booking flow runs before calling the backend.
package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// hoursPerDay converts a stay duration into whole calendar days.
const hoursPerDay = 24

// ParseStayDate parses a YYYY-MM-DD calendar date. The string is split
// into year/month/day integers and anchored at UTC midnight, so the
// difference between two stay dates is always a whole number of days
// regardless of the host timezone or DST.
func ParseStayDate(value string) (time.Time, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid stay date %q", value)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stay date %q", value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stay date %q", value)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stay date %q", value)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components ("2024-02-31"
	// becomes March 2); a date that does not round-trip never existed
	// on the calendar.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("invalid stay date %q", value)
	}
	return d, nil
}

// Nights returns the count of billable nights between check-in and
// check-out, minimum 1. A missing or malformed date also yields 1 so
// display code never shows a zero or negative stay; submission-time
// rejection of such stays is ValidateStay's job.
func Nights(checkIn, checkOut string) int {
	in, err := ParseStayDate(checkIn)
	if err != nil {
		return 1
	}
	out, err := ParseStayDate(checkOut)
	if err != nil {
		return 1
	}
	days := int(math.Round(out.Sub(in).Hours() / hoursPerDay))
	if days < 1 {
		return 1
	}
	return days
}

// TotalAmount returns nights × pricePerNight, rounded to currency
// precision (2 decimals).
func TotalAmount(checkIn, checkOut string, pricePerNight float64) float64 {
	total := float64(Nights(checkIn, checkOut)) * pricePerNight
	return math.Round(total*100) / 100
}
