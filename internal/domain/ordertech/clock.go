package ordertech

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FloatToClock converts a fractional-hour value (13.5) to a zero-padded
// HH:MM string ("13:30"). Minutes are rounded to the nearest whole minute.
func FloatToClock(value float64) string {
	hours := int(value)
	minutes := int(math.Round((value - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// ClockToFloat parses an HH:MM string into fractional hours. An empty string
// parses to 0.
func ClockToFloat(clock string) (float64, error) {
	if clock == "" {
		return 0, nil
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return float64(hours) + float64(minutes)/60.0, nil
}

// ValidateClockFloat rejects fractional-hour values outside [0, 24).
func ValidateClockFloat(value float64) error {
	if value < 0 || value >= 24 {
		return ErrClockOutOfRange
	}
	return nil
}
