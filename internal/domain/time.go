package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRideTime parses an HH:MM 24h time-of-day string into minutes since
// midnight.
func ParseRideTime(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid ride time %q", s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid ride time %q", s)
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid ride time %q", s)
	}

	return hours*60 + minutes, nil
}
