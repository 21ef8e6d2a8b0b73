package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock turns a clock style string into a duration. Accepted forms
// are plain minutes ("25"), minutes and seconds ("12:30") and hours,
// minutes and seconds ("1:30:00").
func ParseClock(value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("empty duration")
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", value)
	}

	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		parsed, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		numbers = append(numbers, parsed)
	}

	var duration time.Duration
	switch len(numbers) {
	case 1:
		duration = time.Duration(numbers[0]) * time.Minute
	case 2:
		if numbers[1] > 59 {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		duration = time.Duration(numbers[0])*time.Minute + time.Duration(numbers[1])*time.Second
	case 3:
		if numbers[1] > 59 || numbers[2] > 59 {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		duration = time.Duration(numbers[0])*time.Hour +
			time.Duration(numbers[1])*time.Minute +
			time.Duration(numbers[2])*time.Second
	}

	if duration <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}

	return duration, nil
}
