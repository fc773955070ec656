// Package timefmt converts playback positions between seconds and clock strings.
package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxSeconds is the largest timestamp Parse accepts, 100000 hours.
const maxSeconds = 100000 * 3600

// ErrInvalidTimestamp is returned by Parse for input that is not a clock string.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

func valid(seconds float64) bool {
	return seconds > 0 && !math.IsNaN(seconds) && !math.IsInf(seconds, 0)
}

// FormatShort renders seconds as M:SS. Minutes are not padded and may exceed 59.
func FormatShort(seconds float64) string {
	if !valid(seconds) {
		return "0:00"
	}

	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatLong renders seconds as H:MM:SS when at least one hour is present and as M:SS otherwise.
func FormatLong(seconds float64) string {
	if !valid(seconds) {
		return "0:00:00"
	}

	total := int64(math.Floor(seconds))
	hours := total / 3600
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, (total%3600)/60, total%60)
	}

	return FormatShort(seconds)
}

// Parse reads "SS", "M:SS" or "H:MM:SS" back into seconds.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTimestamp)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}

	var total uint64
	for i, part := range parts {
		// ParseUint rejects signs, so "+5" and "-0" fail here
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
		}

		// Only the leading component may overflow its unit.
		if i > 0 && (n > 59 || len(part) != 2) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
		}

		total = total*60 + n
		if total > maxSeconds {
			return 0, fmt.Errorf("%w: %q is too long", ErrInvalidTimestamp, s)
		}
	}

	return float64(total), nil
}
