// Package timerange turns the (fecha, hora_inicio, hora_fin) triple stored on
// brigade reports into a duration.
package timerange

import (
	"fmt"
	"strings"

	"go-fieldops/pkg/apperrors"
)

// ParseClock parses a 24-hour "HH:MM" value into minutes after midnight.
// Both fields must be exactly two digits, hours 00-23 and minutes 00-59.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, malformed(value)
	}
	hours, ok := twoDigits(parts[0])
	if !ok || hours > 23 {
		return 0, malformed(value)
	}
	minutes, ok := twoDigits(parts[1])
	if !ok || minutes > 59 {
		return 0, malformed(value)
	}
	return hours*60 + minutes, nil
}

// DurationMinutes returns horaFin minus horaInicio in minutes.
//
// The result is not clamped: a pair with horaFin before horaInicio yields a
// negative duration. Ranges crossing midnight are not supported since a report
// carries a single date. fecha is accepted for symmetry with the stored triple
// and is not consulted.
func DurationMinutes(fecha, horaInicio, horaFin string) (int, error) {
	start, err := ParseClock(horaInicio)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(horaFin)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func malformed(value string) error {
	return apperrors.Clone(apperrors.ErrMalformedTime, fmt.Sprintf("malformed time %q, expected HH:MM", value))
}
