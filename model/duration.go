package model

import (
	"fmt"
	"strconv"
	"time"
)

// ParseISODuration parses the ISO-8601 duration subset the platform emits:
// integer weeks, days, hours, minutes and seconds. Months and years are not
// supported.
func ParseISODuration(s string) (time.Duration, error) {
	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var total time.Duration
	var num string
	inTime, seen := false, false
	for _, c := range s[1:] {
		switch {
		case c == 'T':
			if inTime {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			inTime = true
		case c >= '0' && c <= '9':
			num += string(c)
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", s, err)
			}
			var unit time.Duration
			switch {
			case !inTime && c == 'W':
				unit = 7 * 24 * time.Hour
			case !inTime && c == 'D':
				unit = 24 * time.Hour
			case inTime && c == 'H':
				unit = time.Hour
			case inTime && c == 'M':
				unit = time.Minute
			case inTime && c == 'S':
				unit = time.Second
			default:
				return 0, fmt.Errorf("unexpected %q in duration %q", c, s)
			}
			total += time.Duration(n) * unit
			num = ""
			seen = true
		}
	}
	if num != "" || !seen {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	return total, nil
}

// FormatElapsed renders d as H:MM:SS with unpadded hours. Days fold into the
// hour count.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)

	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// HumanDuration converts an ISO-8601 duration to elapsed-time form, falling
// back to the raw string when it does not parse.
func HumanDuration(iso string) string {
	d, err := ParseISODuration(iso)
	if err != nil {
		return iso
	}

	return FormatElapsed(d)
}
