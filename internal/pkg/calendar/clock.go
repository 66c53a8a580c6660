package calendar

import (
	"strconv"
	"strings"
)

// ParseClock reads the hour and minute out of an "HH:MM" or "HH:MM:SS" string.
// A leading "YYYY-MM-DDT" or "YYYY-MM-DD " date part is ignored.
func ParseClock(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) > 11 && (s[10] == 'T' || s[10] == ' ') {
		s = s[11:]
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// AtOrAfter reports whether the clock time hour:minute is at or after the
// threshold th:tm.
func AtOrAfter(hour, minute, th, tm int) bool {
	return hour > th || (hour == th && minute >= tm)
}
