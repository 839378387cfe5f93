package tables

import (
	"strconv"
)

const minTimestampLength = 22

// FormatTime turns an ISO-8601 timestamp with a numeric UTC offset, such as
// 2024-01-01T23:15:00-05:00, into a 12-hour H:MM string.
//
// The offset is applied to the hour only and the minutes are kept verbatim.
// Hours and offsets are limited to 0-23, so the adjusted hour is always in
// [-23, 46] before it is folded into 1-12.
func FormatTime(timestamp string) (string, error) {
	if len(timestamp) < minTimestampLength {
		return "", &FormatError{Timestamp: timestamp, Reason: "too short"}
	}

	hour, err := twoDigits(timestamp[11:13])
	if err != nil || hour > 23 {
		return "", &FormatError{Timestamp: timestamp, Reason: "invalid hour"}
	}

	minutes := timestamp[14:16]
	if m, err := twoDigits(minutes); err != nil || m > 59 {
		return "", &FormatError{Timestamp: timestamp, Reason: "invalid minutes"}
	}

	sign := timestamp[19]
	if sign != '+' && sign != '-' {
		return "", &FormatError{Timestamp: timestamp, Reason: "missing offset sign"}
	}

	offset, err := twoDigits(timestamp[20:22])
	if err != nil || offset > 23 {
		return "", &FormatError{Timestamp: timestamp, Reason: "invalid offset"}
	}

	if sign == '-' {
		hour -= offset
	} else {
		hour += offset
	}

	return strconv.Itoa(twelveHour(hour)) + ":" + minutes, nil
}

func twelveHour(hour int) int {
	h := ((hour % 12) + 12) % 12
	if h == 0 {
		return 12
	}
	return h
}

func twoDigits(s string) (int, error) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, strconv.ErrSyntax
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}
