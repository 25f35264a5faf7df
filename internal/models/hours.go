// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayHours is the opening window of a single weekday in local "HH:MM" time.
type DayHours struct {
	Open  string `json:"open" validate:"hhmm"`
	Close string `json:"close" validate:"hhmm"`
}

// OpeningHours maps lowercase English weekday names ("monday") to their hours.
// A missing weekday means the place is closed that day.
type OpeningHours map[string]DayHours

// WeekdayKey returns the OpeningHours key for a weekday.
func WeekdayKey(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// For returns the hours for day, if any.
func (h OpeningHours) For(day time.Weekday) (DayHours, bool) {
	if h == nil {
		return DayHours{}, false
	}
	hours, ok := h[WeekdayKey(day)]
	return hours, ok
}

// ParseClock converts "HH:MM" to minutes after midnight.
func ParseClock(s string) (int, error) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h == 24 && m != 0 {
		return 0, fmt.Errorf("invalid clock %q: past 24:00", s)
	}
	return h*60 + m, nil
}

// FormatClock renders t as "HH:MM".
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MinuteOfDay returns the minutes elapsed since local midnight for t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Contains reports whether minute lies within the window. The window is
// half-open [open, close) unless closeInclusive is set. Malformed hours
// never contain anything.
func (d DayHours) Contains(minute int, closeInclusive bool) bool {
	openAt, err := ParseClock(d.Open)
	if err != nil {
		return false
	}
	closeAt, err := ParseClock(d.Close)
	if err != nil {
		return false
	}
	if minute < openAt {
		return false
	}
	if closeInclusive {
		return minute <= closeAt
	}
	return minute < closeAt
}
