// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"strings"
	"time"

	"github.com/tomtom215/sendero/internal/models"
)

var osmWeekdays = map[string]time.Weekday{
	"mo": time.Monday,
	"tu": time.Tuesday,
	"we": time.Wednesday,
	"th": time.Thursday,
	"fr": time.Friday,
	"sa": time.Saturday,
	"su": time.Sunday,
}

var allWeek = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ParseOSMOpeningHours converts the common subset of the OSM opening_hours
// syntax ("Mo-Fr 09:00-17:00; Sa 10:00-14:00; Su off", "24/7") to
// OpeningHours. Split shifts on one day collapse to the first opening and
// last closing time. Later rules override earlier ones. It returns nil when
// the value is empty or uses syntax outside the subset.
func ParseOSMOpeningHours(value string) models.OpeningHours {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if value == "24/7" {
		hours := make(models.OpeningHours, len(allWeek))
		for _, d := range allWeek {
			hours[models.WeekdayKey(d)] = models.DayHours{Open: "00:00", Close: "24:00"}
		}
		return hours
	}

	hours := models.OpeningHours{}
	for _, rule := range strings.Split(value, ";") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		days, times := allWeek, rule
		if first, rest, found := strings.Cut(rule, " "); found && !strings.Contains(first, ":") {
			parsed, ok := parseOSMDays(first)
			if !ok {
				return nil
			}
			days, times = parsed, strings.TrimSpace(rest)
		}

		lower := strings.ToLower(times)
		if lower == "off" || lower == "closed" {
			for _, d := range days {
				delete(hours, models.WeekdayKey(d))
			}
			continue
		}

		window, ok := parseOSMTimes(times)
		if !ok {
			return nil
		}
		for _, d := range days {
			hours[models.WeekdayKey(d)] = window
		}
	}

	if len(hours) == 0 {
		return nil
	}
	return hours
}

func parseOSMDays(spec string) ([]time.Weekday, bool) {
	var days []time.Weekday
	for _, item := range strings.Split(spec, ",") {
		from, to, isRange := strings.Cut(strings.ToLower(strings.TrimSpace(item)), "-")
		start, ok := osmWeekdays[from]
		if !ok {
			return nil, false
		}
		if !isRange {
			days = append(days, start)
			continue
		}
		end, ok := osmWeekdays[to]
		if !ok {
			return nil, false
		}
		for d := start; ; d = (d + 1) % 7 {
			days = append(days, d)
			if d == end {
				break
			}
		}
	}
	return days, len(days) > 0
}

func parseOSMTimes(spec string) (models.DayHours, bool) {
	ranges := strings.Split(spec, ",")
	openAt, _, ok := strings.Cut(strings.TrimSpace(ranges[0]), "-")
	if !ok {
		return models.DayHours{}, false
	}
	_, closeAt, ok := strings.Cut(strings.TrimSpace(ranges[len(ranges)-1]), "-")
	if !ok {
		return models.DayHours{}, false
	}
	window := models.DayHours{Open: strings.TrimSpace(openAt), Close: strings.TrimSpace(closeAt)}
	if _, err := models.ParseClock(window.Open); err != nil {
		return models.DayHours{}, false
	}
	if _, err := models.ParseClock(window.Close); err != nil {
		return models.DayHours{}, false
	}
	return window, true
}
