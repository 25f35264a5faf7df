// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package places

import (
	"testing"

	"github.com/tomtom215/sendero/internal/models"
)

func TestParseOSMOpeningHours(t *testing.T) {
	t.Parallel()

	weekdays := models.DayHours{Open: "09:00", Close: "17:00"}

	tests := []struct {
		name  string
		value string
		want  models.OpeningHours
	}{
		{"empty", "", nil},
		{"always open", "24/7", models.OpeningHours{
			"monday": {Open: "00:00", Close: "24:00"}, "tuesday": {Open: "00:00", Close: "24:00"},
			"wednesday": {Open: "00:00", Close: "24:00"}, "thursday": {Open: "00:00", Close: "24:00"},
			"friday": {Open: "00:00", Close: "24:00"}, "saturday": {Open: "00:00", Close: "24:00"},
			"sunday": {Open: "00:00", Close: "24:00"},
		}},
		{"weekday range", "Mo-Fr 09:00-17:00", models.OpeningHours{
			"monday": weekdays, "tuesday": weekdays, "wednesday": weekdays,
			"thursday": weekdays, "friday": weekdays,
		}},
		{"day list and off", "Mo,We 10:00-14:00; Tu off", models.OpeningHours{
			"monday":    {Open: "10:00", Close: "14:00"},
			"wednesday": {Open: "10:00", Close: "14:00"},
		}},
		{"wrapping range", "Sa-Mo 11:00-15:00", models.OpeningHours{
			"saturday": {Open: "11:00", Close: "15:00"},
			"sunday":   {Open: "11:00", Close: "15:00"},
			"monday":   {Open: "11:00", Close: "15:00"},
		}},
		{"split shift collapses", "Tu 09:00-14:00,17:00-20:30", models.OpeningHours{
			"tuesday": {Open: "09:00", Close: "20:30"},
		}},
		{"later rule overrides", "Mo-Su 10:00-20:00; Mo off", models.OpeningHours{
			"tuesday": {Open: "10:00", Close: "20:00"}, "wednesday": {Open: "10:00", Close: "20:00"},
			"thursday": {Open: "10:00", Close: "20:00"}, "friday": {Open: "10:00", Close: "20:00"},
			"saturday": {Open: "10:00", Close: "20:00"}, "sunday": {Open: "10:00", Close: "20:00"},
		}},
		{"unsupported syntax", "sunrise-sunset", nil},
		{"unknown day", "Xx 09:00-10:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseOSMOpeningHours(tt.value)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseOSMOpeningHours(%q) = %v, want %v", tt.value, got, tt.want)
			}
			for day, want := range tt.want {
				if got[day] != want {
					t.Errorf("%s = %+v, want %+v", day, got[day], want)
				}
			}
		})
	}
}
