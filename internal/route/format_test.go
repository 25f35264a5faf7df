// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package route

import "testing"

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0 min"},
		{45, "45 min"},
		{60, "1 h"},
		{90, "1 h 30 min"},
		{120, "2 h"},
		{125, "2 h 5 min"},
		{59.6, "1 h"},
		{-5, "0 min"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
