// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package logging

import "testing"

func TestRedactDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"empty", "", ""},
		{
			name: "url with password",
			dsn:  "postgres://sendero:s3cret@db:5432/sendero?sslmode=disable",
			want: "postgres://sendero:***@db:5432/sendero?sslmode=disable",
		},
		{
			name: "url without password",
			dsn:  "postgres://sendero@db:5432/sendero",
			want: "postgres://sendero@db:5432/sendero",
		},
		{
			name: "password in query",
			dsn:  "postgres://db/sendero?password=s3cret",
			want: "postgres://db/sendero?password=***",
		},
		{
			name: "key value",
			dsn:  "host=db user=sendero password=s3cret dbname=sendero",
			want: "host=db user=sendero password=*** dbname=sendero",
		},
		{
			name: "key value quoted",
			dsn:  "host=db password='with space' dbname=sendero",
			want: "host=db password=*** dbname=sendero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RedactDSN(tt.dsn); got != tt.want {
				t.Errorf("RedactDSN(%q) = %q, want %q", tt.dsn, got, tt.want)
			}
		})
	}
}
