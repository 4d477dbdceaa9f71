package pkg

import (
	"testing"
	"time"
)

func TestFormatDurationCompact(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{-time.Second, "0s"},
		{500 * time.Microsecond, "<1ms"},
		{450 * time.Millisecond, "450ms"},
		{time.Second, "1s"},
		{83 * time.Second, "1m23s"},
		{time.Hour + 5*time.Minute + 3*time.Second, "1h5m"},
		{25 * time.Hour, "1d1h"},
	}
	for _, tc := range cases {
		if got := FormatDurationCompact(tc.in); got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.in, got, tc.want)
		}
	}
}
