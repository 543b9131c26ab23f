package format

import (
	"testing"
	"time"
)

// TestFormatExecutionDuration tests the adaptive duration formatting.
func TestFormatExecutionDuration(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds", 2 * time.Second, "2s"},
		{"sub-microsecond", 400 * time.Nanosecond, "0µs"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tc.d); got != tc.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}

// TestFormatMicroseconds tests the report unit formatting.
func TestFormatMicroseconds(t *testing.T) {
	if got := FormatMicroseconds(154.214); got != "154.21µs" {
		t.Errorf("FormatMicroseconds(154.214) = %q, want %q", got, "154.21µs")
	}
}

// TestFormatBytes tests binary byte-count formatting.
func TestFormatBytes(t *testing.T) {
	cases := []struct {
		b    uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{8 * 1024 * 1024, "8.0 MiB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.b); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.b, got, tc.want)
		}
	}
}
