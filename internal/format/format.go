package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatMicroseconds formats a duration expressed in microseconds with two
// decimal places, the unit used throughout the benchmark report.
//
// Parameters:
//   - us: The duration in microseconds.
//
// Returns:
//   - string: A formatted string such as "154.21µs".
func FormatMicroseconds(us float64) string {
	return fmt.Sprintf("%.2fµs", us)
}

// FormatBytes formats a byte count using binary units (KiB, MiB, GiB).
//
// Parameters:
//   - b: The byte count.
//
// Returns:
//   - string: A human-readable size string.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
