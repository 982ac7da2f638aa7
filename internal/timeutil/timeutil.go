// Package timeutil provides the time formatting and frame quantization
// helpers shared by the recorder display and the timeline serializer.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInAnHour   = 3600
	secondsInAMinute  = 60
	millisecondsInSec = 1000
)

// FormatTime formats a seconds value as HH:MM:SS.mmm. Hours are not
// clamped to 24. Milliseconds are truncated, never rounded, so the value
// shown on screen matches the one written into exported timelines.
func FormatTime(seconds float64) string {
	hours := int(seconds) / secondsInAnHour
	minutes := (int(seconds) % secondsInAnHour) / secondsInAMinute
	secs := int(seconds) % secondsInAMinute
	millis := int(math.Floor((seconds - math.Floor(seconds)) * millisecondsInSec))

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}

// FormatDuration formats a time.Duration as HH:MM:SS.mmm.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}

// ToFrames converts a seconds value to a frame count at the given frame
// rate. Conversion truncates toward zero: 0.999s at 30fps is frame 29.
func ToFrames(seconds float64, fps int) int {
	return int(seconds * float64(fps))
}

// ToKey converts a time value to an archive key.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}
