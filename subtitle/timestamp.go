package subtitle

import (
	"fmt"
	"strings"
)

// FormatSRTTimestamp renders a non-negative offset in seconds as an SRT
// timestamp (HH:MM:SS,mmm). Milliseconds are truncated rather than rounded,
// and the hours field grows past two digits instead of wrapping at 24.
func FormatSRTTimestamp(seconds float64) string {
	whole := int(seconds)
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60
	millis := int((seconds - float64(whole)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// FormatVTTTimestamp renders the WebVTT dialect of the same timestamp. The
// two encodings differ only in the millisecond separator.
func FormatVTTTimestamp(seconds float64) string {
	return strings.ReplaceAll(FormatSRTTimestamp(seconds), ",", ".")
}
