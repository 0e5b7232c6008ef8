package subtitle

import (
	"regexp"
	"testing"
)

func TestFormatSRTTimestamp(t *testing.T) {
	cases := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00,000"},
		{"sub-second", 0.25, "00:00:00,250"},
		{"one hour one minute one second", 3661.5, "01:01:01,500"},
		{"millis truncated not rounded", 1.9996, "00:00:01,999"},
		{"just under a minute", 59.999, "00:00:59,999"},
		{"hours grow past two digits", 360000.25, "100:00:00,250"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FormatSRTTimestamp(c.seconds)
			if got != c.want {
				t.Fatalf("FormatSRTTimestamp(%v) = %q; want %q", c.seconds, got, c.want)
			}
		})
	}
}

func TestFormatSRTTimestampShape(t *testing.T) {
	shape := regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3}$`)
	for _, s := range []float64{0, 0.001, 1, 59.94, 3599.5, 86399.999} {
		got := FormatSRTTimestamp(s)
		if !shape.MatchString(got) {
			t.Fatalf("FormatSRTTimestamp(%v) = %q; does not match HH:MM:SS,mmm", s, got)
		}
	}
}

func TestFormatVTTTimestamp(t *testing.T) {
	if got, want := FormatVTTTimestamp(3661.5), "01:01:01.500"; got != want {
		t.Fatalf("FormatVTTTimestamp(3661.5) = %q; want %q", got, want)
	}
}
