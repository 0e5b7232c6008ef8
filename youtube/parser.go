// Package youtube extracts canonical video identifiers from reference URLs.
package youtube

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidReference means the URL matches neither recognized shape. There
// is no fallback parsing strategy; this is fatal for a job.
var ErrInvalidReference = errors.New("invalid youtube reference")

// The two recognized URL shapes: watch?v=<id> and youtu.be/<id>, each with an
// 11-character identifier.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`v=([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID pulls the canonical video id out of a reference URL.
func ExtractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReference, url)
}
