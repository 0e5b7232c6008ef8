// Package subtitle renders transcription segments as SRT text and converts
// it to WebVTT.
package subtitle

import (
	"fmt"
	"strings"

	"ytscribe/types"
)

// WebVTTHeader is the marker line that opens every WebVTT file.
const WebVTTHeader = "WEBVTT"

const timingArrow = " --> "

// RenderSRT converts timed segments into SRT subtitle text. Cues are numbered
// from 1 in input order, one cue per segment, with the segment text trimmed
// of surrounding whitespace.
func RenderSRT(segments []types.Segment) string {
	blocks := make([]string, 0, len(segments))
	for i, seg := range segments {
		blocks = append(blocks, fmt.Sprintf("%d\n%s%s%s\n%s\n",
			i+1,
			FormatSRTTimestamp(seg.Start),
			timingArrow,
			FormatSRTTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		))
	}
	return strings.Join(blocks, "\n")
}

// ToWebVTT rewrites SRT text as WebVTT: the header marker plus two blank
// lines, then the SRT body with commas on timing lines turned into periods.
// Cue numbers and text lines pass through verbatim, so commas inside cue text
// are never touched. Assumes SRT timing lines carry no commas beyond the
// millisecond separators, which RenderSRT guarantees.
func ToWebVTT(srt string) string {
	lines := strings.Split(srt, "\n")
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			lines[i] = strings.ReplaceAll(line, ",", ".")
		}
	}
	return WebVTTHeader + "\n\n\n" + strings.Join(lines, "\n")
}
