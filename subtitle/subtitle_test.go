package subtitle

import (
	"strings"
	"testing"

	"ytscribe/types"
)

func TestRenderSRT(t *testing.T) {
	segments := []types.Segment{
		{Start: 0.0, End: 1.5, Text: " hi "},
		{Start: 1.5, End: 3.0, Text: "there"},
	}

	want := "1\n00:00:00,000 --> 00:00:01,500\nhi\n" +
		"\n" +
		"2\n00:00:01,500 --> 00:00:03,000\nthere\n"

	got := RenderSRT(segments)
	if got != want {
		t.Fatalf("RenderSRT = %q; want %q", got, want)
	}
}

func TestRenderSRTCueCountMatchesSegments(t *testing.T) {
	segments := []types.Segment{
		{Start: 0, End: 1, Text: "a"},
		{Start: 1, End: 2, Text: "b"},
		{Start: 2, End: 3, Text: "c"},
	}

	got := RenderSRT(segments)
	if n := strings.Count(got, "-->"); n != len(segments) {
		t.Fatalf("rendered %d cues; want %d", n, len(segments))
	}
}

func TestRenderSRTIsPure(t *testing.T) {
	segments := []types.Segment{{Start: 0, End: 1.5, Text: "hi"}}
	first := RenderSRT(segments)
	second := RenderSRT(segments)
	if first != second {
		t.Fatalf("RenderSRT not deterministic: %q vs %q", first, second)
	}
}

func TestToWebVTT(t *testing.T) {
	srt := RenderSRT([]types.Segment{
		{Start: 0.0, End: 1.5, Text: "hi"},
		{Start: 1.5, End: 3.0, Text: "there"},
	})

	vtt := ToWebVTT(srt)

	if !strings.HasPrefix(vtt, "WEBVTT\n\n\n") {
		t.Fatalf("ToWebVTT output does not start with header: %q", vtt[:20])
	}
	if !strings.Contains(vtt, "00:00:00.000 --> 00:00:01.500") {
		t.Fatalf("timing line not rewritten to periods:\n%s", vtt)
	}
	if strings.Contains(vtt, ",") {
		t.Fatalf("rewritten timing lines still contain commas:\n%s", vtt)
	}
	if got, want := strings.Count(vtt, "-->"), strings.Count(srt, "-->"); got != want {
		t.Fatalf("vtt has %d cues; srt has %d", got, want)
	}
}

func TestToWebVTTLeavesTextCommasAlone(t *testing.T) {
	srt := RenderSRT([]types.Segment{{Start: 0, End: 1, Text: "well, hello"}})

	vtt := ToWebVTT(srt)
	if !strings.Contains(vtt, "well, hello") {
		t.Fatalf("cue text comma was rewritten:\n%s", vtt)
	}
}

func TestToWebVTTPreservesBlankLines(t *testing.T) {
	srt := RenderSRT([]types.Segment{
		{Start: 0, End: 1, Text: "a"},
		{Start: 1, End: 2, Text: "b"},
	})

	vtt := ToWebVTT(srt)
	if !strings.Contains(vtt, "a\n\n2\n") {
		t.Fatalf("blank separator between cues lost:\n%s", vtt)
	}
}
