package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"ytscribe/config"
)

// downloadAudioStream fetches the highest-bitrate audio-only stream into
// workdir and returns the saved file's path. The container format is
// whatever the stream ships in; transcoding happens in the caller.
func downloadAudioStream(ctx context.Context, url, workdir string) (string, error) {
	client := youtube.Client{}
	video, err := client.GetVideoContext(ctx, url)
	if err != nil {
		return "", fmt.Errorf("resolve video: %w", err)
	}

	best := bestAudioFormat(video.Formats)
	if best == nil {
		return "", errors.New("no audio-only stream available")
	}

	stream, _, err := client.GetStreamContext(ctx, video, best)
	if err != nil {
		return "", fmt.Errorf("open stream: %w", err)
	}
	defer stream.Close()

	dest := filepath.Join(workdir, "source"+extensionForMime(best.MimeType))
	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, stream); err != nil {
		return "", fmt.Errorf("save stream: %w", err)
	}
	return dest, nil
}

// bestAudioFormat scans for the audio-only candidate with the highest
// bitrate.
func bestAudioFormat(formats youtube.FormatList) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		f := &formats[i]
		if !strings.HasPrefix(f.MimeType, "audio/") {
			continue
		}
		if best == nil || f.Bitrate > best.Bitrate {
			best = f
		}
	}
	return best
}

func extensionForMime(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "webm"):
		return ".webm"
	case strings.Contains(mimeType, "mp4"):
		return ".m4a"
	default:
		return ".audio"
	}
}

// reencodeWithLibrary converts the source through the ffmpeg-go bindings when
// the direct ffmpeg invocation fails.
func reencodeWithLibrary(inPath, outPath string) error {
	return ffmpeg.Input(inPath).
		Output(outPath, ffmpeg.KwArgs{
			"vn":  "",
			"c:a": "libmp3lame",
			"b:a": config.AudioBitrate,
		}).
		OverWriteOutput().
		Silent(true).
		Run()
}
