package acquire

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestAcquirePrimarySuccess(t *testing.T) {
	workdir := t.TempDir()
	downloads := 0

	a := &Acquirer{
		ytdlpBinary:  "yt-dlp",
		ffmpegBinary: "ffmpeg",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			if name != "yt-dlp" {
				t.Fatalf("unexpected command %q", name)
			}
			writeFile(t, filepath.Join(workdir, "My Video.mp3"))
			return nil, nil
		},
		download: func(ctx context.Context, url, workdir string) (string, error) {
			downloads++
			return "", errors.New("should not be called")
		},
	}

	path, err := a.Acquire(context.Background(), "https://youtu.be/dQw4w9WgXcQ", workdir)
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if filepath.Base(path) != "My Video.mp3" {
		t.Fatalf("Acquire = %q; want the downloaded mp3", path)
	}
	if downloads != 0 {
		t.Fatalf("secondary method attempted %d times after primary success", downloads)
	}
}

func TestAcquireFallsBackOnAmbiguousOutput(t *testing.T) {
	cases := []struct {
		name  string
		files []string
	}{
		{"no output file", nil},
		{"more than one output file", []string{"a.mp3", "b.mp3"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			workdir := t.TempDir()
			downloads := 0

			a := &Acquirer{
				ytdlpBinary:  "yt-dlp",
				ffmpegBinary: "ffmpeg",
				run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
					switch name {
					case "yt-dlp":
						for _, f := range c.files {
							writeFile(t, filepath.Join(workdir, f))
						}
						return nil, nil
					case "ffmpeg":
						writeFile(t, filepath.Join(workdir, "audio.mp3"))
						return nil, nil
					}
					t.Fatalf("unexpected command %q", name)
					return nil, nil
				},
				download: func(ctx context.Context, url, wd string) (string, error) {
					downloads++
					src := filepath.Join(wd, "source.webm")
					writeFile(t, src)
					return src, nil
				},
			}

			path, err := a.Acquire(context.Background(), "https://youtu.be/dQw4w9WgXcQ", workdir)
			if err != nil {
				t.Fatalf("Acquire error: %v", err)
			}
			if filepath.Base(path) != "audio.mp3" {
				t.Fatalf("Acquire = %q; want transcoded audio.mp3", path)
			}
			if downloads != 1 {
				t.Fatalf("secondary method attempted %d times; want exactly 1", downloads)
			}
		})
	}
}

func TestAcquireSecondaryRemovesIntermediate(t *testing.T) {
	workdir := t.TempDir()

	a := &Acquirer{
		ytdlpBinary:  "yt-dlp",
		ffmpegBinary: "ffmpeg",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			switch name {
			case "yt-dlp":
				return []byte("403 forbidden"), errors.New("exit status 1")
			case "ffmpeg":
				writeFile(t, filepath.Join(workdir, "audio.mp3"))
				return nil, nil
			}
			return nil, nil
		},
		download: func(ctx context.Context, url, wd string) (string, error) {
			src := filepath.Join(wd, "source.webm")
			writeFile(t, src)
			return src, nil
		},
	}

	if _, err := a.Acquire(context.Background(), "https://youtu.be/dQw4w9WgXcQ", workdir); err != nil {
		t.Fatalf("Acquire error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(workdir, "source.webm")); !os.IsNotExist(err) {
		t.Fatalf("intermediate source.webm still exists after transcode")
	}
}

func TestAcquireReencodesWhenTranscoderFails(t *testing.T) {
	workdir := t.TempDir()
	reencoded := 0

	a := &Acquirer{
		ytdlpBinary:  "yt-dlp",
		ffmpegBinary: "ffmpeg",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			switch name {
			case "yt-dlp":
				return nil, errors.New("exit status 1")
			case "ffmpeg":
				return []byte("unsupported codec"), errors.New("exit status 1")
			}
			return nil, nil
		},
		download: func(ctx context.Context, url, wd string) (string, error) {
			src := filepath.Join(wd, "source.webm")
			writeFile(t, src)
			return src, nil
		},
		reencode: func(inPath, outPath string) error {
			reencoded++
			writeFile(t, outPath)
			return nil
		},
	}

	path, err := a.Acquire(context.Background(), "https://youtu.be/dQw4w9WgXcQ", workdir)
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if filepath.Base(path) != "audio.mp3" {
		t.Fatalf("Acquire = %q; want re-encoded audio.mp3", path)
	}
	if reencoded != 1 {
		t.Fatalf("in-process re-encode ran %d times; want 1", reencoded)
	}
}

func TestAcquireBothMethodsFail(t *testing.T) {
	workdir := t.TempDir()

	a := &Acquirer{
		ytdlpBinary:  "yt-dlp",
		ffmpegBinary: "ffmpeg",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("video unavailable"), errors.New("exit status 1")
		},
		download: func(ctx context.Context, url, wd string) (string, error) {
			return "", errors.New("no audio-only stream available")
		},
	}

	_, err := a.Acquire(context.Background(), "https://youtu.be/dQw4w9WgXcQ", workdir)
	if err == nil {
		t.Fatal("Acquire succeeded; want failure")
	}

	var acqErr *Error
	if !errors.As(err, &acqErr) {
		t.Fatalf("error type %T; want *acquire.Error", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "video unavailable") || !strings.Contains(msg, "no audio-only stream available") {
		t.Fatalf("error missing one of the method failures: %q", msg)
	}
}
