// Package acquire downloads a video's audio track into a job's working
// directory, trying a bulk downloader first and a direct stream download
// second.
package acquire

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ytscribe/config"
)

// Error reports that every download strategy failed. It keeps each method's
// last error so the job result can show both.
type Error struct {
	Primary   error
	Secondary error
}

func (e *Error) Error() string {
	return fmt.Sprintf("audio acquisition failed: yt-dlp: %v; stream download: %v", e.Primary, e.Secondary)
}

// commandRunner abstracts process execution for testability.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Acquirer produces exactly one mp3 file per call inside the caller's
// working directory.
type Acquirer struct {
	ytdlpBinary  string
	ffmpegBinary string
	run          commandRunner
	download     func(ctx context.Context, url, workdir string) (string, error)
	reencode     func(inPath, outPath string) error
}

// New constructs the production acquirer.
func New() *Acquirer {
	a := &Acquirer{
		ytdlpBinary:  "yt-dlp",
		ffmpegBinary: "ffmpeg",
		run:          runCommand,
		reencode:     reencodeWithLibrary,
	}
	a.download = downloadAudioStream
	return a
}

// Acquire downloads the audio for url into workdir and returns the mp3 path.
// The primary method's failure is logged and recovered via the secondary
// method; only exhausting both surfaces an error.
func (a *Acquirer) Acquire(ctx context.Context, url, workdir string) (string, error) {
	path, primaryErr := a.acquirePrimary(ctx, url, workdir)
	if primaryErr == nil {
		return path, nil
	}
	log.Printf("yt-dlp download failed, falling back to stream download: %v", primaryErr)

	path, secondaryErr := a.acquireSecondary(ctx, url, workdir)
	if secondaryErr == nil {
		return path, nil
	}
	return "", &Error{Primary: primaryErr, Secondary: secondaryErr}
}

// acquirePrimary shells out to yt-dlp with audio extraction enabled. The
// download must leave exactly one mp3 in workdir; zero or several count as
// failure because the output cannot be identified.
func (a *Acquirer) acquirePrimary(ctx context.Context, url, workdir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.PrimaryDownloadTimeout)
	defer cancel()

	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", config.AudioQuality,
		"-o", filepath.Join(workdir, "%(title)s.%(ext)s"),
		url,
	}
	if out, err := a.run(ctx, a.ytdlpBinary, args...); err != nil {
		return "", fmt.Errorf("yt-dlp: %w: %s", err, strings.TrimSpace(string(out)))
	}

	matches, err := filepath.Glob(filepath.Join(workdir, "*.mp3"))
	if err != nil {
		return "", fmt.Errorf("scan for downloaded audio: %w", err)
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("expected one mp3 after download, found %d", len(matches))
	}
	return matches[0], nil
}

// acquireSecondary downloads the best audio-only stream directly and
// transcodes it to mp3. The non-mp3 source file must not outlive a
// successful transcode.
func (a *Acquirer) acquireSecondary(ctx context.Context, url, workdir string) (string, error) {
	srcPath, err := a.download(ctx, url, workdir)
	if err != nil {
		return "", fmt.Errorf("stream download: %w", err)
	}

	outPath := filepath.Join(workdir, "audio.mp3")
	if err := a.transcode(ctx, srcPath, outPath); err != nil {
		log.Printf("ffmpeg transcode failed, re-encoding in process: %v", err)
		if err := a.reencode(srcPath, outPath); err != nil {
			return "", fmt.Errorf("transcode %s: %w", filepath.Base(srcPath), err)
		}
	}

	if err := os.Remove(srcPath); err != nil {
		return "", fmt.Errorf("remove intermediate %s: %w", filepath.Base(srcPath), err)
	}
	return outPath, nil
}

func (a *Acquirer) transcode(ctx context.Context, inPath, outPath string) error {
	ctx, cancel := context.WithTimeout(ctx, config.TranscodeTimeout)
	defer cancel()

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", inPath,
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", config.AudioBitrate,
		outPath,
	}
	if out, err := a.run(ctx, a.ffmpegBinary, args...); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
