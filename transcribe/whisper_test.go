package transcribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWhisperCLITranscribe(t *testing.T) {
	workdir := t.TempDir()
	audioPath := filepath.Join(workdir, "audio.mp3")
	if err := os.WriteFile(audioPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewModelCache(func(name string) (*Model, error) {
		return &Model{Name: name, Binary: "whisper"}, nil
	})

	w := NewWhisperCLI("base", cache)
	var gotArgs []string
	w.run = func(ctx context.Context, name string, args ...string) error {
		gotArgs = args
		payload := `{"segments":[{"start":0,"end":1.5,"text":" hi "},{"start":1.5,"end":3,"text":"there"}]}`
		return os.WriteFile(filepath.Join(workdir, "audio.json"), []byte(payload), 0o644)
	}

	segments, err := w.Transcribe(context.Background(), audioPath, "en")
	if err != nil {
		t.Fatalf("Transcribe error: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("got %d segments; want 2", len(segments))
	}
	if segments[0].End != 1.5 || segments[1].Text != "there" {
		t.Fatalf("segments parsed wrong: %+v", segments)
	}

	wantPairs := map[string]string{
		"--model":         "base",
		"--language":      "en",
		"--output_format": "json",
	}
	for flag, want := range wantPairs {
		found := false
		for i, a := range gotArgs {
			if a == flag && i+1 < len(gotArgs) && gotArgs[i+1] == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("args missing %s %s: %v", flag, want, gotArgs)
		}
	}
}

func TestWhisperCLITranscribeCommandFailure(t *testing.T) {
	cache := NewModelCache(func(name string) (*Model, error) {
		return &Model{Name: name, Binary: "whisper"}, nil
	})

	w := NewWhisperCLI("base", cache)
	w.run = func(ctx context.Context, name string, args ...string) error {
		return errors.New("exit status 1")
	}

	if _, err := w.Transcribe(context.Background(), filepath.Join(t.TempDir(), "audio.mp3"), "en"); err == nil {
		t.Fatal("Transcribe succeeded; want failure")
	}
}
