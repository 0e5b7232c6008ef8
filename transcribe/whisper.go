package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ytscribe/types"
)

// WhisperCLI shells out to the whisper command line and parses its JSON
// output into segments.
type WhisperCLI struct {
	modelName string
	models    *ModelCache
	run       func(ctx context.Context, name string, args ...string) error
}

// NewWhisperCLI constructs the transcriber for the given model name.
func NewWhisperCLI(modelName string, models *ModelCache) *WhisperCLI {
	return &WhisperCLI{
		modelName: modelName,
		models:    models,
		run:       runWhisper,
	}
}

// Transcribe runs whisper on audioPath, writing its JSON next to the audio
// file, and returns the parsed segments.
func (w *WhisperCLI) Transcribe(ctx context.Context, audioPath, language string) ([]types.Segment, error) {
	model, err := w.models.GetOrLoad(w.modelName)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Dir(audioPath)
	args := []string{
		audioPath,
		"--model", model.Name,
		"--language", language,
		"--output_format", "json",
		"--output_dir", outputDir,
		"--fp16", "True",
	}
	if err := w.run(ctx, model.Binary, args...); err != nil {
		return nil, fmt.Errorf("whisper: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	return loadSegments(filepath.Join(outputDir, base+".json"))
}

func runWhisper(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// whisperPayload is the JSON structure whisper writes.
type whisperPayload struct {
	Segments []types.Segment `json:"segments"`
}

func loadSegments(jsonPath string) ([]types.Segment, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisper json: %w", err)
	}
	return payload.Segments, nil
}
