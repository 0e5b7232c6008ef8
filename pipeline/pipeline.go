// Package pipeline sequences one transcription job: acquire audio,
// transcribe, format subtitles, upload both dialects.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ytscribe/common"
	"ytscribe/config"
	"ytscribe/subtitle"
	"ytscribe/transcribe"
	"ytscribe/types"
	"ytscribe/youtube"
)

// Acquirer produces a local audio file for a video reference.
type Acquirer interface {
	Acquire(ctx context.Context, url, workdir string) (string, error)
}

// Uploader persists a local file to object storage.
type Uploader interface {
	Upload(ctx context.Context, bucket, key, filePath string) error
}

// UploaderFactory builds a storage client for one job's resolved target.
type UploaderFactory func(ctx context.Context, cfg common.S3Config) (Uploader, error)

// Handler runs one job from raw input to result envelope.
type Handler struct {
	acquirer    Acquirer
	transcriber transcribe.Transcriber
	env         config.Storage
	newUploader UploaderFactory
	mkdirTemp   func(dir, pattern string) (string, error)
	removeAll   func(path string) error
}

// NewHandler wires the production pipeline.
func NewHandler(acq Acquirer, tr transcribe.Transcriber, env config.Storage) *Handler {
	return &Handler{
		acquirer:    acq,
		transcriber: tr,
		env:         env,
		newUploader: func(ctx context.Context, cfg common.S3Config) (Uploader, error) {
			return common.NewS3(ctx, cfg)
		},
		mkdirTemp: os.MkdirTemp,
		removeAll: os.RemoveAll,
	}
}

// Run executes one job. It always returns a well-formed result: every
// failure mode is caught here and converted to a status "error" envelope.
// Validation failures produce no side effects; once the working directory
// exists it is removed on every exit path.
func (h *Handler) Run(ctx context.Context, input types.JobInput) types.JobResult {
	requestID := input.RequestID
	if requestID == "" {
		requestID = config.DefaultRequestID
	}
	language := input.Language
	if language == "" {
		language = config.DefaultLanguage
	}

	if input.YouTubeURL == "" {
		return failure(requestID, "Missing required input: youtube_url")
	}

	bucket := firstNonEmpty(input.S3Bucket, h.env.Bucket)
	if bucket == "" {
		return failure(requestID, "S3 bucket not configured")
	}
	keyPrefix := input.S3KeyPrefix
	if keyPrefix == "" {
		keyPrefix = config.DefaultKeyPrefix
	}
	storageCfg := common.S3Config{
		EndpointURL: firstNonEmpty(input.S3EndpointURL, h.env.EndpointURL),
		AccessKey:   firstNonEmpty(input.AWSAccessKey, h.env.AccessKey),
		SecretKey:   firstNonEmpty(input.AWSSecretKey, h.env.SecretKey),
	}

	workdir, err := h.mkdirTemp("", "ytscribe-*")
	if err != nil {
		return failure(requestID, fmt.Sprintf("create working directory: %v", err))
	}
	defer func() {
		if err := h.removeAll(workdir); err != nil {
			log.Printf("[%s] cleanup %s: %v", requestID, workdir, err)
		}
	}()

	log.Printf("[%s] Downloading audio from %s", requestID, input.YouTubeURL)
	audioPath, err := h.acquirer.Acquire(ctx, input.YouTubeURL, workdir)
	if err != nil {
		return failure(requestID, err.Error())
	}

	log.Printf("[%s] Transcribing %s (language=%s)", requestID, filepath.Base(audioPath), language)
	segments, err := h.transcriber.Transcribe(ctx, audioPath, language)
	if err != nil {
		return failure(requestID, fmt.Sprintf("transcription failed: %v", err))
	}

	videoID, err := youtube.ExtractVideoID(input.YouTubeURL)
	if err != nil {
		return failure(requestID, err.Error())
	}

	srtContent := subtitle.RenderSRT(segments)
	vttContent := subtitle.ToWebVTT(srtContent)

	srtFile := filepath.Join(workdir, requestID+".srt")
	if err := os.WriteFile(srtFile, []byte(srtContent), 0o644); err != nil {
		return failure(requestID, fmt.Sprintf("write srt: %v", err))
	}
	vttFile := filepath.Join(workdir, videoID+"."+language+".vtt")
	if err := os.WriteFile(vttFile, []byte(vttContent), 0o644); err != nil {
		return failure(requestID, fmt.Sprintf("write vtt: %v", err))
	}

	uploader, err := h.newUploader(ctx, storageCfg)
	if err != nil {
		return failure(requestID, fmt.Sprintf("storage client: %v", err))
	}

	srtKey := keyPrefix + requestID + ".srt"
	log.Printf("[%s] Uploading s3://%s/%s", requestID, bucket, srtKey)
	if err := uploader.Upload(ctx, bucket, srtKey, srtFile); err != nil {
		return failure(requestID, fmt.Sprintf("upload srt: %v", err))
	}

	// No rollback: a failure here leaves the srt object persisted while the
	// job still reports error.
	vttKey := "storage/raw/" + videoID + "." + language + ".vtt"
	log.Printf("[%s] Uploading s3://%s/%s", requestID, bucket, vttKey)
	if err := uploader.Upload(ctx, bucket, vttKey, vttFile); err != nil {
		return failure(requestID, fmt.Sprintf("upload vtt: %v", err))
	}

	return types.JobResult{
		Status:     types.StatusDone,
		RequestID:  requestID,
		Language:   language,
		SRTPath:    "s3://" + bucket + "/" + srtKey,
		SRTKey:     srtKey,
		SRTBucket:  bucket,
		RawVTTKey:  vttKey,
		RawVTTPath: "s3://" + bucket + "/" + vttKey,
	}
}

func failure(requestID, msg string) types.JobResult {
	return types.JobResult{Status: types.StatusError, RequestID: requestID, Error: msg}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
