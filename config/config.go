package config

import (
	"os"
	"time"
)

const (
	// Acquisition limits
	PrimaryDownloadTimeout = 300 * time.Second
	TranscodeTimeout       = 120 * time.Second
	AudioQuality           = "192"
	AudioBitrate           = "192k"

	// Job defaults
	DefaultRequestID = "unknown"
	DefaultLanguage  = "en"
	DefaultKeyPrefix = "transcriptions/"

	// Transcription
	DefaultWhisperModel = "large"
)

// secretPrefix is the fixed env name prefix reserved for secrets injected by
// the host runtime.
const secretPrefix = "WORKER_SECRET_"

// Storage holds the environment-sourced storage target, used only for fields
// the job input leaves empty.
type Storage struct {
	Bucket      string
	EndpointURL string
	AccessKey   string
	SecretKey   string
}

// StorageFromEnv reads the injected storage secrets.
func StorageFromEnv() Storage {
	return Storage{
		Bucket:      os.Getenv(secretPrefix + "S3_BUCKET"),
		EndpointURL: os.Getenv(secretPrefix + "S3_ENDPOINT_URL"),
		AccessKey:   os.Getenv(secretPrefix + "AWS_ACCESS_KEY_ID"),
		SecretKey:   os.Getenv(secretPrefix + "AWS_SECRET_ACCESS_KEY"),
	}
}

// WhisperModel returns the speech-recognition model name to load.
func WhisperModel() string {
	if v := os.Getenv("WHISPER_MODEL"); v != "" {
		return v
	}
	return DefaultWhisperModel
}
