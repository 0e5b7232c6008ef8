package types

// Job result statuses.
const (
	StatusDone  = "done"
	StatusError = "error"
)

// Segment is one timed unit of transcribed speech, ordered by start offset.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// JobInput is the inner payload of a job envelope. Storage fields are
// optional; missing values fall back to environment-injected secrets.
type JobInput struct {
	YouTubeURL    string `json:"youtube_url"`
	RequestID     string `json:"request_id,omitempty"`
	Language      string `json:"language,omitempty"`
	S3Bucket      string `json:"s3_bucket,omitempty"`
	S3KeyPrefix   string `json:"s3_key_prefix,omitempty"`
	S3EndpointURL string `json:"s3_endpoint_url,omitempty"`
	AWSAccessKey  string `json:"aws_access_key,omitempty"`
	AWSSecretKey  string `json:"aws_secret_key,omitempty"`
}

// JobEnvelope is the wire format the host runtime delivers a job in.
type JobEnvelope struct {
	Input JobInput `json:"input"`
}

// JobResult is the single externally observed artifact of a job run besides
// the uploaded objects. Status is always "done" or "error".
type JobResult struct {
	Status     string `json:"status"`
	RequestID  string `json:"request_id"`
	Language   string `json:"language,omitempty"`
	SRTPath    string `json:"srt_path,omitempty"`
	SRTKey     string `json:"srt_key,omitempty"`
	SRTBucket  string `json:"srt_bucket,omitempty"`
	RawVTTKey  string `json:"raw_vtt_key,omitempty"`
	RawVTTPath string `json:"raw_vtt_path,omitempty"`
	Error      string `json:"error,omitempty"`
}
