// Package transcribe wraps the external speech-recognition capability.
package transcribe

import (
	"context"

	"ytscribe/types"
)

// Transcriber turns an audio file into ordered timed segments. The call
// carries no deadline of its own; a caller that needs one sets it on the
// context.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) ([]types.Segment, error)
}
