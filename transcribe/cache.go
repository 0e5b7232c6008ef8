package transcribe

import (
	"fmt"
	"log"
	"os/exec"
	"sync"
)

// Model is a loaded handle on the speech-recognition capability: the model
// name plus the resolved binary that serves it.
type Model struct {
	Name   string
	Binary string
}

// ModelCache keeps the most recently loaded model. The loader runs once per
// key; requesting a different key replaces the cached entry. Guarded by a
// mutex so concurrent job dispatch stays safe.
type ModelCache struct {
	mu     sync.Mutex
	loader func(name string) (*Model, error)
	name   string
	model  *Model
}

// NewModelCache constructs a cache. A nil loader uses the whisper CLI
// resolver.
func NewModelCache(loader func(name string) (*Model, error)) *ModelCache {
	if loader == nil {
		loader = loadWhisperModel
	}
	return &ModelCache{loader: loader}
}

// GetOrLoad returns the cached model when the key matches, loading and
// replacing it otherwise.
func (c *ModelCache) GetOrLoad(name string) (*Model, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model != nil && c.name == name {
		return c.model, nil
	}

	log.Printf("Loading whisper model: %s", name)
	m, err := c.loader(name)
	if err != nil {
		return nil, err
	}
	c.name = name
	c.model = m
	return m, nil
}

// loadWhisperModel resolves the whisper binary once; the model weights
// themselves live with the CLI and stay warm across its invocations.
func loadWhisperModel(name string) (*Model, error) {
	bin, err := exec.LookPath("whisper")
	if err != nil {
		return nil, fmt.Errorf("whisper binary not found: %w", err)
	}
	return &Model{Name: name, Binary: bin}, nil
}
