// Package journal persists per-call audit records as JSON files. It is an
// operator-facing trace of what was generated, not a result store: callers
// still own the generated artifacts.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// GenerationRecord captures one homepage generation call for audit.
type GenerationRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Sequence     int       `json:"sequence"`
	GenerationID string    `json:"generation_id,omitempty"`
	BusinessName string    `json:"business_name"`
	Industry     string    `json:"industry,omitempty"`
	Style        string    `json:"style,omitempty"`
	PromptDigest string    `json:"prompt_digest,omitempty"`
	Features     []string  `json:"features,omitempty"`
	DurationMs   int64     `json:"duration_ms,omitempty"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// Writer persists generation records to a directory, one JSON file per call.
type Writer struct {
	dir   string
	mu    sync.Mutex
	seq   int
	nowFn func() time.Time
}

// NewWriter constructs a journal writer rooted at dir.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "journal"
	}
	_ = os.MkdirAll(dir, 0o755)
	return &Writer{dir: dir, nowFn: time.Now}
}

// WriteGeneration writes one record to a timestamped JSON file and returns
// its path.
func (w *Writer) WriteGeneration(rec *GenerationRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("journal: nil record")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}
	w.seq++
	rec.Sequence = w.seq

	name := fmt.Sprintf("generation_%s_%05d.json", rec.Timestamp.UTC().Format("20060102_150405"), w.seq)
	path := filepath.Join(w.dir, name)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
