package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/trytobebee/snake_classic/pkg/config"
)

// StepRecord is one line of a recorded session
type StepRecord struct {
	Seq   int       `json:"seq"`
	Time  time.Time `json:"time"`
	Event string    `json:"event"` // "tick", "start", "direction", "reset", ...
	State GameState `json:"state"`
}

// GameRecorder handles asynchronous logging of game steps
type GameRecorder struct {
	path       string
	file       *os.File
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	dropped    atomic.Int64
	log        *zap.SugaredLogger
}

// NewRecorder creates a recorder that writes to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string, log *zap.SugaredLogger) (*GameRecorder, error) {
	if dir == "" {
		dir = config.RecordDir
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &GameRecorder{
		path:       path,
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan StepRecord, config.RecordBuffer),
		log:        log,
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the file the recorder writes to
func (r *GameRecorder) Path() string {
	return r.path
}

// RecordStep queues a record to be written. Non-blocking (drops if full).
func (r *GameRecorder) RecordStep(rec StepRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- rec:
	default:
		// Channel full, drop frame to protect the game loop
		r.dropped.Add(1)
	}
}

// Dropped returns how many frames were discarded because the queue was full
func (r *GameRecorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close flushes the buffer and closes the file
func (r *GameRecorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait()
	if err := r.writer.Flush(); err != nil {
		r.file.Close()
		return fmt.Errorf("flush records: %w", err)
	}
	return r.file.Close()
}

func (r *GameRecorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			r.log.Warnw("error recording frame", "seq", rec.Seq, "error", err)
			continue
		}
	}
}

// ReadRecords decodes a recorded session
func ReadRecords(src io.Reader) ([]StepRecord, error) {
	var records []StepRecord
	dec := json.NewDecoder(src)
	for {
		var rec StepRecord
		err := dec.Decode(&rec)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("decode record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
}

// LoadRecords reads a recorded session from disk
func LoadRecords(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()
	return ReadRecords(f)
}
