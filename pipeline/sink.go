package pipeline

import (
	"fmt"
	"sync"

	"hockey-stats-pipeline/models"
	"hockey-stats-pipeline/parser"
)

// Sink validates records and forwards them to a writer. It runs synchronously
// in the caller's goroutine: the crawl is strictly sequential, so there is
// nothing to overlap.
type Sink struct {
	writer RecordWriter

	mu        sync.Mutex
	processed int64
	rejected  map[string]int
}

// NewSink wraps a writer with per-record validation.
func NewSink(writer RecordWriter) *Sink {
	return &Sink{
		writer:   writer,
		rejected: make(map[string]int),
	}
}

// Process validates each record and writes the batch. A record missing a
// required field fails the whole batch; partial rows must not reach the file.
func (s *Sink) Process(records []*models.TeamRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		if err := parser.ValidateRecord(record); err != nil {
			s.mu.Lock()
			s.rejected["invalid_record"]++
			s.mu.Unlock()
			return fmt.Errorf("validate record: %w", err)
		}
	}

	if err := s.writer.Write(records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	s.mu.Lock()
	s.processed += int64(len(records))
	s.mu.Unlock()
	return nil
}

// Processed reports how many records have been written.
func (s *Sink) Processed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed
}

// Rejections returns a copy of the per-reason rejection counts.
func (s *Sink) Rejections() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.rejected))
	for k, v := range s.rejected {
		out[k] = v
	}
	return out
}
