package pipeline

import (
	"fmt"
	"sync"

	"hockey-stats-pipeline/models"
)

// DualWriter outputs to both CSV and JSONL files simultaneously.
type DualWriter struct {
	csvWriter   *CSVWriter
	jsonlWriter *JSONLWriter
	mu          sync.Mutex
}

// NewDualWriter creates a dual writer for both output files.
func NewDualWriter(csvFilename, jsonlFilename string) (*DualWriter, error) {
	csvWriter, err := NewCSVWriter(csvFilename)
	if err != nil {
		return nil, fmt.Errorf("create csv writer: %w", err)
	}

	jsonlWriter, err := NewJSONLWriter(jsonlFilename)
	if err != nil {
		csvWriter.Close()
		return nil, fmt.Errorf("create jsonl writer: %w", err)
	}

	return &DualWriter{
		csvWriter:   csvWriter,
		jsonlWriter: jsonlWriter,
	}, nil
}

// Write writes records to both outputs.
func (dw *DualWriter) Write(records []*models.TeamRecord) error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if err := dw.csvWriter.Write(records); err != nil {
		return fmt.Errorf("csv write: %w", err)
	}
	if err := dw.jsonlWriter.Write(records); err != nil {
		return fmt.Errorf("jsonl write: %w", err)
	}
	return nil
}

// Close closes both writers.
func (dw *DualWriter) Close() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	var errs []error
	if err := dw.csvWriter.Close(); err != nil {
		errs = append(errs, fmt.Errorf("csv close: %w", err))
	}
	if err := dw.jsonlWriter.Close(); err != nil {
		errs = append(errs, fmt.Errorf("jsonl close: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors: %v", errs)
	}
	return nil
}

// Validate validates both output files.
func (dw *DualWriter) Validate() error {
	var errs []error
	if err := dw.csvWriter.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("csv validation: %w", err))
	}
	if err := dw.jsonlWriter.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("jsonl validation: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation errors: %v", errs)
	}
	return nil
}
