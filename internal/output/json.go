package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/dqview/internal/report"
)

// JSONFormatter writes a check summary as a JSON report.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a JSONFormatter. An empty outputFile writes to
// stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport is the top-level JSON document.
type JSONReport struct {
	Header  JSONHeader           `json:"header"`
	Summary JSONSummary          `json:"summary"`
	Results []report.CheckResult `json:"results"`
}

// JSONHeader identifies the tool that produced the report.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary carries the run totals.
type JSONSummary struct {
	TotalFiles      int    `json:"total_files"`
	SuccessfulFiles int    `json:"successful_files"`
	FailedFiles     int    `json:"failed_files"`
	TotalErrors     int    `json:"total_errors"`
	Duration        string `json:"duration"`
}

// Format serializes the check summary.
func (f *JSONFormatter) Format(summary *report.CheckSummary) error {
	doc := JSONReport{
		Header: JSONHeader{
			Tool:      "dqview",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalFiles:      summary.TotalFiles,
			SuccessfulFiles: summary.SuccessfulFiles,
			FailedFiles:     summary.FailedFiles,
			TotalErrors:     summary.TotalErrors,
			Duration:        time.Since(summary.StartTime).Round(time.Millisecond).String(),
		},
		Results: summary.Results,
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("marshaling JSON report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}
	return nil
}
