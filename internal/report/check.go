package report

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dotcommander/dqview/internal/quality"
)

// CheckResult is the outcome of validating one report file.
type CheckResult struct {
	File    string            `json:"file"`
	Success bool              `json:"success"`
	Score   int               `json:"score"` // confidence as whole percentage
	Tier    string            `json:"tier"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// CheckSummary aggregates a check run over many report files.
type CheckSummary struct {
	ProjectRoot     string        `json:"project_root"`
	TotalFiles      int           `json:"total_files"`
	SuccessfulFiles int           `json:"successful_files"`
	FailedFiles     int           `json:"failed_files"`
	TotalErrors     int           `json:"total_errors"`
	StartTime       time.Time     `json:"-"`
	Results         []CheckResult `json:"results"`
}

// Check discovers report files under root and validates each one.
func Check(root string, patterns []string) (*CheckSummary, error) {
	files, err := Discover(root, patterns)
	if err != nil {
		return nil, err
	}

	summary := &CheckSummary{
		ProjectRoot: root,
		StartTime:   time.Now(),
	}

	for _, file := range files {
		log.Debug().Str("file", file).Msg("checking report")
		summary.Results = append(summary.Results, checkOne(root, file))
	}

	for _, result := range summary.Results {
		summary.TotalFiles++
		if result.Success {
			summary.SuccessfulFiles++
		} else {
			summary.FailedFiles++
		}
		summary.TotalErrors += len(result.Errors)
	}

	return summary, nil
}

func checkOne(root, file string) CheckResult {
	result := CheckResult{File: file}

	r, violations, err := Load(filepath.Join(root, file))
	if err != nil {
		result.Errors = []ValidationError{{File: file, Message: err.Error(), Severity: "error"}}
		return result
	}

	result.Errors = violations
	result.Success = len(violations) == 0
	if result.Success {
		result.Score = quality.Percent(r.Metrics.ConfidenceLevel)
		result.Tier = quality.Classify(r.Metrics.ConfidenceLevel).Label
	}
	return result
}
