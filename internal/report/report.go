// Package report loads and validates quality reports at the
// data-producing boundary. Everything downstream (the indicator view, the
// formatters) assumes records that passed this package.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/dqview/internal/quality"
)

// Report is one quality report file: a metrics record plus an optional
// issue list, both read-only once loaded.
type Report struct {
	Metrics quality.Metrics `json:"metrics" yaml:"metrics"`
	Issues  []quality.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Load reads and validates a report file. JSON and YAML are supported,
// selected by extension. The returned ValidationErrors are contract
// violations in well-formed input; the error return covers I/O and parse
// failures only. A report with violations is still returned so callers
// can show what was wrong alongside the data.
func Load(path string) (*Report, []ValidationError, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading report: %w", err)
	}

	var raw map[string]any
	var r Report
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &r); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported report format %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}

	violations := validate(path, raw, &r)
	return &r, violations, nil
}

// validate runs the schema check on raw data first; only schema-clean
// reports go on to the typed Go checks, which add the cross-field rule
// CUE does not express. That keeps one violation from being reported in
// two different wordings.
func validate(path string, raw map[string]any, r *Report) []ValidationError {
	v, err := NewValidator()
	if err != nil {
		return []ValidationError{{File: path, Message: err.Error(), Severity: "error"}}
	}
	if violations := v.Validate(path, raw); len(violations) > 0 {
		return violations
	}

	var violations []ValidationError
	for _, e := range quality.ValidateMetrics(r.Metrics) {
		violations = append(violations, ValidationError{File: path, Message: e.Error(), Severity: "error"})
	}
	for _, e := range quality.ValidateIssues(r.Issues) {
		violations = append(violations, ValidationError{File: path, Message: e.Error(), Severity: "error"})
	}
	return violations
}
