package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/dqview/internal/report"
)

func TestJSONFormatterStdout(t *testing.T) {
	f := NewJSONFormatter(true, "")
	got := captureStdout(t, func() error { return f.Format(failingSummary()) })

	var doc JSONReport
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if doc.Header.Tool != "dqview" {
		t.Errorf("Header.Tool = %q, want %q", doc.Header.Tool, "dqview")
	}
	if doc.Summary.TotalFiles != 2 || doc.Summary.FailedFiles != 1 {
		t.Errorf("summary totals = %+v, want 2 files / 1 failed", doc.Summary)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("Results count = %d, want 2", len(doc.Results))
	}
	if doc.Results[1].Tier != "Good" || doc.Results[1].Score != 88 {
		t.Errorf("passing result = %+v, want Good/88", doc.Results[1])
	}
}

func TestJSONFormatterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	f := NewJSONFormatter(false, path)
	if err := f.Format(passingSummary()); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	var doc JSONReport
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output file is not valid JSON: %v", err)
	}
	if doc.Summary.SuccessfulFiles != 2 {
		t.Errorf("SuccessfulFiles = %d, want 2", doc.Summary.SuccessfulFiles)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	f := NewMarkdownFormatter(false, "")
	got := captureStdout(t, func() error { return f.Format(failingSummary()) })

	for _, want := range []string{
		"# Data Quality Report",
		"| Reports Checked | 2 |",
		"| sales.quality.json | ✅ | 88% | Good |",
		"| bad.quality.json | ❌ | — | — |",
		"### bad.quality.json",
		"confidence_level must be in [0,1], got 1.2",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownFormatterEmpty(t *testing.T) {
	f := NewMarkdownFormatter(false, "")
	got := captureStdout(t, func() error {
		return f.Format(&report.CheckSummary{StartTime: time.Now()})
	})
	if !strings.Contains(got, "*No report files found.*") {
		t.Errorf("markdown missing empty notice:\n%s", got)
	}
}
