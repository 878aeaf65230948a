package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/dqview/internal/report"
)

// MarkdownFormatter writes a check summary as a Markdown report.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format renders the check summary as Markdown.
func (f *MarkdownFormatter) Format(summary *report.CheckSummary) error {
	var b strings.Builder

	b.WriteString("# Data Quality Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	if summary.ProjectRoot != "" {
		b.WriteString(fmt.Sprintf("**Root:** %s\n\n", summary.ProjectRoot))
	}
	b.WriteString(fmt.Sprintf("**Duration:** %v\n\n", time.Since(summary.StartTime).Round(time.Millisecond)))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Reports Checked | %d |\n", summary.TotalFiles))
	b.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.SuccessfulFiles))
	b.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.FailedFiles))
	b.WriteString(fmt.Sprintf("| Errors | %d |\n", summary.TotalErrors))
	b.WriteString("\n")

	b.WriteString("## Reports\n\n")
	if summary.TotalFiles == 0 {
		b.WriteString("*No report files found.*\n")
	} else {
		b.WriteString("| File | Status | Quality | Tier |\n")
		b.WriteString("|------|--------|---------|------|\n")
		for _, result := range summary.Results {
			status := "❌"
			qualityCol := "—"
			tierCol := "—"
			if result.Success {
				status = "✅"
				qualityCol = fmt.Sprintf("%d%%", result.Score)
				tierCol = result.Tier
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", result.File, status, qualityCol, tierCol))
		}
		b.WriteString("\n")

		for _, result := range summary.Results {
			if result.Success && !f.verbose {
				continue
			}
			if len(result.Errors) == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("### %s\n\n", result.File))
			for _, err := range result.Errors {
				b.WriteString(fmt.Sprintf("- **%s**: %s\n", err.Severity, err.Message))
			}
			b.WriteString("\n")
		}
	}

	content := b.String()
	if f.outputFile == "" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing Markdown report: %w", err)
	}
	return nil
}
