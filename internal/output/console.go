// Package output formats check summaries for the console, JSON, and
// Markdown. Formatters share the CheckSummary shape and nothing else.
package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/dqview/internal/report"
)

// ConsoleFormatter prints a check run in a compact, summary-first style.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format prints the check summary to stdout.
func (f *ConsoleFormatter) Format(summary *report.CheckSummary) error {
	if f.quiet {
		return nil
	}

	greenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldGreen := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	for _, result := range summary.Results {
		if result.Success && !f.verbose {
			continue
		}

		if result.Success {
			line := fmt.Sprintf("%d%% %s", result.Score, result.Tier)
			f.printLine("✓", result.File, dimStyle.Render(line), greenStyle)
		} else {
			f.printLine("✗", result.File, "", redStyle)
			for _, err := range result.Errors {
				if f.colorize {
					fmt.Printf("    ✘ %s\n", redStyle.Render(err.Message))
				} else {
					fmt.Printf("    ✘ %s\n", err.Message)
				}
			}
		}
	}

	duration := time.Since(summary.StartTime)
	if summary.FailedFiles == 0 {
		msg := fmt.Sprintf("✓ All %d reports passed (%s)", summary.TotalFiles, formatDuration(duration))
		if summary.TotalFiles == 1 {
			msg = fmt.Sprintf("✓ Report passed (%s)", formatDuration(duration))
		}
		if f.colorize {
			fmt.Println(boldGreen.Render(msg))
		} else {
			fmt.Println(msg)
		}
		return nil
	}

	fmt.Printf("\n%d/%d passed, %d %s (%s)\n",
		summary.SuccessfulFiles, summary.TotalFiles,
		summary.TotalErrors, pluralizeCount("error", summary.TotalErrors),
		formatDuration(duration))
	return nil
}

func (f *ConsoleFormatter) printLine(icon, file, suffix string, style lipgloss.Style) {
	if f.colorize {
		icon = style.Render(icon)
	}
	if suffix != "" {
		fmt.Printf("%s %s  %s\n", icon, file, suffix)
	} else {
		fmt.Printf("%s %s\n", icon, file)
	}
}

// pluralizeCount returns singular or plural form based on count.
func pluralizeCount(s string, count int) string {
	if count == 1 {
		return s
	}
	return s + "s"
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
