package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/dqview/internal/config"
	"github.com/dotcommander/dqview/internal/output"
	"github.com/dotcommander/dqview/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Validate every quality report under the root directory",
	Long: `The check command discovers quality report files (JSON or YAML),
validates each one against the report schema and contract rules, and
prints a summary.

Default patterns:
- **/*.quality.json
- **/*.quality.yaml
- **/*.quality.yml

Pass explicit doublestar patterns to narrow the run. The command exits
non-zero when any report fails validation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(patterns []string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	summary, err := report.Check(cfg.Root, patterns)
	if err != nil {
		return fmt.Errorf("error checking reports: %w", err)
	}

	if err := formatSummary(cfg, summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if summary.FailedFiles > 0 {
		exitFunc(1)
	}
	return nil
}

// formatSummary routes a check summary to the configured formatter.
func formatSummary(cfg *config.Config, summary *report.CheckSummary) error {
	switch cfg.Format {
	case "console":
		return output.NewConsoleFormatter(cfg.Quiet, cfg.Verbose).Format(summary)
	case "json":
		return output.NewJSONFormatter(true, cfg.Output).Format(summary)
	case "markdown":
		return output.NewMarkdownFormatter(cfg.Verbose, cfg.Output).Format(summary)
	default:
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}
