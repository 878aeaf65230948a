// Package cmd wires the dqview CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/dqview/internal/config"
	"github.com/dotcommander/dqview/internal/device"
	"github.com/dotcommander/dqview/internal/indicator"
	"github.com/dotcommander/dqview/internal/logging"
	"github.com/dotcommander/dqview/internal/report"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	showDetails  bool
	noColor      bool
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "dqview [report-file]",
	Short: "dqview - render data-quality indicators for dataset reports",
	Long: `dqview reads a quality report (JSON or YAML) describing a dataset's
completeness, accuracy, consistency, and confidence, classifies the
confidence into a quality tier, and renders a styled indicator with an
expandable detail panel.

With no arguments it behaves like 'dqview check' over the current
directory.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(quiet, verbose)
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			if err := runCheck(nil); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitFunc(1)
			}
			return
		}
		if err := runShow(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Report root directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for check runs (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for json/markdown reports")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "Expand the detail panel")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("noColor", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("details", rootCmd.Flags().Lookup("details"))
}

// runShow renders the indicator for a single report file.
func runShow(path string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	r, violations, err := report.Load(path)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		for _, violation := range violations {
			fmt.Fprintf(os.Stderr, "✘ %s\n", violation.Message)
		}
		return fmt.Errorf("%s: report violates the quality contract", path)
	}

	in := indicator.New(r.Metrics,
		indicator.WithIssues(r.Issues),
		indicator.WithDetails(cfg.Details),
		indicator.WithViewport(device.Detect(int(os.Stdout.Fd()))),
	)
	fmt.Println(in.Render())
	return nil
}
