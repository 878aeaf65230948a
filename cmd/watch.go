package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dotcommander/dqview/internal/config"
	"github.com/dotcommander/dqview/internal/device"
	"github.com/dotcommander/dqview/internal/indicator"
	"github.com/dotcommander/dqview/internal/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch <report-file>",
	Short: "Re-render the indicator whenever the report file changes",
	Long: `The watch command renders the quality indicator for one report file
and re-renders it on every data refresh (file write).

Keys:
- d  toggle the detail panel
- q  quit`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWatch(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(path string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: most editors and pipelines
	// replace the file on write, which drops a file-level watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	in, err := buildIndicator(path, cfg.Details)
	if err != nil {
		return err
	}
	redraw(in)

	keys, restore, err := keyEvents()
	if err != nil {
		return err
	}
	defer restore()

	target := filepath.Clean(path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("report refreshed")
			next, err := buildIndicator(path, in.Expanded())
			if err != nil {
				log.Error().Err(err).Msg("reload failed, keeping previous render")
				continue
			}
			in = next
			redraw(in)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		case key := <-keys:
			switch key {
			case 'd':
				in.Toggle()
				redraw(in)
			case 'q', 3: // q or ctrl-c
				return nil
			}
		}
	}
}

// buildIndicator loads and validates the report, then constructs the view
// with the given expansion state carried over.
func buildIndicator(path string, expanded bool) (*indicator.Indicator, error) {
	r, violations, err := report.Load(path)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		for _, violation := range violations {
			log.Error().Str("file", path).Msg(violation.Message)
		}
		return nil, fmt.Errorf("%s: report violates the quality contract", path)
	}

	return indicator.New(r.Metrics,
		indicator.WithIssues(r.Issues),
		indicator.WithDetails(expanded),
		indicator.WithViewport(device.Detect(int(os.Stdout.Fd()))),
		indicator.WithToggleFunc(func(expanded bool) {
			log.Debug().Bool("expanded", expanded).Msg("details toggled")
		}),
	), nil
}

// redraw clears the screen and renders the indicator.
func redraw(in *indicator.Indicator) {
	fmt.Print("\033[H\033[2J")
	fmt.Println(in.Render())
	fmt.Println("\n  d: toggle details   q: quit")
}

// keyEvents puts stdin into raw mode and streams single key presses.
// Off-TTY (tests, pipes) it returns a silent channel and a no-op restore.
func keyEvents() (<-chan byte, func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return make(chan byte), func() {}, nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, fmt.Errorf("entering raw mode: %w", err)
	}

	keys := make(chan byte)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n > 0 {
				keys <- buf[0]
			}
		}
	}()

	return keys, func() { term.Restore(fd, oldState) }, nil
}
