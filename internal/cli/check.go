package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yildizm/recap/internal/config"
	"github.com/yildizm/recap/internal/deck"
	"github.com/yildizm/recap/internal/emoji"
)

var checkWatch bool

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a presentation deck",
		Long: `Load a config file and check that its deck can be played.

Reports unknown slide types, empty decks and invalid settings. Stat slides
whose value is not a number are reported as warnings: they are shown as-is
without the counting animation.

With --watch the file is checked again every time it changes. Press Ctrl+C
to stop watching.

Examples:
  recap check
  recap check team.yaml
  recap check --watch team.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "check again whenever the file changes")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if len(args) == 1 {
		path = args[0]
	}

	out := cmd.OutOrStdout()

	if !checkWatch {
		return checkConfig(path, out)
	}

	if path == "" {
		found, ok := config.FindConfigFile()
		if !ok {
			return fmt.Errorf("no config file to watch")
		}
		path = found
	}

	// A broken file is reported and watched anyway
	_ = checkConfig(path, out)

	watcher, err := createWatcher(path)
	if err != nil {
		return err
	}
	defer cleanupWatcher(watcher)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return runWatchLoop(ctx, watcher, path, out)
}

// checkConfig loads and validates the config at path (or the search paths
// when path is empty) and writes a report to out
func checkConfig(path string, out io.Writer) error {
	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(out, "%s Deck check failed:\n", emoji.GetEmoji("error"))
		fmt.Fprintf(out, "   %v\n", err)
		return err
	}

	d, err := cfg.Deck()
	if err != nil {
		fmt.Fprintf(out, "%s Deck check failed:\n", emoji.GetEmoji("error"))
		fmt.Fprintf(out, "   %v\n", err)
		return err
	}

	fmt.Fprintf(out, "%s Deck is valid: %s\n", emoji.GetEmoji("success"), describeDeck(d))
	for _, w := range deckWarnings(d) {
		fmt.Fprintf(out, "%s %s\n", emoji.GetEmoji("warning"), w)
	}
	return nil
}

// describeDeck summarizes slide counts, e.g. "11 slides (1 intro, 6 stat, ...)"
func describeDeck(d *deck.Deck) string {
	counts := d.Counts()
	kinds := []deck.Kind{deck.KindIntro, deck.KindStat, deck.KindPhoto, deck.KindText, deck.KindOutro}

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		if counts[kind] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[kind], kind))
		}
	}
	return fmt.Sprintf("%d slides (%s)", d.Len(), strings.Join(parts, ", "))
}

// deckWarnings lists problems that do not stop playback
func deckWarnings(d *deck.Deck) []string {
	var warnings []string
	for i, s := range d.Slides() {
		stat, ok := s.(deck.Stat)
		if !ok {
			continue
		}
		if _, ok := stat.Target(); !ok {
			warnings = append(warnings, fmt.Sprintf("slide %d: stat value %q is not a number and will not be animated", i+1, stat.Value))
		}
	}

	if _, ok := d.At(d.Len() - 1).(deck.Outro); !ok {
		warnings = append(warnings, "last slide is not an outro, replay is only offered on outro slides")
	}
	return warnings
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

// createWatcher watches the directory holding filename, so editors that
// replace the file on save are still seen
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	if err := validateWatchFilePath(filename); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(filepath.Clean(filename))); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	return watcher, nil
}

// runWatchLoop checks the file again on every write until ctx is done
func runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, filename string, out io.Writer) error {
	target := filepath.Clean(filename)

	for {
		select {
		case <-ctx.Done():
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "\nStopping...\n")
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isDeckChange(event, target) {
				continue
			}
			fmt.Fprintf(out, "\n%s %s changed\n", emoji.GetEmoji("watch"), filename)
			_ = checkConfig(filename, out)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}
}

// isDeckChange reports whether event rewrote the watched file
func isDeckChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
