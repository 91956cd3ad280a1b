package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/yildizm/recap/internal/config"
	"github.com/yildizm/recap/internal/emoji"
	"github.com/yildizm/recap/internal/logger"
	"github.com/yildizm/recap/internal/ui"
)

var (
	playTheme       string
	playYear        string
	playTeam        string
	playAutoAdvance time.Duration
	playNoMouse     bool
)

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the presentation",
		Long: `Open the player surface. Type a prompt or pick a suggestion and press
enter to start the presentation.

Keys while playing:
  right, space   next slide
  left           previous slide
  esc            close the presentation
  r              replay (on the last slide)
  q, ctrl+c      quit

Examples:
  recap play
  recap play --config team.yaml
  recap play --auto-advance 5s --theme high-contrast`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}

	cmd.Flags().StringVar(&playTheme, "theme", "", "color theme (default, high-contrast, minimal)")
	cmd.Flags().StringVar(&playYear, "year", "", "year shown on the intro slide")
	cmd.Flags().StringVar(&playTeam, "team", "", "team name shown on the intro slide")
	cmd.Flags().DurationVar(&playAutoAdvance, "auto-advance", 0, "advance slides automatically at this interval (0 disables)")
	cmd.Flags().BoolVar(&playNoMouse, "no-mouse", false, "disable mouse navigation")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadGlobalConfig()
	if err != nil {
		return err
	}

	applyPlayFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	d, err := cfg.Deck()
	if err != nil {
		return err
	}

	applyDisplaySettings(cfg)

	log, cleanup, err := newPlayerLogger(debugLog)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info("starting player", "slides", d.Len(), "theme", cfg.Display.Theme, "auto_advance", cfg.Presentation.AutoAdvance)
	return ui.Run(cfg, d, log)
}

// applyPlayFlags overrides config values with flags that were set explicitly
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flag("theme").Changed {
		cfg.Display.Theme = playTheme
	}
	if cmd.Flag("year").Changed {
		cfg.Presentation.Year = playYear
	}
	if cmd.Flag("team").Changed {
		cfg.Presentation.TeamName = playTeam
	}
	if cmd.Flag("auto-advance").Changed {
		cfg.Presentation.AutoAdvance = playAutoAdvance
	}
	if playNoMouse {
		cfg.Display.DisableMouse = true
	}
}

// applyDisplaySettings sets the theme, color profile and emoji mode
func applyDisplaySettings(cfg *config.Config) {
	if !ui.SetThemeByName(cfg.Display.Theme) {
		cliLogger().Warn("unknown theme, using default", "theme", cfg.Display.Theme, "available", ui.GetAvailableThemes())
	}

	switch {
	case noColor || ui.IsColorDisabled() || cfg.Display.ColorMode == "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case cfg.Display.ColorMode == "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	emoji.SetEmojiDisabled(isEmojiDisabled() || cfg.Display.NoEmoji)
}

// newPlayerLogger returns a debug logger writing to path. The terminal
// belongs to the player, so without a path logs are discarded.
func newPlayerLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return logger.Discard(), func() {}, nil
	}

	file, err := tea.LogToFile(path, "recap")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	cleanup := func() {
		if err := file.Close(); err != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close debug log: %v\n", err)
		}
	}

	return logger.New("player", file, func() bool { return true }), cleanup, nil
}
