package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/recap/internal/config"
	"github.com/yildizm/recap/internal/deck"
	"github.com/yildizm/recap/internal/emoji"
)

const defaultDeckFile = ".recap.yaml"

// sampleNumber is formatted with the configured locale in reports
const sampleNumber = 2048

var (
	initMinimal bool
	initForce   bool
	showFormat  string
	showSlides  bool
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Scaffold and inspect deck files",
		Long: `Work with the YAML files that describe a recap deck.

A deck file holds the presentation settings (year, team, timings, locale),
the display settings and the ordered list of slides. Use --config to point
any subcommand at a specific file; otherwise the search paths are used.`,
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigValidateCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter deck file",
		Long: `Write a starter deck file to file (default .recap.yaml).

The full starter contains one slide of every type and every setting with
its default. --minimal writes a three-slide deck and the team name only.
Pass - as the file to print the starter instead of writing it.

Examples:
  recap config init
  recap config init --minimal team.yaml
  recap config init - > team.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultDeckFile
			if len(args) == 1 {
				path = args[0]
			}
			return scaffoldConfig(path, initMinimal, initForce, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&initMinimal, "minimal", "m", false, "write a three-slide deck")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "replace an existing file")

	return cmd
}

// scaffoldConfig writes the starter deck to path, or to out when path is "-"
func scaffoldConfig(path string, minimal, force bool, out io.Writer) error {
	content := config.SampleConfig()
	if minimal {
		content = config.MinimalSampleConfig()
	}

	if path == "-" {
		_, err := io.WriteString(out, content)
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to replace it)", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write deck file: %w", err)
	}

	cfg, err := config.Parse([]byte(content))
	if err != nil {
		return fmt.Errorf("starter deck does not parse: %w", err)
	}
	d, err := cfg.Deck()
	if err != nil {
		return fmt.Errorf("starter deck does not build: %w", err)
	}

	fmt.Fprintf(out, "%s Wrote %s: %s\n", emoji.GetEmoji("success"), path, describeDeck(d))
	fmt.Fprintf(out, "Play it with: recap play --config %s\n", path)
	return nil
}

func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective deck file",
		Long: `Print the configuration recap would play with: defaults, then the deck
file, then RECAP_* environment variables.

--slides prints only the slide list in the normalized form recap reads
back, which is handy for moving a deck between files.

Examples:
  recap config show
  recap config show --format json
  recap config show --slides --config team.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadGlobalConfig()
			if err != nil {
				return err
			}
			return showConfig(cfg, showFormat, showSlides, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "yaml or json")
	cmd.Flags().BoolVar(&showSlides, "slides", false, "print only the slide list")

	return cmd
}

// showConfig encodes cfg, or just its rebuilt slide list, to out
func showConfig(cfg *config.Config, format string, slidesOnly bool, out io.Writer) error {
	var v interface{} = cfg
	if slidesOnly {
		d, err := cfg.Deck()
		if err != nil {
			return err
		}
		descs := make([]deck.Descriptor, 0, d.Len())
		for _, s := range d.Slides() {
			descs = append(descs, deck.NewDescriptor(s))
		}
		v = descs
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (use yaml or json)", format)
	}
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the deck and report its playback settings",
		Long: `Run the same checks as "recap check" and then list the settings the
player will use: timings, theme and how the locale groups numbers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfgFile, cmd.OutOrStdout())
		},
	}
}

// validateConfig reports the deck check followed by the playback settings
func validateConfig(path string, out io.Writer) error {
	if err := checkConfig(path, out); err != nil {
		return err
	}

	cfg, err := config.NewLoader().LoadConfig(path)
	if err != nil {
		return err
	}

	p := cfg.Presentation
	auto := "off"
	if p.AutoAdvance > 0 {
		auto = "every " + p.AutoAdvance.String()
	}
	printer := message.NewPrinter(p.LocaleTag())

	fmt.Fprintf(out, "%s %s %s\n", emoji.GetEmoji("calendar"), p.Year, p.TeamName)
	fmt.Fprintf(out, "   loading %s, counter %s, auto-advance %s\n", p.LoadingDuration, p.CounterDuration, auto)
	fmt.Fprintf(out, "   theme %s, colors %s, %d fps\n", cfg.Display.Theme, cfg.Display.ColorMode, cfg.Display.FrameRate)
	fmt.Fprintf(out, "   locale %s counts %s\n", p.LocaleTag(), printer.Sprintf("%d", sampleNumber))
	return nil
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List where recap looks for a deck file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listConfigPaths(config.GetConfigPaths(), cmd.OutOrStdout())
		},
	}
}

// listConfigPaths marks the first existing path in search order as the one
// in use
func listConfigPaths(paths []string, out io.Writer) error {
	inUse := ""
	for _, path := range paths {
		mark := "-"
		if _, err := os.Stat(path); err == nil {
			mark = emoji.GetEmoji("success")
			if inUse == "" {
				inUse = path
				mark += " (in use)"
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			mark = emoji.GetEmoji("warning") + " " + err.Error()
		}
		fmt.Fprintf(out, "%s  %s\n", path, mark)
	}

	if inUse == "" {
		fmt.Fprintln(out, "No deck file found; playing the built-in deck")
	}
	fmt.Fprintln(out, "RECAP_* environment variables override file settings")
	return nil
}
