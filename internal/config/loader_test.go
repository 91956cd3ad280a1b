package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/recap/internal/deck"
)

// isolatedLoader ignores config files on the host
func isolatedLoader(paths ...string) *Loader {
	l := NewLoader()
	l.configPaths = paths
	l.warn = func(string, ...any) {}
	return l
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := isolatedLoader().LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.Display.Theme != "default" {
		t.Errorf("Expected default theme, got %s", cfg.Display.Theme)
	}
	if len(cfg.Slides) != len(DefaultSlides()) {
		t.Errorf("Expected default slides, got %d", len(cfg.Slides))
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "deck.yaml", `version: "1.0"
presentation:
  team_name: "Platform Team"
  year: "2026"
  loading_duration: 200ms
display:
  theme: high-contrast
slides:
  - type: intro
    subtitle: Our year
  - type: stat
    icon: "🚀"
    label: We shipped
    value: "1,024"
    unit: deploys
  - type: outro
    thanks: Thanks
    message: Bye
`)

	cfg, err := isolatedLoader().LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Presentation.TeamName != "Platform Team" || cfg.Presentation.Year != "2026" {
		t.Errorf("Unexpected presentation config: %+v", cfg.Presentation)
	}
	if cfg.Presentation.LoadingDuration != 200*time.Millisecond {
		t.Errorf("Expected loading duration 200ms, got %v", cfg.Presentation.LoadingDuration)
	}
	if cfg.Presentation.CounterDuration != 1500*time.Millisecond {
		t.Errorf("Expected counter duration default, got %v", cfg.Presentation.CounterDuration)
	}
	if cfg.Display.Theme != "high-contrast" {
		t.Errorf("Expected theme high-contrast, got %s", cfg.Display.Theme)
	}

	d, err := cfg.Deck()
	if err != nil {
		t.Fatalf("Failed to build deck: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("Expected 3 slides, got %d", d.Len())
	}
	if stat := d.At(1).(deck.Stat); stat.Value != "1,024" {
		t.Errorf("Expected stat value 1,024, got %q", stat.Value)
	}
}

func TestLoadConfigUnknownSlideType(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "deck.yaml", `slides:
  - type: intro
    subtitle: x
  - type: chart
`)

	_, err := isolatedLoader().LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for unknown slide type")
	}
	if !strings.Contains(err.Error(), "slide 1") {
		t.Errorf("Expected error to name slide 1, got %v", err)
	}
}

func TestLoadConfigPriority(t *testing.T) {
	dir := t.TempDir()
	low := writeFile(t, dir, "system.yaml", `presentation:
  team_name: System
  year: "1999"
`)
	high := writeFile(t, dir, "project.yaml", `presentation:
  team_name: Project
`)

	cfg, err := isolatedLoader(high, low).LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Presentation.TeamName != "Project" {
		t.Errorf("Expected project file to win, got %s", cfg.Presentation.TeamName)
	}
	if cfg.Presentation.Year != "1999" {
		t.Errorf("Expected year from system file, got %s", cfg.Presentation.Year)
	}
}

func TestLoadConfigSkipsBrokenSearchFile(t *testing.T) {
	broken := writeFile(t, t.TempDir(), "broken.yaml", "presentation: [unclosed")

	var warnings []string
	l := isolatedLoader(broken)
	l.warn = func(format string, args ...any) { warnings = append(warnings, format) }

	if _, err := l.LoadConfig(""); err != nil {
		t.Fatalf("Expected broken search file to be skipped, got %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("Expected one warning, got %d", len(warnings))
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RECAP_TEAM_NAME", "Env Team")
	t.Setenv("RECAP_AUTO_ADVANCE", "3s")
	t.Setenv("RECAP_THEME", "minimal")
	t.Setenv("RECAP_NO_EMOJI", "true")
	t.Setenv("RECAP_FRAME_RATE", "30")

	cfg, err := isolatedLoader().LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Presentation.TeamName != "Env Team" {
		t.Errorf("Expected team name from env, got %s", cfg.Presentation.TeamName)
	}
	if cfg.Presentation.AutoAdvance != 3*time.Second {
		t.Errorf("Expected auto-advance 3s, got %v", cfg.Presentation.AutoAdvance)
	}
	if cfg.Presentation.Year != "2025" {
		t.Errorf("Expected unset env to keep default year, got %s", cfg.Presentation.Year)
	}
	if cfg.Display.Theme != "minimal" || !cfg.Display.NoEmoji || cfg.Display.FrameRate != 30 {
		t.Errorf("Unexpected display config: %+v", cfg.Display)
	}
}

func TestEnvOverrideInvalidValue(t *testing.T) {
	t.Setenv("RECAP_LOADING_DURATION", "soon")

	if _, err := isolatedLoader().LoadConfig(""); err == nil {
		t.Error("Expected error for invalid duration")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"deck.yaml", false},
		{"deck.yml", false},
		{"deck.json", true},
		{"../deck.yaml", true},
		{"/proc/self/deck.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfigPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSampleConfigsAreValid(t *testing.T) {
	for name, sample := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "sample.yaml", sample)
			if _, err := isolatedLoader().LoadConfig(path); err != nil {
				t.Errorf("Sample config does not load: %v", err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/x.yaml"); got != filepath.Join(home, "x.yaml") {
		t.Errorf("Expected home expansion, got %s", got)
	}
	if got := expandPath("/abs/x.yaml"); got != "/abs/x.yaml" {
		t.Errorf("Expected absolute path unchanged, got %s", got)
	}
}
