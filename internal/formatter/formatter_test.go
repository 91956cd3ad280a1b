package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/recap/internal/deck"
)

func testOutline(t *testing.T) *Outline {
	t.Helper()

	d, err := deck.Build([]deck.Slide{
		deck.Intro{Title: "Year in Review", Subtitle: "Looking back"},
		deck.Stat{Label: "Cups of coffee", Value: "2,048", Unit: "cups", Comment: "Fuel"},
		deck.Stat{Label: "Mood", Value: "abc", Unit: "units"},
		deck.Photo{Source: "images/1.jpg", Caption: "Jellyfish"},
		deck.Text{Content: "Friendship"},
		deck.Outro{Thanks: "Thank you", Message: "Onwards"},
	})
	if err != nil {
		t.Fatalf("Failed to build deck: %v", err)
	}
	return &Outline{Year: "2025", TeamName: "The Lab", Deck: d}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"text", false},
		{"terminal", false},
		{"json", false},
		{"markdown", false},
		{"md", false},
		{"csv", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := New(tt.format, false)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for format %q", tt.format)
				}
				return
			}
			if err != nil || f == nil {
				t.Errorf("Expected formatter for %q, got error %v", tt.format, err)
			}
		})
	}
}

func TestTerminalFormat(t *testing.T) {
	opts := termfmt.DefaultOptions()
	opts.Color = false
	opts.Emoji = false

	out, err := NewTerminalWithOptions(opts).Format(testOutline(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	text := string(out)
	for _, want := range []string{"2025 · The Lab", "Summary", "Slides", "Year in Review", "Cups of coffee 2,048 cups", "abc (not animated)", "Jellyfish", "Thank you"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, text)
		}
	}

	if strings.Index(text, "Year in Review") > strings.Index(text, "Thank you") {
		t.Error("Expected slides in deck order")
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := NewJSON().Format(testOutline(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var got struct {
		Summary struct {
			Year   string         `json:"year"`
			Slides int            `json:"slides"`
			Kinds  map[string]int `json:"kinds"`
		} `json:"summary"`
		Slides []struct {
			Index    int            `json:"index"`
			Kind     string         `json:"kind"`
			Animated bool           `json:"animated"`
			Slide    map[string]any `json:"slide"`
		} `json:"slides"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if got.Summary.Year != "2025" || got.Summary.Slides != 6 {
		t.Errorf("Unexpected summary: %+v", got.Summary)
	}
	if got.Summary.Kinds["stat"] != 2 {
		t.Errorf("Expected 2 stat slides, got %d", got.Summary.Kinds["stat"])
	}
	if len(got.Slides) != 6 {
		t.Fatalf("Expected 6 slides, got %d", len(got.Slides))
	}
	if !got.Slides[1].Animated || got.Slides[2].Animated {
		t.Error("Expected only the parseable stat to be animated")
	}
	if got.Slides[3].Slide["src"] != "images/1.jpg" {
		t.Errorf("Expected photo source in slide fields, got %v", got.Slides[3].Slide)
	}
}

func TestMarkdownFormat(t *testing.T) {
	out, err := NewMarkdown().Format(testOutline(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	text := string(out)
	for _, want := range []string{"# 2025 The Lab", "| stat | 2 |", "| **Total** | **6** |", "### 4. Jellyfish", "- **Source:** images/1.jpg"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected markdown to contain %q:\n%s", want, text)
		}
	}
}

func TestCSVFormat(t *testing.T) {
	out, err := NewCSV().Format(testOutline(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("Invalid CSV: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("Expected header and 6 records, got %d", len(records))
	}
	if records[2][1] != "stat" || records[2][3] != "2,048" || records[2][4] != "cups" {
		t.Errorf("Unexpected stat record: %v", records[2])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"a\nb", 10, "a b"},
		{"abcdefghij", 8, "abcde..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
