package formatter

import (
	"encoding/json"

	"github.com/yildizm/recap/internal/deck"
)

// jsonFormatter formats the outline as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(outline *Outline) ([]byte, error) {
	output := &OutlineOutput{
		Summary: createSummary(outline),
		Slides:  createSlideOutputs(outline.Deck),
	}

	return json.MarshalIndent(output, "", "  ")
}

// OutlineOutput represents the JSON outline structure
type OutlineOutput struct {
	Summary *SummaryOutput `json:"summary"`
	Slides  []*SlideOutput `json:"slides"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Year     string            `json:"year"`
	TeamName string            `json:"team_name"`
	Slides   int               `json:"slides"`
	Kinds    map[deck.Kind]int `json:"kinds"`
}

// SlideOutput represents one slide; Slide carries the kind-specific fields
type SlideOutput struct {
	Index    int        `json:"index"`
	Kind     deck.Kind  `json:"kind"`
	Title    string     `json:"title"`
	Animated bool       `json:"animated"`
	Slide    deck.Slide `json:"slide"`
}

func createSummary(outline *Outline) *SummaryOutput {
	return &SummaryOutput{
		Year:     outline.Year,
		TeamName: outline.TeamName,
		Slides:   outline.Deck.Len(),
		Kinds:    outline.Deck.Counts(),
	}
}

func createSlideOutputs(d *deck.Deck) []*SlideOutput {
	slides := d.Slides()
	outputs := make([]*SlideOutput, 0, len(slides))
	for i, s := range slides {
		animated := false
		if stat, ok := s.(deck.Stat); ok {
			_, animated = stat.Target()
		}
		outputs = append(outputs, &SlideOutput{
			Index:    i,
			Kind:     s.Kind(),
			Title:    slideTitle(s),
			Animated: animated,
			Slide:    s,
		})
	}
	return outputs
}
