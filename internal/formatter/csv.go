package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yildizm/recap/internal/deck"
)

// csvFormatter formats one slide per CSV record
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(outline *Outline) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Index",
		"Kind",
		"Title",
		"Value",
		"Unit",
		"Detail",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, s := range outline.Deck.Slides() {
		value, unit, detail := "", "", ""
		switch s := s.(type) {
		case deck.Stat:
			value, unit, detail = s.Value, s.Unit, s.Comment
		case deck.Intro:
			detail = s.Subtitle
		case deck.Photo:
			detail = s.Source
		case deck.Outro:
			detail = s.Message
		}

		record := []string{
			fmt.Sprintf("%d", i+1),
			string(s.Kind()),
			truncate(slideTitle(s), 100),
			value,
			unit,
			truncate(detail, 100),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
