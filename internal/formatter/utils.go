package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/recap/internal/deck"
)

var kindOrder = []deck.Kind{deck.KindIntro, deck.KindStat, deck.KindPhoto, deck.KindText, deck.KindOutro}

// slideTitle returns the one-line summary of a slide
func slideTitle(s deck.Slide) string {
	switch s := s.(type) {
	case deck.Intro:
		return s.Title
	case deck.Stat:
		return strings.TrimSpace(fmt.Sprintf("%s %s %s", s.Label, s.Value, s.Unit))
	case deck.Photo:
		if s.Caption != "" {
			return s.Caption
		}
		return s.Source
	case deck.Text:
		return truncate(s.Content, 60)
	case deck.Outro:
		return s.Thanks
	}
	return ""
}

// slideDetails returns the label/value pairs shown under a slide
func slideDetails(s deck.Slide) [][2]string {
	switch s := s.(type) {
	case deck.Intro:
		return nonEmpty([2]string{"Subtitle", s.Subtitle})
	case deck.Stat:
		value := s.Value
		if _, ok := s.Target(); !ok {
			value += " (not animated)"
		}
		return nonEmpty(
			[2]string{"Value", value},
			[2]string{"Comment", s.Comment},
		)
	case deck.Photo:
		return nonEmpty([2]string{"Source", s.Source})
	case deck.Outro:
		return nonEmpty([2]string{"Message", s.Message})
	}
	return nil
}

func nonEmpty(pairs ...[2]string) [][2]string {
	var out [][2]string
	for _, p := range pairs {
		if p[1] != "" {
			out = append(out, p)
		}
	}
	return out
}

// kindEmoji returns the symbol for a slide kind using go-termfmt
func kindEmoji(kind deck.Kind, opts *termfmt.TerminalOptions) string {
	switch kind {
	case deck.KindStat:
		return termfmt.GetEmoji("statistics", opts)
	case deck.KindIntro, deck.KindOutro:
		return termfmt.GetEmoji("insight", opts)
	default:
		return termfmt.GetEmoji("info", opts)
	}
}

// truncate shortens s to n runes on a single line
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
