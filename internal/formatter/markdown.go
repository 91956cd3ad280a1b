package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/recap/internal/deck"
)

// markdownFormatter formats the outline as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(outline *Outline) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", outline.Year, escapeMarkdown(outline.TeamName))

	f.writeSummaryTable(&b, outline)
	f.writeSlideSections(&b, outline.Deck)

	return []byte(b.String()), nil
}

// writeSummaryTable writes slide counts per kind
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, outline *Outline) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Kind | Slides |\n")
	b.WriteString("|------|--------|\n")

	counts := outline.Deck.Counts()
	for _, kind := range kindOrder {
		if counts[kind] == 0 {
			continue
		}
		fmt.Fprintf(b, "| %s | %d |\n", kind, counts[kind])
	}
	fmt.Fprintf(b, "| **Total** | **%d** |\n\n", outline.Deck.Len())
}

func (f *markdownFormatter) writeSlideSections(b *strings.Builder, d *deck.Deck) {
	b.WriteString("## Slides\n\n")

	for i, s := range d.Slides() {
		fmt.Fprintf(b, "### %d. %s\n\n", i+1, escapeMarkdown(slideTitle(s)))
		fmt.Fprintf(b, "- **Kind:** %s\n", s.Kind())
		for _, detail := range slideDetails(s) {
			fmt.Fprintf(b, "- **%s:** %s\n", detail[0], escapeMarkdown(detail[1]))
		}
		b.WriteString("\n")
	}
}

// escapeMarkdown escapes characters that would break tables and headings
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer("|", "\\|", "*", "\\*", "_", "\\_", "#", "\\#")
	return replacer.Replace(s)
}
