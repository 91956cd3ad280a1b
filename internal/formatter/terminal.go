package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats the outline as a tree for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

// NewTerminalWithOptions creates a terminal formatter with explicit options
func NewTerminalWithOptions(opts *termfmt.TerminalOptions) Formatter {
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(outline *Outline) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, outline)
	f.writeSummary(&b, outline)
	f.writeSlides(&b, outline)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder, outline *Outline) {
	title := fmt.Sprintf("%s · %s", outline.Year, outline.TeamName)
	line := strings.Repeat("─", len([]rune(title))+2)
	fmt.Fprintf(b, "┌%s┐\n│ %s │\n└%s┘\n\n", line, title, line)
}

// writeSummary writes slide counts per kind with tree-style formatting
func (f *terminalFormatter) writeSummary(b *strings.Builder, outline *Outline) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Summary\n")

	counts := outline.Deck.Counts()
	items := []termfmt.TreeItem{
		{Label: "Slides", Value: fmt.Sprintf("%d", outline.Deck.Len())},
	}
	for _, kind := range kindOrder {
		if counts[kind] == 0 {
			continue
		}
		items = append(items, termfmt.TreeItem{Label: string(kind), Value: fmt.Sprintf("%d", counts[kind])})
	}
	items[len(items)-1].Last = true

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeSlides writes one tree entry per slide with its details as children
func (f *terminalFormatter) writeSlides(b *strings.Builder, outline *Outline) {
	symbol := termfmt.GetEmoji("help", f.opts)
	b.WriteString(symbol + " Slides\n")

	slides := outline.Deck.Slides()
	items := make([]termfmt.TreeItem, 0, len(slides))
	for i, s := range slides {
		var children []termfmt.TreeItem
		for _, d := range slideDetails(s) {
			children = append(children, termfmt.TreeItem{Label: d[0], Value: d[1]})
		}
		if len(children) > 0 {
			children[len(children)-1].Last = true
		}

		items = append(items, termfmt.TreeItem{
			Label:    fmt.Sprintf("%2d %s %s", i+1, kindEmoji(s.Kind(), f.opts), s.Kind()),
			Value:    slideTitle(s),
			Children: children,
			Last:     i == len(slides)-1,
		})
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}
