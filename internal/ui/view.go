package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/recap/internal/deck"
	"github.com/yildizm/recap/internal/emoji"
	"github.com/yildizm/recap/internal/player"
	"github.com/yildizm/recap/internal/ui/components"
)

// suggestionsRow is the first row of the suggestion cards on the main surface
const suggestionsRow = 8

func closeButtonLabel() string {
	return fmt.Sprintf("[%s close]", emoji.GetEmoji("close"))
}

func replayButtonLabel() string {
	return fmt.Sprintf("[%s replay]", emoji.GetEmoji("replay"))
}

func closeButtonWidth() int {
	return lipgloss.Width(closeButtonLabel())
}

func replayButtonWidth() int {
	return lipgloss.Width(replayButtonLabel())
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	switch {
	case m.surface.loading:
		return m.renderLoading()
	case m.surface.playing:
		return m.renderPlayer()
	default:
		return m.renderMain()
	}
}

// renderMain renders the prompt surface. Rows are fixed so mouse clicks can
// be mapped back to suggestion cards.
func (m *Model) renderMain() string {
	header := fmt.Sprintf("%s %s  %s",
		emoji.GetEmoji("calendar"),
		m.styles.Year.Render(m.cfg.Presentation.Year),
		m.styles.Team.Render(m.cfg.Presentation.TeamName))

	title := m.styles.Title.Render(fmt.Sprintf("What did %s do this year?", m.cfg.Presentation.TeamName))
	prompt := m.styles.Prompt.Width(promptWidth(m.width)).Render(m.prompt.View())

	rows := []string{
		header,
		"",
		title,
		"",
		prompt,
		"",
		m.suggestions.Render(),
		"",
		m.styles.Muted.Render("enter: start • tab: suggestions • esc: quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func promptWidth(width int) int {
	return min(60, max(20, width-4))
}

func (m *Model) renderLoading() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.Render())
}

// renderPlayer renders the control bar, the active slide, the progress bar
// and the footer
func (m *Model) renderPlayer() string {
	index, ok := m.surface.active()
	total := m.surface.deck.Len()

	counterText := ""
	if ok {
		counterText = fmt.Sprintf("%d/%d", index+1, total)
	}
	topBar := m.spread(m.styles.Control.Render(closeButtonLabel()), m.styles.Muted.Render(counterText))

	bodyHeight := max(1, m.height-3)
	body := ""
	if ok {
		body = m.renderSlide(index, m.surface.deck.At(index))
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)

	bar := components.NewProgressBar(max(0, m.width-8))
	bar.Filled = bar.Filled.Foreground(m.styles.Theme.Progress)
	bar.SetPercent(m.surface.progress)
	bar.Label = fmt.Sprintf("%3.0f%%", bar.Percent)

	footer := m.styles.Muted.Render(m.helpLine())
	if ok && m.onOutro() {
		footer = m.styles.Control.Render(replayButtonLabel())
	}

	return lipgloss.JoinVertical(lipgloss.Left, topBar, body, bar.Render(), footer)
}

func (m *Model) helpLine() string {
	keys := m.dispatcher.KeyMap().ShortHelp()
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		h := k.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	parts = append(parts, "click: left/right half")
	return strings.Join(parts, " • ")
}

// spread places left and right at the edges of one row
func (m *Model) spread(left, right string) string {
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderSlide(index int, slide deck.Slide) string {
	width := min(70, max(20, m.width-6))

	var content string
	switch s := slide.(type) {
	case deck.Intro:
		content = m.renderIntro(s)
	case deck.Stat:
		content = m.renderStat(index, s, width)
	case deck.Photo:
		content = m.renderPhoto(s, width)
	case deck.Text:
		content = m.styles.Body.Width(width).Align(lipgloss.Center).Render(s.Content)
	case deck.Outro:
		content = m.renderOutro(s)
	default:
		return ""
	}

	return m.styles.Slide.Render(content)
}

func (m *Model) renderIntro(s deck.Intro) string {
	lines := []string{
		m.styles.Year.Render(m.cfg.Presentation.Year),
		m.styles.Team.Render(m.cfg.Presentation.TeamName),
		"",
		m.styles.Title.Render(s.Title),
	}
	if s.Subtitle != "" {
		lines = append(lines, m.styles.Subtitle.Render(s.Subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderStat(index int, s deck.Stat, width int) string {
	icon := s.Icon
	if emoji.IsEmojiDisabled() {
		icon = ""
	}

	value, ok := m.surface.statValues[index]
	if !ok {
		value = s.Value
	}

	card := components.NewStatCard(icon, s.Label, value, s.Unit).SetComment(s.Comment)
	card.Width = width
	card.LabelStyle = m.styles.Body
	card.ValueStyle = m.styles.Value
	card.UnitStyle = m.styles.Muted
	card.CommentStyle = m.styles.Subtitle
	return card.Render()
}

func (m *Model) renderPhoto(s deck.Photo, width int) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.styles.Theme.Dim).
		Width(width-4).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s %s", emoji.GetEmoji("photo"), s.Source))

	if s.Caption == "" {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Center, frame, "", m.styles.Subtitle.Render(s.Caption))
}

func (m *Model) renderOutro(s deck.Outro) string {
	lines := []string{m.styles.Title.Render(fmt.Sprintf("%s %s", emoji.GetEmoji("outro"), s.Thanks))}
	if s.Message != "" {
		lines = append(lines, "", m.styles.Body.Render(s.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// positionsSummary is used in debug logs
func positionsSummary(ps []player.Position) string {
	var b strings.Builder
	for _, p := range ps {
		switch p {
		case player.PositionBefore:
			b.WriteByte('<')
		case player.PositionActive:
			b.WriteByte('*')
		default:
			b.WriteByte('>')
		}
	}
	return b.String()
}
