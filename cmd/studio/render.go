package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campaign-studio/internal/core/domain"
	"campaign-studio/internal/studio"
)

var (
	headerColor  = lipgloss.Color("#F780FF") // Bright pink
	bodyColor    = lipgloss.Color("#E9E9F4") // Light purple/white
	mutedColor   = lipgloss.Color("#6272A4") // Muted purple
	noteColor    = lipgloss.Color("#F1FA8C") // Yellow
	errorColor   = lipgloss.Color("#FF5555") // Red
	successColor = lipgloss.Color("#50FA7B") // Green

	headerStyle  = lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(bodyColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	noteStyle    = lipgloss.NewStyle().Foreground(noteColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)

// renderResult formats every section of res the way the web page lays them
// out, with the copy key next to each title.
func renderResult(res *domain.CampaignResult) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	if res.Note != "" {
		b.WriteString(noteStyle.Render(res.Note))
		b.WriteString("\n\n")
	}
	for _, s := range studio.Sections(res) {
		title := headerStyle.Render(s.Title) + " " + mutedStyle.Render("[--copy "+s.Key+"]")
		body := bodyStyle.Render(sectionBody(res, s))
		b.WriteString(panelStyle.Render(title + "\n" + body))
		b.WriteString("\n")
	}
	return b.String()
}

func sectionBody(res *domain.CampaignResult, s studio.Section) string {
	switch s.Key {
	case studio.SectionHooks:
		lines := make([]string, len(res.Hooks))
		for i, h := range res.Hooks {
			lines[i] = "• " + h
		}
		return strings.Join(lines, "\n")
	case studio.SectionCaptions:
		blocks := make([]string, len(res.Captions))
		for i, c := range res.Captions {
			blocks[i] = fmt.Sprintf("Caption %d\n%s", i+1, c)
		}
		return strings.Join(blocks, "\n\n")
	default:
		return s.Copy
	}
}
