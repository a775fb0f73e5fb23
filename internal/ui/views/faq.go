package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"faqdesk/internal/search"
)

// FAQRenderer handles rendering of a single result row and its inline answer
type FAQRenderer struct {
	styles   *Styles
	showTags bool
}

// NewFAQRenderer creates a new FAQ renderer
func NewFAQRenderer(styles *Styles, showTags bool) *FAQRenderer {
	return &FAQRenderer{
		styles:   styles,
		showTags: showTags,
	}
}

// RowState carries the per-row flags the renderer needs
type RowState struct {
	Selected bool
	Expanded bool
	Voted    bool
	Helpful  bool
	Query    string // committed query, highlighted in the question
	Ranked   bool   // show the relevance score
	Width    int
}

// RenderFAQ renders one result. Expanded rows are followed by the wrapped answer.
func (r *FAQRenderer) RenderFAQ(res search.Result, row RowState) string {
	faq := res.FAQ

	bg := lipgloss.NewStyle()
	if row.Selected {
		bg = r.styles.SelectionBg
	}
	normal := bg
	hl := r.styles.Highlight.Inherit(bg)

	marker := "▸"
	if row.Expanded {
		marker = "▾"
	}

	var parts []string
	parts = append(parts, bg.Render(marker+" "))
	parts = append(parts, highlightMatch(faq.Question, row.Query, hl, normal))

	if r.showTags && len(faq.Tags) > 0 {
		parts = append(parts, bg.Render(" "))
		parts = append(parts, r.styles.Tag.Inherit(bg).Render("#"+strings.Join(faq.Tags, " #")))
	}

	if faq.Helpful > 0 {
		parts = append(parts, r.styles.Dim.Inherit(bg).Render(fmt.Sprintf(" (%d found this helpful)", faq.Helpful)))
	}
	if row.Voted {
		mark := " [+]"
		if !row.Helpful {
			mark = " [-]"
		}
		parts = append(parts, bg.Render(mark))
	}
	if row.Ranked {
		parts = append(parts, r.styles.Score.Inherit(bg).Render(fmt.Sprintf(" [%.1f]", res.Score)))
	}

	line := strings.Join(parts, "")
	if !row.Expanded {
		return line
	}

	answer := faq.Answer
	if strings.TrimSpace(answer) == "" {
		answer = "(no answer yet)"
	}
	box := r.styles.AnswerBox
	if row.Width > 12 {
		box = box.Width(row.Width - 12)
	}
	return line + "\n" + box.Render(answer)
}

// highlightMatch renders the first case-insensitive occurrence of query in text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lower-casing can change byte lengths outside ASCII; skip highlighting then
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
