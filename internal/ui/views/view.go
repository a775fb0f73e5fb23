package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"faqdesk/internal/search"
	"faqdesk/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Engine output
	Search       search.View
	TotalRecords int
	Suggestions  []string

	// Cursor and popups
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Expanded       map[int]bool
	Votes          map[int]bool
	ShowHelp       bool
	HelpContent    string
	StatusMessage  string
	StatusKind     state.StatusKind

	// Input
	Mode        string // name of the active text mode, empty in normal mode
	InputPrompt string // non-empty while the search box has focus
	TextInput   string // rendered text input
	Spinner     string // current spinner frame
	KeyHelp     string // short key help rendered by the help bubble

	ShowCounts bool
	Ready      bool // emit the ready marker used by the terminal tests
}

// ReadyMarker is printed once the first frame with data is drawn when running under the e2e harness
const ReadyMarker = "__READY__"

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	faqRender   *FAQRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showTags bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		faqRender:   NewFAQRenderer(styles, showTags),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles for popups built elsewhere
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(vs))
	content.WriteString("\n\n")
	content.WriteString(r.renderTabs(vs))
	content.WriteString("\n")

	if vs.InputPrompt != "" {
		content.WriteString(r.styles.Prompt.Render(vs.InputPrompt))
		content.WriteString(vs.TextInput)
		content.WriteString("\n")
	} else if vs.Search.RawQuery != "" {
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("Search: %s  (/ to edit, esc to clear)", vs.Search.RawQuery)))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	switch {
	case vs.TotalRecords == 0:
		content.WriteString(r.styles.Dim.Render("No FAQs loaded."))
	case !vs.Search.HasResults:
		content.WriteString(r.renderEmpty(vs))
	default:
		content.WriteString(r.renderResultList(vs))
	}

	if vs.StatusMessage != "" {
		content.WriteString("\n\n")
		content.WriteString(r.statusStyle(vs.StatusKind).Render(vs.StatusMessage))
	}

	if !vs.ShowHelp && vs.KeyHelp != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := vs.Height - 2 // Main padding
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(vs.KeyHelp))
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if vs.ShowHelp && vs.HelpContent != "" {
		finalContent = r.popupRender.RenderPopupOverlay(finalContent, vs.HelpContent, vs.Height, vs.Width, r.styles.InfoBox)
	}

	if vs.Ready {
		finalContent += "\n" + ReadyMarker
	}
	return finalContent
}

func (r *Renderer) renderTitleLine(vs ViewState) string {
	logo := r.styles.Title.Render("faqdesk")

	var right []string
	if vs.Mode != "" {
		right = append(right, r.styles.Filter.Render(strings.ToUpper(vs.Mode)))
	}
	if vs.Search.Searching {
		right = append(right, r.styles.Dim.Render(vs.Spinner+" Searching"))
	}
	if vs.Search.CommittedQuery != "" {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", vs.Search.CommittedQuery)))
	}
	if vs.ShowCounts {
		right = append(right, r.styles.Count.Render(fmt.Sprintf("%d of %d", vs.Search.ResultCount, vs.TotalRecords)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

func (r *Renderer) renderTabs(vs ViewState) string {
	tabs := make([]string, 0, len(vs.Search.Categories))
	for _, c := range vs.Search.Categories {
		if c == vs.Search.SelectedCategory {
			tabs = append(tabs, r.styles.ActiveTab.Render(c))
		} else {
			tabs = append(tabs, r.styles.Tab.Render(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (r *Renderer) renderEmpty(vs ViewState) string {
	var b strings.Builder
	if vs.Search.CommittedQuery != "" {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("No FAQs match %q", vs.Search.CommittedQuery)))
	} else {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("No FAQs in %s", vs.Search.SelectedCategory)))
	}
	if len(vs.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Did you mean: "))
		items := make([]string, len(vs.Suggestions))
		for i, s := range vs.Suggestions {
			items[i] = r.styles.Suggestion.Render(s)
		}
		b.WriteString(strings.Join(items, r.styles.Dim.Render(", ")))
	}
	return b.String()
}

// renderResultList renders the visible window of results with scroll indicators
func (r *Renderer) renderResultList(vs ViewState) string {
	results := vs.Search.Results
	height := vs.ViewportHeight
	if height <= 0 {
		height = len(results)
	}

	start := vs.ViewportOffset
	if start < 0 || start >= len(results) {
		start = 0
	}
	end := start + height
	if start > 0 {
		end--
	}
	if end < len(results) {
		end--
	}
	if end <= start {
		end = start + 1
	}
	if end > len(results) {
		end = len(results)
	}

	// Matching results always score above zero; unranked lists carry zero scores
	ranked := len(results) > 0 && results[0].Score > 0
	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", start)))
	}
	for i := start; i < end; i++ {
		res := results[i]
		helpful, voted := vs.Votes[res.FAQ.ID]
		lines = append(lines, r.faqRender.RenderFAQ(res, RowState{
			Selected: i == vs.SelectedIndex,
			Expanded: vs.Expanded[res.FAQ.ID],
			Voted:    voted,
			Helpful:  helpful,
			Query:    vs.Search.CommittedQuery,
			Ranked:   ranked,
			Width:    vs.Width,
		}))
	}
	if end < len(results) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", len(results)-end)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) statusStyle(kind state.StatusKind) lipgloss.Style {
	switch kind {
	case state.StatusError:
		return r.styles.StatusError
	case state.StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.StatusInfo
	}
}
