package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"faqdesk/internal/domain"
)

// ErrNoProgram is returned when the pager is opened before the program is attached
var ErrNoProgram = errors.New("program not set")

// pagerClosedMsg contains the result of a pager command
type pagerClosedMsg struct {
	title string
	err   error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent lists every binding grouped in the same columns as the help bubble
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []string{"Browse", "Search", "Feedback"}

	var help strings.Builder
	help.WriteString(titleStyle.Render("faqdesk help"))
	help.WriteString("\n")

	for i, group := range r.keys.FullHelp() {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(sections[i%len(sections)]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(keyStyle.Render(h.Key))
			help.WriteString(descStyle.Render(h.Desc))
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Faint(true).Render("? or esc to close, o to open in pager"))
	return help.String()
}

// RenderAnswerDocument formats an FAQ for the pager
func RenderAnswerDocument(faq domain.FAQ) string {
	var b strings.Builder
	b.WriteString(faq.Question)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(faq.Question))))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Category: %s\n", faq.Category)
	if len(faq.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:     %s\n", strings.Join(faq.Tags, ", "))
	}
	fmt.Fprintf(&b, "Helpful:  %d   Not helpful: %d\n\n", faq.Helpful, faq.NotHelpful)
	if faq.Answer == "" {
		b.WriteString("(no answer yet)\n")
	} else {
		b.WriteString(faq.Answer)
		b.WriteString("\n")
	}
	return b.String()
}

// PagerOps runs the ov pager on top of the Bubble Tea program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// Show pages content with ov, handing the terminal over for the duration
func (h *PagerOps) Show(content string) error {
	if h == nil || h.program == nil {
		return ErrNoProgram
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd runs the pager off the update loop and reports back when it closes
func pagerCmd(ops *PagerOps, title, content string) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{title: title, err: ops.Show(content)}
	}
}
