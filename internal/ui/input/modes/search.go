package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"faqdesk/internal/ui/input/types"
)

// SearchMode edits the live query. Every keystroke becomes an UpdateTextAction that
// feeds the debounced engine; enter commits right away and esc clears the search.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
