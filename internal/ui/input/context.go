package input

import (
	"faqdesk/internal/search"
	"faqdesk/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	View  search.View
}

// TotalItems returns the number of results in the current view
func (c *ModelContext) TotalItems() int {
	return len(c.View.Results)
}

// CurrentFAQID returns the FAQ under the cursor
func (c *ModelContext) CurrentFAQID() (int, bool) {
	i := c.State.SelectedIndex
	if i < 0 || i >= len(c.View.Results) {
		return 0, false
	}
	return c.View.Results[i].FAQ.ID, true
}

func (c *ModelContext) IsExpanded(faqID int) bool {
	return c.State.Expanded[faqID]
}

func (c *ModelContext) RawQuery() string {
	return c.View.RawQuery
}

func (c *ModelContext) ShowingHelp() bool {
	return c.State.ShowHelp
}
