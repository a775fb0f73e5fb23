package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// CycleCategoryAction moves the category tab selection by Delta, wrapping around.
type CycleCategoryAction struct {
	Delta int
}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// FAQ actions
type ToggleExpandAction struct {
	FAQID int
}

func (a ToggleExpandAction) Type() string { return "toggle_expand" }

type VoteAction struct {
	FAQID   int
	Helpful bool
}

func (a VoteAction) Type() string { return "vote" }

type OpenAnswerAction struct {
	FAQID int
}

func (a OpenAnswerAction) Type() string { return "open_answer" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
