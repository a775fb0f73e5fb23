package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"faqdesk/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// The help popup swallows everything except its own close and pager keys
	if ctx.ShowingHelp() {
		switch msg.String() {
		case "ctrl+c":
			return []types.Action{types.QuitAction{}}, true
		case "?", "esc", "q":
			return []types.Action{types.ToggleHelpAction{}}, true
		case "o":
			return []types.Action{types.OpenHelpPagerAction{}}, true
		}
		return nil, true
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyUp:
		return navigate(ctx, "up")

	case tea.KeyDown:
		return navigate(ctx, "down")

	case tea.KeyPgUp:
		return navigate(ctx, "pageup")

	case tea.KeyPgDown:
		return navigate(ctx, "pagedown")

	case tea.KeyHome:
		return navigate(ctx, "home")

	case tea.KeyEnd:
		return navigate(ctx, "end")

	case tea.KeyTab, tea.KeyRight:
		return []types.Action{types.CycleCategoryAction{Delta: 1}}, true

	case tea.KeyShiftTab, tea.KeyLeft:
		return []types.Action{types.CycleCategoryAction{Delta: -1}}, true

	case tea.KeyEsc:
		// Esc folds the highlighted answer first, then drops an active search
		if id, ok := ctx.CurrentFAQID(); ok && ctx.IsExpanded(id) {
			return []types.Action{types.ToggleExpandAction{FAQID: id}}, true
		}
		if ctx.RawQuery() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, false

	case tea.KeyEnter:
		if id, ok := ctx.CurrentFAQID(); ok {
			return []types.Action{types.ToggleExpandAction{FAQID: id}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return navigate(ctx, "down")

	case "k":
		return navigate(ctx, "up")

	case "g":
		return navigate(ctx, "home")

	case "G":
		return navigate(ctx, "end")

	case "l":
		return []types.Action{types.CycleCategoryAction{Delta: 1}}, true

	case "h":
		return []types.Action{types.CycleCategoryAction{Delta: -1}}, true

	case " ":
		if id, ok := ctx.CurrentFAQID(); ok {
			return []types.Action{types.ToggleExpandAction{FAQID: id}}, true
		}
		return nil, false

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.RawQuery()}}, true

	case "+", "=":
		if id, ok := ctx.CurrentFAQID(); ok {
			return []types.Action{types.VoteAction{FAQID: id, Helpful: true}}, true
		}
		return nil, false

	case "-":
		if id, ok := ctx.CurrentFAQID(); ok {
			return []types.Action{types.VoteAction{FAQID: id, Helpful: false}}, true
		}
		return nil, false

	case "o":
		if id, ok := ctx.CurrentFAQID(); ok {
			return []types.Action{types.OpenAnswerAction{FAQID: id}}, true
		}
		return nil, false

	case "c":
		return []types.Action{types.ClearSearchAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

// navigate swallows movement keys while the list is empty
func navigate(ctx types.Context, direction string) ([]types.Action, bool) {
	if ctx.TotalItems() == 0 {
		return nil, true
	}
	return []types.Action{types.NavigateAction{Direction: direction}}, true
}
