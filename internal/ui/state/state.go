package state

// StatusKind classifies the status line so the view can color it
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// AppState contains the view-side state that the search engine does not own.
// Query, category and results live in the engine; this only tracks the cursor,
// expansion and popups.
type AppState struct {
	// Selection state
	SelectedIndex int // index into the current result list

	// UI state
	ViewportOffset int // first visible result
	ViewportHeight int // available rows for the result list
	ShowHelp       bool
	StatusMessage  string
	StatusKind     StatusKind

	// FAQ state
	Expanded map[int]bool // FAQ id -> answer shown inline
	Votes    map[int]bool // FAQ id -> helpful vote cast this session
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Expanded:       make(map[int]bool),
		Votes:          make(map[int]bool),
		ViewportHeight: 20, // Default
	}
}

// ToggleExpanded flips the inline answer of an FAQ and reports the new state
func (s *AppState) ToggleExpanded(faqID int) bool {
	if s.Expanded[faqID] {
		delete(s.Expanded, faqID)
		return false
	}
	s.Expanded[faqID] = true
	return true
}

// RecordVote remembers the last vote cast on an FAQ
func (s *AppState) RecordVote(faqID int, helpful bool) {
	s.Votes[faqID] = helpful
}

// Vote returns the vote cast on an FAQ this session, if any
func (s *AppState) Vote(faqID int) (helpful bool, voted bool) {
	helpful, voted = s.Votes[faqID]
	return helpful, voted
}

// SetStatus replaces the status line
func (s *AppState) SetStatus(kind StatusKind, msg string) {
	s.StatusKind = kind
	s.StatusMessage = msg
}

// ResetSelection moves the cursor back to the top of the list
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// ClampSelection keeps the cursor inside a list of total items
func (s *AppState) ClampSelection(total int) {
	if s.SelectedIndex >= total {
		s.SelectedIndex = total - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.ViewportOffset > s.SelectedIndex {
		s.ViewportOffset = s.SelectedIndex
	}
}
