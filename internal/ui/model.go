package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"faqdesk/internal/catalog"
	"faqdesk/internal/config"
	"faqdesk/internal/domain"
	"faqdesk/internal/eventbus"
	"faqdesk/internal/search"
	"faqdesk/internal/ui/input"
	inputtypes "faqdesk/internal/ui/input/types"
	"faqdesk/internal/ui/logic"
	"faqdesk/internal/ui/state"
	"faqdesk/internal/ui/views"
	"faqdesk/internal/usage"
)

// E2EEnv marks a run under the terminal test harness
const E2EEnv = "FAQDESK_E2E_TEST"

// Rows taken by everything around the result list
const chromeHeight = 12

// Options wires the model to its collaborators
type Options struct {
	Config   *config.Config
	Bus      eventbus.EventBus // optional
	Catalog  catalog.Store
	Recorder *usage.Recorder // optional, a private in-memory recorder is used otherwise

	// SearchOptions are applied after the config-derived engine options,
	// tests use them to inject a scheduler
	SearchOptions []search.Option
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState
	catalog  catalog.Store
	recorder *usage.Recorder
	engine   *search.Engine

	width   int
	height  int
	help    help.Model
	keys    keyMap
	spinner spinner.Model
	// spinning is true while a spinner tick is in flight
	spinning bool
	total    int
	e2e      bool
	closed   bool

	navigator    *logic.Navigator
	renderer     *views.Renderer
	helpRender   *HelpRenderer
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for the commit hook and terminal management
	program atomic.Pointer[tea.Program]
}

// NewModel creates a new UI model and mounts a search engine over the catalog
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	recorder := opts.Recorder
	if recorder == nil {
		recorder = usage.NewRecorder(nil)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	keys := newKeyMap()
	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		state:        state.NewAppState(),
		catalog:      opts.Catalog,
		recorder:     recorder,
		help:         help.New(),
		keys:         keys,
		spinner:      sp,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowTags),
		helpRender:   NewHelpRenderer(keys),
		inputHandler: input.New(),
		e2e:          os.Getenv(E2EEnv) == "1",
	}

	var records []domain.FAQ
	if m.catalog != nil {
		records = m.catalog.Entries()
	}
	m.total = len(records)

	engineOpts := []search.Option{
		search.WithDebounce(time.Duration(cfg.Search.DebounceMs) * time.Millisecond),
		search.WithMinSearchLength(cfg.Search.MinSearchLength),
		search.WithCacheSize(cfg.Search.CacheSize),
	}
	engineOpts = append(engineOpts, opts.SearchOptions...)
	engineOpts = append(engineOpts, search.WithOnCommit(m.notifyCommit))
	m.engine = search.New(records, engineOpts...)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program.Store(p)
	m.pager = NewPagerOps(p)
}

// Engine exposes the mounted search engine
func (m *Model) Engine() *search.Engine {
	return m.engine
}

// Close tears down the engine. Safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.engine.Close()
}

// notifyCommit runs on the timer goroutine; it only hands the query to the program loop
func (m *Model) notifyCommit(query string) {
	if p := m.program.Load(); p != nil {
		p.Send(searchCommittedMsg{query: query})
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.ViewportHeight = msg.Height - chromeHeight
		if m.state.ViewportHeight < 3 {
			m.state.ViewportHeight = 3
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchCommittedMsg:
		// A clear or a newer commit may have landed while the message was queued
		if msg.query != m.engine.View().CommittedQuery {
			log.Printf("Dropping stale search commit for '%s'", msg.query)
			return m, nil
		}
		m.onCommitted(msg.query)
		return m, nil

	case spinner.TickMsg:
		if !m.engine.View().Searching {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Pager for %q failed: %v", msg.title, msg.err)
			m.state.SetStatus(state.StatusError, fmt.Sprintf("Could not open pager: %v", msg.err))
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := &input.ModelContext{State: m.state, View: m.engine.View()}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.handleAction(action, ctx.View))
	}
	return m, tea.Batch(cmds...)
}

// handleAction executes one input action. view is the engine output the key was resolved against.
func (m *Model) handleAction(action inputtypes.Action, view search.View) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset, m.state.ViewportHeight, len(view.Results))
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(a.Direction)

	case inputtypes.CycleCategoryAction:
		m.cycleCategory(view, a.Delta)

	case inputtypes.UpdateTextAction:
		m.engine.SetQuery(a.Text)
		return m.startSpinner()

	case inputtypes.SubmitTextAction:
		if m.engine.Commit() {
			m.onCommitted(m.engine.View().CommittedQuery)
		}

	case inputtypes.CancelTextAction:
		m.clearSearch()

	case inputtypes.ClearSearchAction:
		m.inputHandler.Reset()
		m.clearSearch()

	case inputtypes.ToggleExpandAction:
		if m.state.ToggleExpanded(a.FAQID) {
			m.recorder.RecordExpand(a.FAQID)
		}

	case inputtypes.VoteAction:
		m.recorder.RecordVote(a.FAQID, a.Helpful)
		m.state.RecordVote(a.FAQID, a.Helpful)
		m.state.SetStatus(state.StatusSuccess, "Thanks for your feedback")

	case inputtypes.OpenAnswerAction:
		faq, ok := m.lookup(a.FAQID, view)
		if !ok {
			return nil
		}
		m.recorder.RecordView(faq.ID)
		return pagerCmd(m.pager, faq.Question, RenderAnswerDocument(faq))

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.OpenHelpPagerAction:
		return pagerCmd(m.pager, "help", m.helpRender.RenderHelpContent())

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

func (m *Model) cycleCategory(view search.View, delta int) {
	cats := view.Categories
	if len(cats) == 0 {
		return
	}
	idx := 0
	for i, c := range cats {
		if c == view.SelectedCategory {
			idx = i
			break
		}
	}
	next := ((idx+delta)%len(cats) + len(cats)) % len(cats)
	m.engine.SetSelectedCategory(cats[next])
	m.state.ResetSelection()
}

func (m *Model) clearSearch() {
	m.engine.ClearSearch()
	m.state.ResetSelection()
	m.state.SetStatus(state.StatusInfo, "")
	if m.bus != nil {
		m.bus.Publish(eventbus.SearchClearedEvent{})
	}
}

// onCommitted runs on the program loop after a query was committed
func (m *Model) onCommitted(query string) {
	m.state.ResetSelection()

	view := m.engine.View()
	if strings.TrimSpace(query) != "" {
		m.recorder.RecordSearch(query, view.ResultCount)
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.SearchCommittedEvent{Query: query})
	}
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch ev := event.(type) {
	case eventbus.CatalogReloadedEvent:
		m.engine.SetRecords(ev.Entries)
		m.total = len(ev.Entries)
		m.state.ClampSelection(m.engine.View().ResultCount)
		status := fmt.Sprintf("Catalog reloaded: %d FAQs", len(ev.Entries))
		if m.catalog != nil {
			status += fmt.Sprintf(" from %s (revision %d)", filepath.Base(m.catalog.Source()), m.catalog.Generation())
		}
		m.state.SetStatus(state.StatusSuccess, status)
	case eventbus.ErrorEvent:
		m.state.SetStatus(state.StatusError, ev.Message)
	}
}

// lookup prefers the catalog store so the pager shows the freshest copy
func (m *Model) lookup(id int, view search.View) (domain.FAQ, bool) {
	if m.catalog != nil {
		if faq, ok := m.catalog.Get(id); ok {
			return faq, true
		}
	}
	for _, r := range view.Results {
		if r.FAQ.ID == id {
			return r.FAQ, true
		}
	}
	return domain.FAQ{}, false
}

// View renders the model
func (m *Model) View() string {
	if m.closed {
		return ""
	}

	view := m.engine.View()

	selected := m.state.SelectedIndex
	if selected >= len(view.Results) {
		selected = len(view.Results) - 1
	}
	if selected < 0 {
		selected = 0
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Search:         view,
		TotalRecords:   m.total,
		SelectedIndex:  selected,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Expanded:       m.state.Expanded,
		Votes:          m.state.Votes,
		ShowHelp:       m.state.ShowHelp,
		StatusMessage:  m.state.StatusMessage,
		StatusKind:     m.state.StatusKind,
		Spinner:        m.spinner.View(),
		ShowCounts:     m.config.UISettings.ShowCounts,
		Ready:          m.e2e,
	}

	if m.state.ShowHelp {
		vs.HelpContent = m.helpRender.RenderHelpContent()
	} else {
		vs.KeyHelp = m.help.View(m.keys)
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.Mode = m.inputHandler.ModeName()
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.TextInput = ti.View()
	}

	if !view.HasResults && strings.TrimSpace(view.CommittedQuery) != "" {
		vs.Suggestions = m.engine.Suggestions(3)
	}

	return m.renderer.Render(vs)
}
