package ui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"coursepage/internal/autoplay"
	"coursepage/internal/carousel"
	"coursepage/internal/config"
	"coursepage/internal/content"
	"coursepage/internal/domain"
	"coursepage/internal/eventbus"
	"coursepage/internal/ui/input"
	"coursepage/internal/ui/input/types"
	"coursepage/internal/ui/state"
	"coursepage/internal/ui/viewmodels"
	"coursepage/internal/ui/views"
)

// ReadyMarker is appended to the status line when Options.E2E is set so pty tests can
// wait for the first real frame
const ReadyMarker = "__READY__"

// Options configures a Model
type Options struct {
	Bus      eventbus.EventBus
	Config   *config.Config
	Page     *domain.Page
	Markdown *content.Markdown
	Clock    clockwork.Clock // nil uses the real clock
	Logger   *zap.Logger
	E2E      bool
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	log    *zap.Logger

	// UI-specific state not in AppState
	width    int
	height   int
	help     help.Model
	viewport viewport.Model
	spans    []views.SectionSpan // where each section sits in the viewport content
	e2e      bool

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pager        *PagerOps
	program      *tea.Program

	// Autoplay, one driver per mounted carousel
	clock     clockwork.Clock
	drivers   map[string]*autoplay.Driver
	ticks     chan autoplay.Tick
	done      chan struct{}
	closeOnce sync.Once
}

// NewModel creates a new UI model and mounts the autoplay of every carousel on the page
func NewModel(opts Options) (*Model, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Page == nil {
		return nil, errors.New("ui: no page")
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Markdown == nil {
		opts.Markdown = content.NewMarkdown(opts.Config.UI.GlamourStyle)
	}

	appState, err := state.NewAppState(opts.Page)
	if err != nil {
		return nil, err
	}

	inputHandler := input.New()
	helpModel := help.New()

	m := &Model{
		bus:          opts.Bus,
		config:       opts.Config,
		state:        appState,
		log:          opts.Logger.Named("ui"),
		help:         helpModel,
		viewport:     viewport.New(0, 0),
		e2e:          opts.E2E,
		renderer:     views.NewRenderer(opts.Markdown),
		inputHandler: inputHandler,
		clock:        opts.Clock,
		drivers:      make(map[string]*autoplay.Driver),
		ticks:        make(chan autoplay.Tick, 16),
		done:         make(chan struct{}),
	}
	m.viewModel = viewmodels.NewViewModel(appState, opts.Config, inputHandler.Keys())
	m.viewModel.SetHelp(helpModel)
	m.mountDrivers()
	return m, nil
}

// SetProgram sets the tea.Program reference used to suspend the UI for the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.listenTicks(), tea.SetWindowTitle(m.state.Page.Title))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.viewModel.SetHelp(m.help)
		m.resizeViewport()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}
		actions := m.inputHandler.HandleKey(msg, ctx)

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case autoplayTickMsg:
		m.handleTick(msg.tick)
		return m, m.listenTicks()

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn("pager failed", zap.Error(msg.err))
			m.state.SetStatus(fmt.Sprintf("Pager error: %v", msg.err), true)
		}
		return m, nil
	}
	return m, nil
}

// View renders the model
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	vs := m.viewState()
	vs.Body = m.viewport.View()
	vs.ScrollPercent = m.viewport.ScrollPercent()
	if m.e2e {
		vs.StatusMessage += " " + ReadyMarker
	}
	return m.renderer.Render(vs)
}

// Close unmounts every carousel and stops listening for ticks. Safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.unmountDrivers()
		close(m.done)
	})
}

// State exposes the application state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

func (m *Model) viewState() views.ViewState {
	m.viewModel.SetModeName(m.inputHandler.ModeName(&input.ModelContext{State: m.state}))
	return m.viewModel.BuildViewState()
}

// refresh re-renders the page into the viewport after any state change
func (m *Model) refresh() {
	if m.width == 0 {
		return
	}
	body, spans := m.renderer.RenderPage(m.viewState())
	m.viewport.SetContent(body)
	m.spans = spans
}

func (m *Model) resizeViewport() {
	h := m.height - m.renderer.ChromeHeight(m.viewState())
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.ScrollAction:
		m.scroll(a.Direction)

	case types.FocusAction:
		prev := m.state.FocusedID()
		m.state.FocusBy(a.Delta)
		m.focusChanged(prev)

	case types.BlurAction:
		prev := m.state.FocusedID()
		m.state.Blur()
		m.focusChanged(prev)

	case types.AdvanceAction:
		m.moveCarousel(domain.CauseAdvance, func(c *carousel.Controller) error { c.Advance(); return nil })
	case types.RetreatAction:
		m.moveCarousel(domain.CauseRetreat, func(c *carousel.Controller) error { c.Retreat(); return nil })
	case types.JumpAction:
		m.moveCarousel(domain.CauseJump, func(c *carousel.Controller) error { return c.JumpTo(a.Index) })

	case types.MoveCursorAction:
		id := m.state.FocusedID()
		ctrl := m.state.Accordions[id]
		if ctrl == nil {
			return nil
		}
		cur := m.state.PanelCursor[id] + a.Delta
		m.state.PanelCursor[id] = max(0, min(cur, ctrl.Len()-1))

	case types.TogglePanelAction:
		m.togglePanel(a.Index)

	case types.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.resizeViewport()

	case types.OpenPagerAction:
		return m.openPager()

	case types.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

func (m *Model) scroll(direction string) {
	switch direction {
	case "up":
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case "down":
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case "pageup":
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case "pagedown":
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case "home":
		m.viewport.GotoTop()
	case "end":
		m.viewport.GotoBottom()
	}
}

func (m *Model) moveCarousel(cause domain.SlideCause, move func(*carousel.Controller) error) {
	id := m.state.FocusedID()
	ctrl := m.state.Carousels[id]
	if ctrl == nil {
		return
	}
	from := ctrl.ActiveIndex()
	if err := move(ctrl); err != nil {
		m.state.SetStatus(err.Error(), true)
		return
	}
	m.publishSlide(id, from, ctrl.ActiveIndex(), cause)
}

func (m *Model) publishSlide(id string, from, to int, cause domain.SlideCause) {
	if from == to {
		return
	}
	m.publish(domain.SlideChangedEvent{SectionID: id, From: from, To: to, Cause: cause})
}

func (m *Model) togglePanel(index int) {
	id := m.state.FocusedID()
	ctrl := m.state.Accordions[id]
	if ctrl == nil {
		return
	}
	if index < 0 {
		index = m.state.PanelCursor[id]
	}
	if err := ctrl.Toggle(index); err != nil {
		m.state.SetStatus(err.Error(), true)
		return
	}
	m.state.PanelCursor[id] = index
	m.publish(domain.PanelToggledEvent{SectionID: id, Index: index, Open: ctrl.IsOpen(index)})
}

// focusChanged hands hover from the previously focused carousel to the newly focused one
// and scrolls the new section into view
func (m *Model) focusChanged(prev string) {
	next := m.state.FocusedID()
	if prev == next {
		return
	}
	m.setHover(prev, false)
	m.setHover(next, true)

	if next == "" {
		return
	}
	if sec := m.state.Section(next); sec != nil {
		m.publish(domain.SectionFocusedEvent{SectionID: next, Kind: sec.Kind()})
	}
	m.refresh()
	m.scrollIntoView(next)
}

func (m *Model) setHover(id string, hovering bool) {
	if !m.config.Autoplay.PauseOnFocus {
		return
	}
	d := m.drivers[id]
	if d == nil || d.Hovering() == hovering {
		return
	}
	d.SetHover(hovering)
	m.publish(domain.AutoplayPausedEvent{SectionID: id, Paused: hovering})
}

func (m *Model) scrollIntoView(id string) {
	for _, span := range m.spans {
		if span.ID != id {
			continue
		}
		top := m.viewport.YOffset
		bottom := top + m.viewport.Height
		if span.Start < top || span.End > bottom {
			m.viewport.SetYOffset(span.Start)
		}
		return
	}
}

// handleMouse scrolls on the wheel and focuses the section under a left click.
// Clicking outside an interactive section clears focus, which resumes autoplay.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	// the title bar takes the first row; clicks outside the viewport are ignored
	if msg.Y < 1 || msg.Y > m.viewport.Height {
		return nil
	}
	line := msg.Y - 1 + m.viewport.YOffset
	prev := m.state.FocusedID()
	m.state.Blur()
	for _, span := range m.spans {
		if span.Contains(line) && domain.IsInteractive(span.Kind) {
			m.state.FocusID(span.ID)
			break
		}
	}
	m.focusChanged(prev)
	m.refresh()
	return nil
}

func (m *Model) handleTick(t autoplay.Tick) {
	for id, d := range m.drivers {
		from := d.Controller().ActiveIndex()
		if d.HandleTick(t) {
			m.publishSlide(id, from, d.Controller().ActiveIndex(), domain.CauseAutoplay)
			m.refresh()
			return
		}
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case domain.ContentReloadedEvent:
		if err := m.reload(e.Page); err != nil {
			m.log.Error("apply reloaded content", zap.Error(err))
			m.state.SetStatus(fmt.Sprintf("Reload failed: %v", err), true)
			return
		}
		m.state.SetStatus(fmt.Sprintf("Reloaded %s", e.Path), false)
	case domain.ContentInvalidEvent:
		m.state.SetStatus(fmt.Sprintf("Invalid content in %s: %v", e.Path, e.Err), true)
	case domain.ErrorEvent:
		m.state.SetStatus(e.Message, true)
	}
}

// reload swaps in a new page: the old carousels are unmounted, fresh controllers are
// mounted for the new item counts and focus stays on the same section id when it still exists
func (m *Model) reload(page *domain.Page) error {
	next, err := state.NewAppState(page)
	if err != nil {
		return err
	}
	focused := m.state.FocusedID()
	next.ShowHelp = m.state.ShowHelp

	m.unmountDrivers()
	m.state = next
	m.viewModel.SetState(next)
	m.mountDrivers()

	if focused != "" && next.FocusID(focused) {
		m.setHover(focused, true)
	}
	m.refresh()
	return nil
}

func (m *Model) mountDrivers() {
	opts := autoplay.Options{
		Clock:    m.clock,
		Interval: m.config.Autoplay.Interval(),
		Disabled: !m.config.Autoplay.Enabled,
	}
	for id, ctrl := range m.state.Carousels {
		d := autoplay.NewDriver(ctrl, opts, m.notify)
		d.Mount()
		m.drivers[id] = d
	}
}

func (m *Model) unmountDrivers() {
	for id, d := range m.drivers {
		d.Unmount()
		delete(m.drivers, id)
	}
}

// notify runs on a timer goroutine; a full channel drops the tick
func (m *Model) notify(t autoplay.Tick) {
	select {
	case m.ticks <- t:
	default:
		m.log.Debug("autoplay tick dropped")
	}
}

// listenTicks waits for the next autoplay tick
func (m *Model) listenTicks() tea.Cmd {
	ticks, done := m.ticks, m.done
	return func() tea.Msg {
		select {
		case t := <-ticks:
			return autoplayTickMsg{tick: t}
		case <-done:
			return nil
		}
	}
}

func (m *Model) openPager() tea.Cmd {
	vs := m.viewModel.BuildViewState()
	vs.FocusedID = ""
	if vs.Width == 0 {
		vs.Width = 100
	}
	text, _ := m.renderer.RenderPage(vs)
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{err: pager.Show(text)}
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
