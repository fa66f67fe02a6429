// Package tui is the Bubble Tea binding over the hush core: one page
// visible at a time, the router deciding which, and the shared Service
// doing all the real work.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/breath"
	"tableflip.dev/hush/pkg/draft"
	"tableflip.dev/hush/pkg/mood"
	"tableflip.dev/hush/pkg/notify"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/request"
	"tableflip.dev/hush/pkg/review"
	"tableflip.dev/hush/pkg/router"
	"tableflip.dev/hush/pkg/safety"
	"tableflip.dev/hush/pkg/sound"
	"tableflip.dev/hush/pkg/timeutil"
	"tableflip.dev/hush/pkg/tui/theme"
)

// Model states
type mode int

const (
	modeNav mode = iota
	modeWrite
	modeShare
	modeReview
	modeRequest
	modeCrisis
)

// messages
type errMsg struct{ err error }
type notifyShownMsg struct{ n notify.Notification }
type notifyClearedMsg struct{}
type breathPhaseMsg struct {
	phase   breath.Phase
	elapsed int
}
type breathStopMsg struct{ completed bool }
type storeChangedMsg struct{ ev profile.Event }
type feedRefreshedMsg struct{}
type refreshRequestMsg struct{}
type submittedMsg struct {
	what string
	err  error
}

// requestField indexes the sequential session-request form.
type requestField int

const (
	fieldSessionType requestField = iota
	fieldContactMethod
	fieldContact
	fieldMessage
	fieldPreferredTime
	fieldCount
)

// teaSink forwards presenter events into the program loop.
type teaSink struct{ ch chan tea.Msg }

func (s teaSink) Show(n notify.Notification) {
	select {
	case s.ch <- notifyShownMsg{n}:
	default:
	}
}

func (s teaSink) Clear() {
	select {
	case s.ch <- notifyClearedMsg{}:
	default:
	}
}

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	mode   mode
	events chan tea.Msg

	th theme.Theme

	area  textarea.Model
	input textinput.Model

	moodIndex int
	feedIndex int

	form      request.Form
	field     requestField
	formMarks map[string]bool
	mailto    string

	breathPhase   breath.Phase
	breathElapsed int

	resource safety.Resource

	notification *notify.Notification

	termWidth  int
	termHeight int
}

// Events returns the channel collaborators push program messages into.
func (m Model) Events() chan tea.Msg { return m.events }

// New wires a model over the Service. The service's presenter sink and
// breathing observer are rebound to feed the program loop.
func New(svc *app.Service) Model {
	events := make(chan tea.Msg, 32)

	svc.Presenter = notify.NewPresenter(svc.Clock, teaSink{ch: events})
	svc.Breathing.Observer = breath.Observer{
		OnPhase: func(p breath.Phase, elapsed int) {
			select {
			case events <- breathPhaseMsg{phase: p, elapsed: elapsed}:
			default:
			}
		},
		OnStop: func(completed bool) {
			select {
			case events <- breathStopMsg{completed: completed}:
			default:
			}
		},
	}

	ta := textarea.New()
	ta.Placeholder = "Let it out. Nobody reads this but you."
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(10)

	ti := textinput.New()
	ti.CharLimit = review.MaxLen
	ti.Prompt = ""

	p, _ := svc.Store.Get()

	m := Model{
		svc:     svc,
		ctx:     context.Background(),
		mode:    modeNav,
		events:  events,
		th:      theme.For(p.Theme),
		area:    ta,
		input:   ti,
	}

	svc.Router.OnEnter(router.Reviews, func(router.Page) {
		select {
		case events <- refreshRequestMsg{}:
		default:
		}
	})
	return m
}

const navHelp = "←/→ pages · t theme · q quit"

// Init starts the event pump, the store watch, and the welcome flow.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitEvents(), m.startService(), m.startWatch())
}

func (m Model) waitEvents() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

func (m Model) startService() tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.Start(m.ctx); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// startWatch pumps store change events into the program loop so edits
// made by another process show up without a restart.
func (m Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		ch, err := m.svc.Store.Watch(m.ctx)
		if err != nil {
			return nil
		}
		go func() {
			for ev := range ch {
				select {
				case m.events <- storeChangedMsg{ev: ev}:
				default:
				}
			}
		}()
		return nil
	}
}

func (m Model) refreshFeed() tea.Cmd {
	return func() tea.Msg {
		m.svc.Feed.Refresh(m.ctx)
		return feedRefreshedMsg{}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		w := msg.Width - 8
		if w > 72 {
			w = 72
		}
		if w > 10 {
			m.area.SetWidth(w)
		}

	case errMsg:
		m.svc.Presenter.Show(msg.err.Error(), notify.Error)

	case notifyShownMsg:
		n := msg.n
		m.notification = &n
		cmds = append(cmds, m.waitEvents())

	case notifyClearedMsg:
		m.notification = nil
		cmds = append(cmds, m.waitEvents())

	case breathPhaseMsg:
		m.breathPhase = msg.phase
		m.breathElapsed = msg.elapsed
		cmds = append(cmds, m.waitEvents())

	case breathStopMsg:
		m.breathElapsed = 0
		if msg.completed {
			m.svc.Presenter.Show("Well done. Take that calm with you.", notify.Success)
		}
		cmds = append(cmds, m.waitEvents())

	case storeChangedMsg:
		m.applyStoreChange(msg.ev)
		cmds = append(cmds, m.waitEvents())

	case refreshRequestMsg:
		cmds = append(cmds, m.refreshFeed(), m.waitEvents())

	case feedRefreshedMsg:
		if m.feedIndex >= len(m.svc.Feed.Entries()) {
			m.feedIndex = 0
		}

	case submittedMsg:
		cmds = append(cmds, m.handleSubmitted(msg)...)

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleSubmitted(msg submittedMsg) []tea.Cmd {
	var cmds []tea.Cmd
	if msg.err == nil {
		switch msg.what {
		case "review":
			m.svc.Presenter.Show("Thank you. Your review helps others take the first step.", notify.Success)
			m.input.Reset()
			cmds = append(cmds, m.refreshFeed())
		case "share":
			m.svc.Presenter.Show("Shared. Someone out there will read it.", notify.Success)
			m.area.Reset()
		case "release":
			m.svc.Presenter.Show("Released. Those words stayed with you.", notify.Success)
			m.area.Reset()
		case "request":
			m.svc.Presenter.Show("Request received. A listener will reach out soon.", notify.Success)
			m.form = request.Form{}
			m.formMarks = nil
		}
		return cmds
	}

	if verr, ok := msg.err.(*request.ValidationError); ok {
		m.formMarks = map[string]bool{}
		for _, f := range verr.Fields {
			m.formMarks[f] = true
		}
		m.svc.Presenter.Show("Please fill in the highlighted fields.", notify.Warning)
		m.mode = modeRequest
		return cmds
	}
	if msg.what == "request" {
		m.mailto = request.MailtoFallback(m.form)
	}
	m.svc.Presenter.Show(msg.err.Error(), notify.Error)
	return cmds
}

func (m *Model) handleKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch m.mode {
	case modeCrisis:
		m.mode = modeNav
		return cmds

	case modeWrite, modeShare:
		return m.handleEditorKey(msg)

	case modeReview:
		switch msg.String() {
		case "esc":
			m.mode = modeNav
			m.input.Blur()
		case "enter":
			text := m.input.Value()
			mv := m.svc.Moods.CurrentOrNeutral()
			sub := review.Submission{
				Text:    text,
				Privacy: review.PrivacyAnonymous,
				Emoji:   mv.Glyph().Symbol,
				Mood:    mv.String(),
			}
			m.mode = modeNav
			m.input.Blur()
			cmds = append(cmds, func() tea.Msg {
				return submittedMsg{what: "review", err: m.svc.Reviews.Submit(m.ctx, sub, notify.NopBusy{})}
			})
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
			m.scanForCrisis(m.input.Value())
		}
		return cmds

	case modeRequest:
		return m.handleFormKey(msg)
	}

	// modeNav
	switch msg.String() {
	case "q", "ctrl+c":
		m.svc.Shutdown()
		cmds = append(cmds, tea.Quit)
	case "left", "shift+tab":
		cmds = append(cmds, m.navigate(m.adjacentPage(-1))...)
	case "right", "tab":
		cmds = append(cmds, m.navigate(m.adjacentPage(1))...)
	case "t":
		m.toggleTheme()
	default:
		cmds = append(cmds, m.handlePageKey(msg)...)
	}
	return cmds
}

func (m *Model) handleEditorKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	ed := m.editor()

	switch msg.String() {
	case "esc":
		ed.SetText(m.area.Value())
		if err := ed.Flush(); err != nil {
			m.svc.Presenter.Show("Could not save your draft.", notify.Warning)
		}
		m.mode = modeNav
		m.area.Blur()
	case "ctrl+s":
		ed.SetText(m.area.Value())
		mode := m.mode
		m.mode = modeNav
		m.area.Blur()
		if mode == modeWrite {
			cmds = append(cmds, func() tea.Msg {
				return submittedMsg{what: "release", err: ed.Release()}
			})
		} else {
			mv := m.svc.Moods.CurrentOrNeutral()
			cmds = append(cmds, func() tea.Msg {
				_, err := ed.Share(m.ctx, draft.ShareRequest{
					Privacy: draft.PrivacyPublic,
					Mood:    mv.String(),
					Client:  m.svc.Backend,
					Busy:    notify.NopBusy{},
				})
				return submittedMsg{what: "share", err: err}
			})
		}
	case "ctrl+x":
		ed.SetText(m.area.Value())
		if _, err := ed.Clear(nil); err != nil {
			m.svc.Presenter.Show("Could not clear the draft.", notify.Warning)
		}
		m.area.Reset()
	default:
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		cmds = append(cmds, cmd)
		ed.SetText(m.area.Value())
		m.scanForCrisis(m.area.Value())
	}
	return cmds
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "esc":
		m.mode = modeNav
		m.input.Blur()
	case "enter":
		m.storeField(m.input.Value())
		if m.field < fieldCount-1 {
			m.field++
			m.armField()
			cmds = append(cmds, textinput.Blink)
			return cmds
		}
		m.mode = modeNav
		m.input.Blur()
		form := m.form
		cmds = append(cmds, func() tea.Msg {
			p, _ := m.svc.Store.Get()
			err := m.svc.Requests.Submit(m.ctx, form, p.Theme, string(router.Sessions), notify.NopBusy{})
			return submittedMsg{what: "request", err: err}
		})
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) handlePageKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	key := msg.String()

	switch m.svc.Router.Current() {
	case router.Home:
		moods := mood.Values()
		switch key {
		case "j", "down":
			m.moodIndex = (m.moodIndex + 1) % len(moods)
		case "k", "up":
			m.moodIndex = (m.moodIndex + len(moods) - 1) % len(moods)
		case "enter":
			if err := m.svc.Moods.Select(moods[m.moodIndex]); err != nil {
				m.svc.Presenter.Show("Could not record your mood.", notify.Warning)
			} else {
				m.svc.Presenter.Show("Noted. Thank you for checking in.", notify.Success)
			}
		case "w":
			m.openEditor(modeWrite, &cmds)
		}

	case router.Start:
		if key == " " || key == "space" || key == "enter" {
			m.svc.Breathing.Toggle()
		}

	case router.Share:
		switch key {
		case "e", "enter":
			m.openEditor(modeShare, &cmds)
		}

	case router.Reviews:
		entries := m.svc.Feed.Entries()
		switch key {
		case "j", "down":
			if m.feedIndex < len(entries)-1 {
				m.feedIndex++
			}
		case "k", "up":
			if m.feedIndex > 0 {
				m.feedIndex--
			}
		case "enter", "+":
			m.svc.Feed.Like(m.feedIndex)
		case "r":
			cmds = append(cmds, m.refreshFeed())
		case "e":
			m.mode = modeReview
			m.input.Reset()
			m.input.CharLimit = review.MaxLen
			m.input.Placeholder = "How was your experience?"
			if cmd := m.input.Focus(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			cmds = append(cmds, textinput.Blink)
		}

	case router.Sessions:
		if key == "f" || key == "enter" {
			m.mode = modeRequest
			m.field = fieldSessionType
			m.formMarks = nil
			m.mailto = ""
			m.armField()
			if cmd := m.input.Focus(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			cmds = append(cmds, textinput.Blink)
		}

	case router.Resources:
		var track sound.Track
		switch key {
		case "1":
			track = sound.Rain
		case "2":
			track = sound.Waves
		case "3":
			track = sound.Forest
		case "s":
			m.svc.Player.StopAll()
			return cmds
		default:
			return cmds
		}
		if _, err := m.svc.Player.Toggle(track); err != nil {
			m.svc.Presenter.Show("Could not start the sound.", notify.Warning)
		}
	}
	return cmds
}

// applyStoreChange reconciles in-memory state with what another process
// wrote to the store.
func (m *Model) applyStoreChange(ev profile.Event) {
	switch ev.Type {
	case profile.EventDraftChanged:
		ed := m.svc.Free
		editing := m.mode == modeWrite
		if ev.Draft == string(draft.KindShare) {
			ed = m.svc.Share
			editing = m.mode == modeShare
		}
		if editing {
			// Never clobber text mid-edit; the open editor wins and the
			// draft reconciles on the next open.
			return
		}
		_ = ed.Load()
	case profile.EventProfileChanged:
		if p, err := m.svc.Store.Get(); err == nil {
			m.th = theme.For(p.Theme)
		}
	}
}

func (m *Model) editor() *draft.Editor {
	if m.mode == modeShare {
		return m.svc.Share
	}
	return m.svc.Free
}

func (m *Model) openEditor(target mode, cmds *[]tea.Cmd) {
	m.mode = target
	ed := m.editor()
	_ = ed.Load()
	m.area.SetValue(ed.Text())
	if target == modeShare {
		m.area.Placeholder = "Share a thought. ctrl+s sends it, esc keeps it private."
	} else {
		m.area.Placeholder = "Let it out. Nobody reads this but you."
	}
	if cmd := m.area.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) scanForCrisis(text string) {
	if r, hit := m.svc.Monitor.Scan(text); hit {
		m.resource = r
		m.mode = modeCrisis
	}
}

func (m *Model) toggleTheme() {
	p, err := m.svc.Store.Get()
	if err != nil {
		return
	}
	p.Theme = p.Theme.Toggle()
	if err := m.svc.Store.Save(p); err != nil {
		m.svc.Presenter.Show("Could not save the theme.", notify.Warning)
		return
	}
	m.th = theme.For(p.Theme)
}

func (m *Model) adjacentPage(step int) router.Page {
	pages := router.Pages()
	cur := 0
	for i, p := range pages {
		if p == m.svc.Router.Current() {
			cur = i
			break
		}
	}
	next := (cur + step + len(pages)) % len(pages)
	return pages[next]
}

func (m *Model) navigate(p router.Page) []tea.Cmd {
	var cmds []tea.Cmd
	if err := m.svc.Router.Navigate(p); err != nil {
		return cmds
	}
	if p == router.Start {
		m.breathElapsed = 0
	}
	return cmds
}

// View renders the tab bar, the current page, and the status line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeCrisis:
		b.WriteString(m.crisisView())
	case modeWrite, modeShare:
		b.WriteString(m.editorView())
	case modeReview:
		b.WriteString(m.th.Title.Render("Leave a review"))
		b.WriteString("\n\n" + m.input.View())
		b.WriteString("\n\n" + m.th.Subtle.Render(fmt.Sprintf("%d/%d · enter submits · esc cancels", len([]rune(m.input.Value())), review.MaxLen)))
	case modeRequest:
		b.WriteString(m.formView())
	default:
		b.WriteString(m.pageView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) tabs() string {
	labels := map[router.Page]string{
		router.Home:       "Home",
		router.About:      "About",
		router.HowItWorks: "How it works",
		router.Sessions:   "Sessions",
		router.Reviews:    "Reviews",
		router.Share:      "Share",
		router.Resources:  "Resources",
		router.Start:      "Start",
	}
	parts := make([]string, 0, len(labels))
	for _, p := range router.Pages() {
		if p == m.svc.Router.Current() {
			parts = append(parts, m.th.TabOn.Render(labels[p]))
		} else {
			parts = append(parts, m.th.Tab.Render(labels[p]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) pageView() string {
	switch m.svc.Router.Current() {
	case router.Home:
		return m.homeView()
	case router.About:
		return m.th.Title.Render("A quiet space") + "\n\n" +
			m.wrap("hush is a small companion for heavy days: check in with "+
				"yourself, breathe, write things down, and reach a listener "+
				"when you need one. Nothing you write leaves this machine "+
				"unless you choose to share it.")
	case router.HowItWorks:
		return m.th.Title.Render("How it works") + "\n\n" +
			m.wrap("1. Pick the mood that fits today.\n"+
				"2. Breathe with the guided rhythm when things race.\n"+
				"3. Write freely; drafts save themselves.\n"+
				"4. Request a session when you want a human ear.")
	case router.Sessions:
		return m.sessionsView()
	case router.Reviews:
		return m.feedView()
	case router.Share:
		return m.th.Title.Render("Share a thought") + "\n\n" +
			m.wrap("Words can stay private or travel to someone who listens.") +
			"\n\n" + m.th.Subtle.Render("e edit the draft · inside: ctrl+s share publicly, esc keep private")
	case router.Resources:
		return m.resourcesView()
	case router.Start:
		return m.breathView()
	}
	return ""
}

func (m Model) homeView() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("How are you feeling today?"))
	b.WriteString("\n\n")

	current, selected, _ := m.svc.Moods.Current()
	for i, v := range mood.Values() {
		g := v.Glyph()
		line := fmt.Sprintf("%s  %s", g.Symbol, g.Meaning)
		if selected && v == current {
			line += "  ✓"
		}
		if i == m.moodIndex {
			b.WriteString(m.th.Selected.Render(" " + line + " "))
		} else {
			b.WriteString(m.th.Body.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.th.Subtle.Render("j/k choose · enter record · w write freely"))
	return b.String()
}

func (m Model) breathView() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Guided breathing"))
	b.WriteString("\n\n")

	if m.svc.Breathing.Running() {
		label := m.breathPhase.Label()
		b.WriteString(m.th.Panel.Render(m.th.Accent.Render(label)))
		b.WriteString("\n\n")
		remaining := time.Duration(breath.SessionSeconds-m.breathElapsed) * time.Second
		b.WriteString(m.th.Subtle.Render(fmt.Sprintf("%s left · space stops", timeutil.FormatClock(remaining))))
	} else {
		b.WriteString(m.wrap("One minute. In for four, hold for two, out for two."))
		b.WriteString("\n\n")
		b.WriteString(m.th.Subtle.Render("space starts"))
	}
	return b.String()
}

func (m Model) sessionsView() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Request a session"))
	b.WriteString("\n\n")
	b.WriteString(m.wrap("A listener will contact you over Telegram or email. No diagnosis, no judgement, just time."))
	b.WriteString("\n\n")
	if m.mailto != "" {
		b.WriteString(m.th.Warning.Render("The listener could not be reached. You can email instead:"))
		b.WriteString("\n  " + m.th.Accent.Render(m.mailto) + "\n\n")
	}
	b.WriteString(m.th.Subtle.Render("f fill in the form"))
	return b.String()
}

func (m Model) feedView() string {
	var b strings.Builder
	entries := m.svc.Feed.Entries()
	b.WriteString(m.th.Title.Render(fmt.Sprintf("What people say (%d)", len(entries))))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(m.th.Subtle.Render("nothing here yet"))
	}
	for i, e := range entries {
		head := fmt.Sprintf("%s %s · %s · ♥ %d", e.Emoji, e.Name, timeutil.Ago(e.Timestamp, m.svc.Clock.Now()), e.Likes)
		if i == m.feedIndex {
			b.WriteString(m.th.Selected.Render(" " + head + " "))
		} else {
			b.WriteString(m.th.Accent.Render(head))
		}
		b.WriteString("\n")
		b.WriteString(m.wrap(e.Text))
		b.WriteString("\n\n")
	}

	b.WriteString(m.th.Subtle.Render("j/k move · enter appreciate · e write yours · r refresh"))
	return b.String()
}

func (m Model) resourcesView() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Resources"))
	b.WriteString("\n\n")

	r := safety.DefaultResource()
	b.WriteString(m.wrap(r.Body))
	b.WriteString("\n" + m.th.Error.Render("In crisis, call "+r.Helpline+".") + "\n\n")

	b.WriteString(m.th.Title.Render("Ambient sound"))
	b.WriteString("\n\n")
	for i, t := range sound.Tracks() {
		marker := "  "
		if m.svc.Player.Active() == t {
			marker = "▶ "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", marker, i+1, t))
	}
	b.WriteString("\n")
	b.WriteString(m.th.Subtle.Render("1/2/3 toggle · s silence · stops on its own after 30m"))
	return b.String()
}

func (m Model) editorView() string {
	var b strings.Builder
	if m.mode == modeShare {
		b.WriteString(m.th.Title.Render("Share a thought"))
	} else {
		b.WriteString(m.th.Title.Render("Your space"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.area.View())
	b.WriteString("\n\n")

	st := m.editorStats()
	help := "esc save+close · ctrl+x clear"
	if m.mode == modeShare {
		help = "ctrl+s share publicly · " + help
	} else {
		help = "ctrl+s release · " + help
	}
	b.WriteString(m.th.Subtle.Render(fmt.Sprintf("words: %d  chars: %d  time: %s · %s",
		st.Words, st.Chars, timeutil.FormatClock(st.Elapsed), help)))
	return b.String()
}

func (m Model) editorStats() draft.Stats {
	ed := m.svc.Free
	if m.mode == modeShare {
		ed = m.svc.Share
	}
	return ed.Stats()
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Request a session"))
	b.WriteString("\n\n")

	labels := []string{"Kind of session", "Contact method (telegram/email)", "Contact", "Message (optional)", "Preferred time (optional)"}
	values := []string{m.form.SessionType, string(m.form.ContactMethod), m.form.ContactInfo(), m.form.Message, m.form.PreferredTime}
	marks := []string{"session-type", "contact-method", contactMark(m.form), "", ""}

	for i := requestField(0); i < fieldCount; i++ {
		label := labels[i]
		if m.formMarks != nil && marks[i] != "" && m.formMarks[marks[i]] {
			label = m.th.Error.Render(label + " *")
		}
		if i == m.field {
			b.WriteString(fmt.Sprintf("%s: %s\n", m.th.Accent.Render(label), m.input.View()))
		} else {
			b.WriteString(m.th.Subtle.Render(fmt.Sprintf("%s: %s", label, values[i])))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.th.Subtle.Render("enter next field · esc cancel"))
	return b.String()
}

func contactMark(f request.Form) string {
	if f.ContactMethod == request.ContactTelegram {
		return "telegram"
	}
	return "email"
}

func (m Model) crisisView() string {
	var b strings.Builder
	b.WriteString("🚨 " + m.th.Error.Render(m.resource.Heading))
	b.WriteString("\n\n")
	b.WriteString(m.wrap(m.resource.Body))
	b.WriteString("\n\n")
	b.WriteString(m.th.Title.Render("Call " + m.resource.Helpline))
	b.WriteString("\n\n")
	b.WriteString(m.th.Subtle.Render("press any key to continue"))
	return m.th.Crisis.Render(b.String())
}

func (m Model) statusLine() string {
	if m.notification != nil {
		style := m.th.Info
		switch m.notification.Severity {
		case notify.Success:
			style = m.th.Success
		case notify.Warning:
			style = m.th.Warning
		case notify.Error:
			style = m.th.Error
		}
		return style.Render(m.notification.Message)
	}
	return m.th.Subtle.Render(navHelp)
}

func (m Model) wrap(s string) string {
	w := m.termWidth - 4
	if w <= 0 || w > 76 {
		w = 76
	}
	return m.th.Body.Render(wordwrap.String(s, w))
}

func (m *Model) armField() {
	m.input.Reset()
	m.input.CharLimit = 0
	switch m.field {
	case fieldSessionType:
		m.input.Placeholder = "listening, guidance, or check-in"
		m.input.SetValue(m.form.SessionType)
	case fieldContactMethod:
		m.input.Placeholder = "telegram or email"
		m.input.SetValue(string(m.form.ContactMethod))
	case fieldContact:
		if m.form.ContactMethod == request.ContactTelegram {
			m.input.Placeholder = "@handle"
			m.input.SetValue(m.form.Telegram)
		} else {
			m.input.Placeholder = "you@example.com"
			m.input.SetValue(m.form.Email)
		}
	case fieldMessage:
		m.input.Placeholder = "anything you want the listener to know"
		m.input.SetValue(m.form.Message)
	case fieldPreferredTime:
		m.input.Placeholder = "evenings, weekends..."
		m.input.SetValue(m.form.PreferredTime)
	}
	m.input.CursorEnd()
}

func (m *Model) storeField(value string) {
	value = strings.TrimSpace(value)
	switch m.field {
	case fieldSessionType:
		m.form.SessionType = value
	case fieldContactMethod:
		m.form.ContactMethod = request.ContactMethod(strings.ToLower(value))
	case fieldContact:
		if m.form.ContactMethod == request.ContactTelegram {
			m.form.Telegram = value
		} else {
			m.form.Email = value
		}
	case fieldMessage:
		m.form.Message = value
	case fieldPreferredTime:
		m.form.PreferredTime = value
	}
}

// Run launches the program over a fully built service.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
