package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-wa-desk/internal/app"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

type inboxFocus int

const (
	focusConversations inboxFocus = iota
	focusSearch
	focusRecipient
	focusComposer
)

const (
	conversationListWidth = 34
	threadWidth           = 56
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type inboxModel struct {
	ctx      context.Context
	inbox    service.InboxService
	messages service.MessageService
	poller   service.StatusPoller
	now      func() time.Time

	conversations []models.Conversation
	selected      int
	thread        []models.ChatEntry
	session       map[int64][]models.ChatEntry
	loadErr       string

	focus     inboxFocus
	search    textinput.Model
	recipient textinput.Model
	composer  textinput.Model
	spinner   spinner.Model

	sending bool
	notice  notice

	trackedID string
	status    models.MessageStatus
	hasStatus bool
	checking  bool
	pollErr   bool
	waiting   bool
	active    bool
}

func newInboxModel(ctx context.Context, services *service.ClientServices, defaultRecipient string) inboxModel {
	search := textinput.New()
	search.Placeholder = "Search conversations"
	search.Prompt = "/ "
	search.Width = conversationListWidth - 4

	recipient := textinput.New()
	recipient.Placeholder = "Recipient phone number"
	recipient.Prompt = "To: "
	recipient.Width = threadWidth - 6
	recipient.SetValue(defaultRecipient)

	composer := textinput.New()
	composer.Placeholder = "Type a message"
	composer.Prompt = "> "
	composer.Width = threadWidth - 4
	composer.CharLimit = 4096

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return inboxModel{
		ctx:       ctx,
		inbox:     services.InboxService,
		messages:  services.MessageService,
		poller:    services.StatusPoller,
		now:       time.Now,
		session:   make(map[int64][]models.ChatEntry),
		search:    search,
		recipient: recipient,
		composer:  composer,
		spinner:   s,
	}
}

func (m inboxModel) Init() tea.Cmd {
	return m.cmdLoadConversations("")
}

func (m inboxModel) capturesInput() bool {
	return m.focus != focusConversations
}

func (m inboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageFocusMsg:
		m.active = true
		if m.trackedID == "" || m.poller.Target() == m.trackedID {
			return m, nil
		}
		m.poller.Start(m.ctx, m.trackedID)
		m.checking = true
		return m, m.ensureWaiting()

	case pageBlurMsg:
		m.active = false
		if m.trackedID != "" {
			m.poller.Stop()
		}
		return m, nil

	case conversationsLoadedMsg:
		if msg.err != nil {
			m.loadErr = errorText(msg.err)
			return m, nil
		}
		m.loadErr = ""
		m.conversations = msg.items
		m.selected = min(m.selected, max(len(m.conversations)-1, 0))
		if len(m.conversations) == 0 {
			m.thread = nil
			return m, nil
		}
		if strings.TrimSpace(m.recipient.Value()) == "" {
			m.recipient.SetValue(m.conversations[m.selected].Phone)
		}
		return m, m.cmdLoadThread(m.conversations[m.selected].ID)

	case threadLoadedMsg:
		if msg.conversationID != m.currentConversationID() {
			return m, nil
		}
		if msg.err != nil {
			m.loadErr = errorText(msg.err)
			return m, nil
		}
		m.thread = msg.entries
		return m, nil

	case sentMsg:
		return m.handleSent(msg)

	case statusMsg:
		return m.handleStatus(models.StatusUpdate(msg))

	case spinner.TickMsg:
		if !m.sending && !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m inboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.clearID) {
		m.clearTracking()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			m.focusOn(focusConversations)
			return m, nil
		}
		prev := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != prev {
			m.selected = 0
			return m, tea.Batch(cmd, m.cmdLoadConversations(m.search.Value()))
		}
		return m, cmd

	case focusRecipient:
		switch {
		case key.Matches(msg, keys.esc):
			m.focusOn(focusConversations)
			return m, nil
		case key.Matches(msg, keys.enter):
			m.focusOn(focusComposer)
			return m, nil
		}
		m.recipient, cmd = m.recipient.Update(msg)
		return m, cmd

	case focusComposer:
		switch {
		case key.Matches(msg, keys.esc):
			m.focusOn(focusConversations)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.send()
		}
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
			return m, m.selectConversation()
		}
	case key.Matches(msg, keys.down):
		if m.selected < len(m.conversations)-1 {
			m.selected++
			return m, m.selectConversation()
		}
	case key.Matches(msg, keys.search):
		m.focusOn(focusSearch)
	case key.Matches(msg, keys.compose), key.Matches(msg, keys.enter):
		m.focusOn(focusComposer)
	case key.Matches(msg, keys.recipient):
		m.focusOn(focusRecipient)
	case key.Matches(msg, keys.copyID):
		m.copyTrackedID()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoadConversations(m.search.Value())
	}
	return m, nil
}

func (m *inboxModel) focusOn(f inboxFocus) {
	m.search.Blur()
	m.recipient.Blur()
	m.composer.Blur()

	m.focus = f
	switch f {
	case focusSearch:
		m.search.Focus()
	case focusRecipient:
		m.recipient.Focus()
	case focusComposer:
		m.composer.Focus()
	}
}

func (m *inboxModel) selectConversation() tea.Cmd {
	c := m.conversations[m.selected]
	m.recipient.SetValue(c.Phone)
	m.thread = nil
	return m.cmdLoadThread(c.ID)
}

func (m inboxModel) currentConversationID() int64 {
	if m.selected < 0 || m.selected >= len(m.conversations) {
		return 0
	}
	return m.conversations[m.selected].ID
}

func (m inboxModel) send() (tea.Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}
	m.sending = true
	m.notice = notice{}
	return m, tea.Batch(m.cmdSend(m.recipient.Value(), m.composer.Value()), m.spinner.Tick)
}

func (m inboxModel) handleSent(msg sentMsg) (tea.Model, tea.Cmd) {
	m.sending = false
	if msg.err != nil {
		m.notice = notice{title: app.MsgSendFailed, detail: errorText(msg.err), isErr: true}
		return m, nil
	}

	m.composer.Reset()

	id, ok := msg.result.MessageID()
	entry := msg.entry
	entry.ProviderID = id
	m.session[msg.conversationID] = append(m.session[msg.conversationID], entry)

	if !ok {
		m.notice = notice{title: app.MsgSent, detail: app.MsgAcceptedNoID}
		m.clearTracking()
		return m, nil
	}

	m.notice = notice{title: app.MsgSent, detail: app.TrackingMessage(id)}
	m.trackedID = id
	m.status = models.MessageStatus{}
	m.hasStatus = false
	m.pollErr = false
	if !m.active {
		return m, nil
	}

	m.poller.Start(m.ctx, id)
	m.checking = true
	return m, tea.Batch(m.ensureWaiting(), m.spinner.Tick)
}

func (m inboxModel) handleStatus(u models.StatusUpdate) (tea.Model, tea.Cmd) {
	m.waiting = false
	if m.trackedID == "" {
		return m, nil
	}
	if u.MessageID != m.trackedID {
		return m, m.ensureWaiting()
	}

	m.checking = false
	if u.Err != nil {
		m.pollErr = true
		return m, m.ensureWaiting()
	}

	m.pollErr = false
	m.status = u.Status
	m.hasStatus = true
	m.markEntries(u.MessageID, u.Status.LatestStatus())
	return m, m.ensureWaiting()
}

// ensureWaiting keeps exactly one reader on the poller's update channel.
func (m *inboxModel) ensureWaiting() tea.Cmd {
	if m.waiting {
		return nil
	}
	m.waiting = true
	return waitForStatus(m.ctx, m.poller.Updates())
}

func (m *inboxModel) clearTracking() {
	if m.trackedID != "" {
		m.poller.Stop()
	}
	m.trackedID = ""
	m.status = models.MessageStatus{}
	m.hasStatus = false
	m.checking = false
	m.pollErr = false
}

func (m *inboxModel) copyTrackedID() {
	if m.trackedID == "" {
		return
	}
	if err := copyToClipboard(m.trackedID); err != nil {
		m.notice = notice{title: app.MsgCopyFailed, detail: err.Error(), isErr: true}
		return
	}
	m.notice = notice{title: app.MsgCopied}
}

func (m *inboxModel) markEntries(providerID, status string) {
	for conv, entries := range m.session {
		for i := range entries {
			if entries[i].ProviderID == providerID {
				m.session[conv][i].Status = status
			}
		}
	}
}

func (m inboxModel) cmdLoadConversations(search string) tea.Cmd {
	ctx := m.ctx
	svc := m.inbox

	return func() tea.Msg {
		if svc == nil {
			return conversationsLoadedMsg{err: service.ErrCatalogUnavailable}
		}
		items, err := svc.Conversations(ctx, search)
		return conversationsLoadedMsg{items: items, err: err}
	}
}

func (m inboxModel) cmdLoadThread(conversationID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.inbox

	return func() tea.Msg {
		entries, err := svc.Thread(ctx, conversationID)
		return threadLoadedMsg{conversationID: conversationID, entries: entries, err: err}
	}
}

func (m inboxModel) cmdSend(to, text string) tea.Cmd {
	ctx := m.ctx
	svc := m.messages
	conversationID := m.currentConversationID()
	entry := models.ChatEntry{
		ID:        uuid.NewString(),
		Body:      strings.TrimSpace(text),
		At:        m.now(),
		Direction: models.Outgoing,
	}

	return func() tea.Msg {
		result, err := svc.Send(ctx, models.OutboundMessage{
			To:   to,
			Type: models.MessageTypeText,
			Text: text,
		})
		return sentMsg{conversationID: conversationID, entry: entry, result: result, err: err}
	}
}

// waitForStatus blocks until the poller publishes or ctx is done.
func waitForStatus(ctx context.Context, updates <-chan models.StatusUpdate) tea.Cmd {
	return func() tea.Msg {
		select {
		case u := <-updates:
			return statusMsg(u)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m inboxModel) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(conversationListWidth).Render(m.viewConversations()),
		panelStyle.Width(threadWidth).Render(m.viewThread()),
	)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.recipient.View())
	b.WriteString("\n")
	b.WriteString(m.composer.View())
	b.WriteString("\n")
	b.WriteString(m.viewSendControl())

	if v := m.notice.View(); v != "" {
		b.WriteString("\n\n")
		b.WriteString(v)
	}
	if m.trackedID != "" {
		b.WriteString("\n\n")
		b.WriteString(m.viewDelivery())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Backend: " + m.messages.BaseURL()))

	return renderPage("INBOX", b.String(), m.hotKeys())
}

func (m inboxModel) viewConversations() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if m.loadErr != "" {
		b.WriteString(errorStyle.Render(m.loadErr))
		return b.String()
	}
	if len(m.conversations) == 0 {
		b.WriteString("No conversations")
		return b.String()
	}

	for i, c := range m.conversations {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		name := c.Name
		if c.Unread > 0 {
			name = fmt.Sprintf("%s (%d)", name, c.Unread)
		}
		b.WriteString(cursor)
		b.WriteString(fitText(name, conversationListWidth-4))
		b.WriteString("\n    ")
		b.WriteString(helpStyle.Render(fitText(c.LastMessage, conversationListWidth-6)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m inboxModel) viewThread() string {
	entries := append(append([]models.ChatEntry(nil), m.thread...), m.session[m.currentConversationID()]...)
	if len(entries) == 0 {
		return "No messages yet"
	}

	var b strings.Builder
	for _, e := range entries {
		stamp := e.At.Local().Format("15:04")
		if e.Direction == models.Outgoing {
			line := fmt.Sprintf("%s  %s", stamp, e.Body)
			if e.Status != "" {
				line += "  [" + e.Status + "]"
			}
			b.WriteString(outgoingStyle.Render(lipgloss.PlaceHorizontal(threadWidth-2, lipgloss.Right, line)))
		} else {
			b.WriteString(incomingStyle.Render(fmt.Sprintf("%s  %s", stamp, e.Body)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m inboxModel) viewSendControl() string {
	if m.sending {
		return "[ " + m.spinner.View() + " " + app.MsgSending + " ]"
	}
	return "[ Send ]"
}

func (m inboxModel) viewDelivery() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delivery"))
	b.WriteString("\nMessage id: ")
	b.WriteString(m.trackedID)
	b.WriteString("\n")

	switch {
	case m.checking && !m.hasStatus:
		b.WriteString(m.spinner.View() + " " + app.MsgCheckingDelivery)
	default:
		b.WriteString(app.LatestStatusMessage(m.status.LatestStatus()))
	}

	if m.pollErr {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(app.MsgStatusFetchFailed))
	}
	if history := m.status.HistoryStatuses(); len(history) > 0 {
		b.WriteString("\nHistory: ")
		b.WriteString(strings.Join(history, " → "))
	}
	return b.String()
}

func (m inboxModel) hotKeys() string {
	switch m.focus {
	case focusSearch:
		return "type to filter  enter/esc: done"
	case focusRecipient:
		return "enter: compose  esc: back  ctrl+x: stop tracking"
	case focusComposer:
		return "enter: send  esc: back  ctrl+x: stop tracking"
	}
	return "↑/↓: conversation  /: search  i: compose  r: recipient  y: copy id  ctrl+x: stop tracking"
}
