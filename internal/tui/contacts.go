package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

type contactsModel struct {
	catalogBase

	ctx context.Context
	svc service.ContactService

	items     []models.Contact
	stats     models.ContactStats
	tags      []string
	statusIdx int
	tagIdx    int

	adding   bool
	addForm  form
	updating bool
}

const (
	contactFieldName = iota
	contactFieldPhone
	contactFieldEmail
	contactFieldTags
)

func newContactsModel(ctx context.Context, svc service.ContactService) contactsModel {
	return contactsModel{
		catalogBase: newCatalogBase([]table.Column{
			{Title: "Name", Width: 18},
			{Title: "Phone", Width: 16},
			{Title: "Email", Width: 24},
			{Title: "Status", Width: 9},
			{Title: "Tags", Width: 18},
			{Title: "Last contact", Width: 12},
		}, "Search name, email or phone"),
		ctx: ctx,
		svc: svc,
	}
}

func (m contactsModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m contactsModel) capturesInput() bool {
	return m.searching || m.adding
}

func (m contactsModel) filter() models.ContactFilter {
	return models.ContactFilter{
		Search: m.search.Value(),
		Status: filterValue(models.ContactStatuses, m.statusIdx),
		Tag:    filterValue(m.tags, m.tagIdx),
	}
}

func (m contactsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = errorText(msg.err)
			return m, nil
		}
		m.loadErr = ""
		m.items = msg.items
		m.stats = msg.stats
		m.tags = msg.tags
		m.table.SetRows(contactRows(m.items))
		return m, nil

	case contactCreatedMsg:
		m.addForm.saving = false
		if msg.err != nil {
			m.addForm.err = errorText(msg.err)
			return m, nil
		}
		m.adding = false
		m.notice = notice{title: "Contact added", detail: msg.contact.Name}
		return m, m.cmdLoad()

	case contactStatusSetMsg:
		m.updating = false
		if msg.err != nil {
			m.notice = notice{title: "Unable to change contact status", detail: errorText(msg.err), isErr: true}
			return m, nil
		}
		m.notice = notice{title: "Contact status changed", detail: fmt.Sprintf("%s: %s", msg.name, msg.status)}
		return m, m.cmdLoad()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m contactsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdd(msg)
	}
	if m.searching {
		changed, cmd := m.updateSearch(msg)
		if changed {
			return m, tea.Batch(cmd, m.cmdLoad())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.search):
		m.startSearch()
		return m, nil
	case key.Matches(msg, keys.filter):
		m.statusIdx = nextFilter(m.statusIdx, len(models.ContactStatuses))
		return m, m.cmdLoad()
	case key.Matches(msg, keys.tagFilter):
		m.tagIdx = nextFilter(m.tagIdx, len(m.tags))
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		m.startAdd()
		return m, nil
	case key.Matches(msg, keys.status):
		i := m.cursor(len(m.items))
		if i < 0 || m.updating {
			return m, nil
		}
		m.updating = true
		c := m.items[i]
		return m, m.cmdSetStatus(c, nextContactStatus(c.Status))
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	}
	return m, m.updateTable(msg)
}

func (m *contactsModel) startAdd() {
	m.addForm = newForm("NEW CONTACT",
		textField("Name", "Sarah Johnson"),
		textField("Phone", "+1 234 567 8900"),
		textField("Email", "optional"),
		textField("Tags", "comma separated"),
	)
	m.adding = true
}

func (m contactsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.adding = false
		return m, nil
	}

	submit, cmd := m.addForm.update(msg)
	if !submit {
		return m, cmd
	}
	m.addForm.saving = true
	m.addForm.err = ""
	return m, m.cmdCreate(models.NewContact{
		Name:  m.addForm.value(contactFieldName),
		Phone: m.addForm.value(contactFieldPhone),
		Email: m.addForm.value(contactFieldEmail),
		Tags:  m.addForm.value(contactFieldTags),
	})
}

// nextContactStatus cycles active, inactive, blocked.
func nextContactStatus(s models.ContactStatus) models.ContactStatus {
	for i, known := range models.ContactStatuses {
		if known == s {
			return models.ContactStatuses[(i+1)%len(models.ContactStatuses)]
		}
	}
	return models.ContactActive
}

func (m contactsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	filter := m.filter()

	return func() tea.Msg {
		items, err := svc.List(ctx, filter)
		if err != nil {
			return contactsLoadedMsg{err: err}
		}
		stats, err := svc.Stats(ctx)
		if err != nil {
			return contactsLoadedMsg{err: err}
		}
		tags, err := svc.Tags(ctx)
		return contactsLoadedMsg{items: items, stats: stats, tags: tags, err: err}
	}
}

func (m contactsModel) cmdCreate(in models.NewContact) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		c, err := svc.Create(ctx, in)
		return contactCreatedMsg{contact: c, err: err}
	}
}

func (m contactsModel) cmdSetStatus(c models.Contact, status models.ContactStatus) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		err := svc.SetStatus(ctx, c.ID, status)
		return contactStatusSetMsg{name: c.Name, status: status, err: err}
	}
}

func contactRows(items []models.Contact) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, c := range items {
		rows = append(rows, table.Row{
			c.Name,
			c.Phone,
			valueOrDash(c.Email),
			string(c.Status),
			valueOrDash(strings.Join(c.Tags, ", ")),
			c.LastContact.Format("2006-01-02"),
		})
	}
	return rows
}

func (m contactsModel) View() string {
	if m.adding {
		return renderPage(m.addForm.title, m.addForm.View(), formHotkeys)
	}

	header := fmt.Sprintf("Total %d   Active %d   Blocked %d", m.stats.Total, m.stats.Active, m.stats.Blocked)
	filters := fmt.Sprintf("status: %s  tag: %s",
		filterValue(models.ContactStatuses, m.statusIdx),
		filterValue(m.tags, m.tagIdx))

	return renderPage("CONTACTS", m.viewBody(header, filters), "/: search  f: status  t: tag  a: add  s: cycle status  ctrl+l: reload")
}
