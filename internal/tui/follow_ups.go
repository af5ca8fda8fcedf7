package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

type followUpsModel struct {
	catalogBase

	ctx       context.Context
	svc       service.FollowUpService
	campaigns service.CampaignService
	contacts  service.ContactService
	now       func() time.Time

	items     []models.FollowUpView
	stats     models.FollowUpStats
	statusIdx int

	adding          bool
	addForm         form
	campaignChoices []models.Campaign
	contactChoices  []models.Contact
}

const (
	followUpFieldCampaign = iota
	followUpFieldContact
	followUpFieldNotes
	followUpFieldDue
	followUpFieldPriority
)

// defaultFollowUpDelay is how far ahead a new follow-up is due by default.
const defaultFollowUpDelay = 24 * time.Hour

func newFollowUpsModel(ctx context.Context, svc service.FollowUpService, campaigns service.CampaignService, contacts service.ContactService) followUpsModel {
	return followUpsModel{
		catalogBase: newCatalogBase([]table.Column{
			{Title: "Campaign", Width: 22},
			{Title: "Contact", Width: 18},
			{Title: "Notes", Width: 30},
			{Title: "Due", Width: 16},
			{Title: "Priority", Width: 8},
			{Title: "Status", Width: 9},
		}, ""),
		ctx:       ctx,
		svc:       svc,
		campaigns: campaigns,
		contacts:  contacts,
		now:       time.Now,
	}
}

func (m followUpsModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m followUpsModel) capturesInput() bool {
	return m.adding
}

func (m followUpsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case followUpsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = errorText(msg.err)
			return m, nil
		}
		m.loadErr = ""
		m.items = msg.items
		m.stats = msg.stats
		m.table.SetRows(followUpRows(m.items))
		return m, nil

	case followUpUpdatedMsg:
		if msg.err != nil {
			m.notice = notice{title: "Unable to update follow-up", detail: errorText(msg.err), isErr: true}
			return m, nil
		}
		m.notice = notice{title: "Follow-up marked done"}
		return m, m.cmdLoad()

	case followUpChoicesMsg:
		if msg.err != nil {
			m.notice = notice{title: "Unable to start a follow-up", detail: errorText(msg.err), isErr: true}
			return m, nil
		}
		if len(msg.campaigns) == 0 || len(msg.contacts) == 0 {
			m.notice = notice{title: "Unable to start a follow-up", detail: "Add a campaign and a contact first.", isErr: true}
			return m, nil
		}
		m.startAdd(msg.campaigns, msg.contacts)
		return m, nil

	case followUpCreatedMsg:
		m.addForm.saving = false
		if msg.err != nil {
			m.addForm.err = errorText(msg.err)
			return m, nil
		}
		m.adding = false
		m.notice = notice{title: "Follow-up scheduled", detail: msg.followUp.DueAt.Local().Format(scheduleLayout)}
		return m, m.cmdLoad()

	case pageFocusMsg:
		// The overdue sweep runs in the background; refresh on every visit.
		return m, m.cmdLoad()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m followUpsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdd(msg)
	}

	switch {
	case key.Matches(msg, keys.newItem):
		return m, m.cmdLoadChoices()
	case key.Matches(msg, keys.filter):
		m.statusIdx = nextFilter(m.statusIdx, len(models.FollowUpStatuses))
		return m, m.cmdLoad()
	case key.Matches(msg, keys.done):
		i := m.cursor(len(m.items))
		if i < 0 || m.items[i].Status == models.FollowUpDone {
			return m, nil
		}
		return m, m.cmdMarkDone(m.items[i].ID)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	}
	return m, m.updateTable(msg)
}

func (m *followUpsModel) startAdd(campaigns []models.Campaign, contacts []models.Contact) {
	campaignNames := make([]string, len(campaigns))
	for i, c := range campaigns {
		campaignNames[i] = c.Name
	}
	contactNames := make([]string, len(contacts))
	for i, c := range contacts {
		contactNames[i] = c.Name
	}
	priorities := make([]string, len(models.Priorities))
	for i, p := range models.Priorities {
		priorities[i] = string(p)
	}

	due := textField("Due", scheduleLayout)
	due.input.SetValue(m.now().Add(defaultFollowUpDelay).Local().Format(scheduleLayout))

	m.campaignChoices = campaigns
	m.contactChoices = contacts
	m.addForm = newForm("NEW FOLLOW-UP",
		choiceField("Campaign", campaignNames, 0),
		choiceField("Contact", contactNames, 0),
		textField("Notes", "What to do"),
		due,
		choiceField("Priority", priorities, 1),
	)
	m.adding = true
}

func (m followUpsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.adding = false
		return m, nil
	}

	submit, cmd := m.addForm.update(msg)
	if !submit {
		return m, cmd
	}

	dueAt, err := time.ParseInLocation(scheduleLayout, strings.TrimSpace(m.addForm.value(followUpFieldDue)), time.Local)
	if err != nil {
		m.addForm.err = fmt.Sprintf("Use the date format %s.", scheduleLayout)
		return m, nil
	}

	m.addForm.saving = true
	m.addForm.err = ""
	return m, m.cmdCreate(models.NewFollowUp{
		CampaignID: m.campaignChoices[m.addForm.choice(followUpFieldCampaign)].ID,
		ContactID:  m.contactChoices[m.addForm.choice(followUpFieldContact)].ID,
		Notes:      m.addForm.value(followUpFieldNotes),
		DueAt:      dueAt,
		Priority:   models.Priority(m.addForm.value(followUpFieldPriority)),
	})
}

func (m followUpsModel) cmdLoadChoices() tea.Cmd {
	ctx := m.ctx
	campaigns := m.campaigns
	contacts := m.contacts

	return func() tea.Msg {
		cs, err := campaigns.List(ctx, models.CampaignFilter{})
		if err != nil {
			return followUpChoicesMsg{err: err}
		}
		ps, err := contacts.List(ctx, models.ContactFilter{})
		return followUpChoicesMsg{campaigns: cs, contacts: ps, err: err}
	}
}

func (m followUpsModel) cmdCreate(in models.NewFollowUp) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		f, err := svc.Create(ctx, in)
		return followUpCreatedMsg{followUp: f, err: err}
	}
}

func (m followUpsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	status := filterValue(models.FollowUpStatuses, m.statusIdx)

	return func() tea.Msg {
		items, err := svc.List(ctx, status)
		if err != nil {
			return followUpsLoadedMsg{err: err}
		}
		stats, err := svc.Stats(ctx)
		return followUpsLoadedMsg{items: items, stats: stats, err: err}
	}
}

func (m followUpsModel) cmdMarkDone(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		return followUpUpdatedMsg{err: svc.SetStatus(ctx, id, models.FollowUpDone)}
	}
}

func followUpRows(items []models.FollowUpView) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, f := range items {
		rows = append(rows, table.Row{
			f.CampaignName,
			f.ContactName,
			f.Notes,
			f.DueAt.Local().Format("2006-01-02 15:04"),
			string(f.Priority),
			string(f.Status),
		})
	}
	return rows
}

func (m followUpsModel) View() string {
	if m.adding {
		return renderPage(m.addForm.title, m.addForm.View(), formHotkeys)
	}

	header := fmt.Sprintf("Scheduled %d   Done %d   Overdue %d", m.stats.Scheduled, m.stats.Done, m.stats.Overdue)
	filters := "status: " + string(filterValue(models.FollowUpStatuses, m.statusIdx))

	return renderPage("FOLLOW-UPS", m.viewBody(header, filters), "f: status  a: add  d: mark done  ctrl+l: reload")
}
