package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

// scheduleLayout is how dates are typed into forms, in local time.
const scheduleLayout = "2006-01-02 15:04"

const (
	campaignFieldName = iota
	campaignFieldAudience
	campaignFieldSchedule
	campaignFieldMessage
	campaignFieldObjective
)

var campaignTimeline = []string{
	"Draft created",
	"Audience locked",
	"Template finalized",
	"Delivery scheduled",
	"Live",
}

type campaignsModel struct {
	catalogBase

	ctx context.Context
	svc service.CampaignService

	items     []models.Campaign
	totals    models.CampaignTotals
	statusIdx int
	toggling  bool

	adding  bool
	addForm form

	// detail is the campaign opened with enter; nil on the list.
	detail   *models.Campaign
	updating bool
}

func newCampaignsModel(ctx context.Context, svc service.CampaignService) campaignsModel {
	return campaignsModel{
		catalogBase: newCatalogBase([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Audience", Width: 18},
			{Title: "Status", Width: 10},
			{Title: "Sent", Width: 7},
			{Title: "Delivery", Width: 8},
			{Title: "Read", Width: 7},
			{Title: "Reply", Width: 7},
			{Title: "Progress", Width: 8},
		}, "Search campaigns"),
		ctx: ctx,
		svc: svc,
	}
}

func (m campaignsModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m campaignsModel) capturesInput() bool {
	return m.searching || m.adding
}

func (m campaignsModel) filter() models.CampaignFilter {
	return models.CampaignFilter{
		Search: m.search.Value(),
		Status: filterValue(models.CampaignStatuses, m.statusIdx),
	}
}

func (m campaignsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case campaignsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = errorText(msg.err)
			return m, nil
		}
		m.loadErr = ""
		m.items = msg.items
		m.totals = msg.totals
		m.table.SetRows(campaignRows(m.items))
		return m, nil

	case campaignLoadedMsg:
		if msg.err != nil {
			m.notice = notice{title: "Unable to open campaign", detail: errorText(msg.err), isErr: true}
			return m, nil
		}
		c := msg.campaign
		m.detail = &c
		return m, nil

	case campaignCreatedMsg:
		m.addForm.saving = false
		if msg.err != nil {
			m.addForm.err = errorText(msg.err)
			return m, nil
		}
		m.adding = false
		m.notice = notice{title: "Campaign created", detail: fmt.Sprintf("%s (%s)", msg.campaign.Name, msg.campaign.Status)}
		return m, m.cmdLoad()

	case campaignToggledMsg:
		m.toggling = false
		if msg.err != nil {
			m.notice = notice{title: "Unable to change campaign", detail: errorText(msg.err), isErr: true}
			return m, nil
		}
		verb := "resumed"
		if msg.campaign.Status == models.CampaignPaused {
			verb = "paused"
		}
		m.notice = notice{title: fmt.Sprintf("Campaign %s", verb), detail: msg.campaign.Name}
		if m.detail != nil && m.detail.ID == msg.campaign.ID {
			c := msg.campaign
			m.detail = &c
		}
		return m, m.cmdLoad()

	case campaignStatusSetMsg:
		m.updating = false
		if msg.err != nil {
			m.notice = notice{title: "Unable to change campaign", detail: errorText(msg.err), isErr: true}
			return m, nil
		}
		m.notice = notice{title: "Campaign " + string(msg.status)}
		cmds := []tea.Cmd{m.cmdLoad()}
		if m.detail != nil && m.detail.ID == msg.id {
			cmds = append(cmds, m.cmdGet(msg.id))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m campaignsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdd(msg)
	}
	if m.detail != nil {
		return m.handleDetailKey(msg)
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
		m.statusIdx = nextFilter(m.statusIdx, len(models.CampaignStatuses))
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		m.startAdd()
		return m, nil
	case key.Matches(msg, keys.enter):
		i := m.cursor(len(m.items))
		if i < 0 {
			return m, nil
		}
		return m, m.cmdGet(m.items[i].ID)
	case key.Matches(msg, keys.pause):
		i := m.cursor(len(m.items))
		if i < 0 || m.toggling {
			return m, nil
		}
		m.toggling = true
		return m, m.cmdToggle(m.items[i].ID)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	}
	return m, m.updateTable(msg)
}

func (m campaignsModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.detail.ID

	switch {
	case key.Matches(msg, keys.esc):
		m.detail = nil
		return m, nil
	case key.Matches(msg, keys.pause):
		if m.toggling {
			return m, nil
		}
		m.toggling = true
		return m, m.cmdToggle(id)
	case key.Matches(msg, keys.done):
		return m.setStatus(id, models.CampaignCompleted)
	case key.Matches(msg, keys.fail):
		return m.setStatus(id, models.CampaignFailed)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdGet(id)
	}
	return m, nil
}

func (m campaignsModel) setStatus(id int64, status models.CampaignStatus) (tea.Model, tea.Cmd) {
	if m.updating || m.detail.Status == status {
		return m, nil
	}
	m.updating = true
	return m, m.cmdSetStatus(id, status)
}

func (m *campaignsModel) startAdd() {
	m.addForm = newForm("NEW CAMPAIGN",
		textField("Name", "Spring Sale 2026"),
		textField("Audience", service.DefaultAudience),
		textField("Schedule", "YYYY-MM-DD HH:MM, empty for a draft"),
		textField("Message", "What recipients will read"),
		textField("Objective", "What success looks like"),
	)
	m.adding = true
}

func (m campaignsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.adding = false
		return m, nil
	}

	submit, cmd := m.addForm.update(msg)
	if !submit {
		return m, cmd
	}

	scheduledAt, err := parseSchedule(m.addForm.value(campaignFieldSchedule))
	if err != nil {
		m.addForm.err = err.Error()
		return m, nil
	}

	m.addForm.saving = true
	m.addForm.err = ""
	return m, m.cmdCreate(models.NewCampaign{
		Name:        m.addForm.value(campaignFieldName),
		Audience:    m.addForm.value(campaignFieldAudience),
		ScheduledAt: scheduledAt,
		Message:     m.addForm.value(campaignFieldMessage),
		Objective:   m.addForm.value(campaignFieldObjective),
	})
}

// parseSchedule reads an optional local date; empty input yields nil.
func parseSchedule(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(scheduleLayout, strings.TrimSpace(v), time.Local)
	if err != nil {
		return nil, fmt.Errorf("Use the date format %s.", scheduleLayout)
	}
	return &t, nil
}

func (m campaignsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	filter := m.filter()

	return func() tea.Msg {
		items, err := svc.List(ctx, filter)
		if err != nil {
			return campaignsLoadedMsg{err: err}
		}
		totals, err := svc.Totals(ctx)
		return campaignsLoadedMsg{items: items, totals: totals, err: err}
	}
}

func (m campaignsModel) cmdGet(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		c, err := svc.Get(ctx, id)
		return campaignLoadedMsg{campaign: c, err: err}
	}
}

func (m campaignsModel) cmdCreate(in models.NewCampaign) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		c, err := svc.Create(ctx, in)
		return campaignCreatedMsg{campaign: c, err: err}
	}
}

func (m campaignsModel) cmdToggle(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		c, err := svc.TogglePause(ctx, id)
		return campaignToggledMsg{campaign: c, err: err}
	}
}

func (m campaignsModel) cmdSetStatus(id int64, status models.CampaignStatus) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		return campaignStatusSetMsg{id: id, status: status, err: svc.SetStatus(ctx, id, status)}
	}
}

func campaignRows(items []models.Campaign) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, c := range items {
		rows = append(rows, table.Row{
			c.Name,
			c.Audience,
			string(c.Status),
			strconv.FormatInt(c.Sent, 10),
			formatPercent(c.DeliveryRate()),
			formatPercent(c.ReadRate()),
			formatPercent(c.ReplyRate()),
			strconv.Itoa(c.Progress) + "%",
		})
	}
	return rows
}

// timelineStep is how many campaignTimeline steps a campaign in status has
// reached.
func timelineStep(status models.CampaignStatus) int {
	switch status {
	case models.CampaignDraft:
		return 1
	case models.CampaignScheduled:
		return 3
	case models.CampaignActive:
		return 4
	default:
		return len(campaignTimeline)
	}
}

func renderCampaignDetail(c models.Campaign) string {
	var b strings.Builder

	schedule := "Send immediately when activated"
	if c.ScheduledAt != nil {
		schedule = c.ScheduledAt.Local().Format(scheduleLayout)
	}

	fmt.Fprintf(&b, "%s   [%s]\n\n", titleStyle.Render(c.Name), c.Status)
	fmt.Fprintf(&b, "Audience   %s\n", c.Audience)
	fmt.Fprintf(&b, "Schedule   %s\n", schedule)
	fmt.Fprintf(&b, "Progress   %d%%\n\n", c.Progress)
	fmt.Fprintf(&b, "Sent %d   Delivered %d   Read %d   Replied %d\n", c.Sent, c.Delivered, c.Read, c.Replied)
	fmt.Fprintf(&b, "Delivery rate %s   Read rate %s   Reply rate %s\n\n",
		formatPercent(c.DeliveryRate()), formatPercent(c.ReadRate()), formatPercent(c.ReplyRate()))
	fmt.Fprintf(&b, "Message    %s\n", valueOrDash(c.Message))
	fmt.Fprintf(&b, "Objective  %s\n\n", valueOrDash(c.Objective))

	b.WriteString("Timeline\n")
	reached := timelineStep(c.Status)
	for i, step := range campaignTimeline {
		mark := "[ ]"
		if i < reached {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, step)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m campaignsModel) View() string {
	if m.adding {
		return renderPage(m.addForm.title, m.addForm.View(), formHotkeys)
	}
	if m.detail != nil {
		body := renderCampaignDetail(*m.detail)
		if v := m.notice.View(); v != "" {
			body += "\n\n" + v
		}
		return renderPage("CAMPAIGN", body, "p: pause/resume  d: complete  x: mark failed  ctrl+l: reload  esc: back")
	}

	t := m.totals
	header := fmt.Sprintf("Sent %d   Delivered %d (%s)   Replied %d",
		t.Sent, t.Delivered, formatPercent(percentOf(t.Delivered, t.Sent)), t.Replied)
	filters := "status: " + string(filterValue(models.CampaignStatuses, m.statusIdx))

	return renderPage("CAMPAIGNS", m.viewBody(header, filters), "/: search  f: status  a: add  enter: details  p: pause/resume  ctrl+l: reload")
}

func percentOf(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
