package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

const statCardWidth = 22

type dashboardModel struct {
	ctx context.Context
	svc service.DashboardService

	summary models.DashboardSummary
	loading bool
	loadErr string
}

func newDashboardModel(ctx context.Context, svc service.DashboardService) dashboardModel {
	return dashboardModel{ctx: ctx, svc: svc, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = errorText(msg.err)
			return m, nil
		}
		m.loadErr = ""
		m.summary = msg.summary
		return m, nil

	case pageFocusMsg:
		// other tabs change the counters
		return m, m.cmdLoad()

	case tea.KeyMsg:
		if key.Matches(msg, keys.refresh) {
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		summary, err := svc.Summary(ctx)
		return dashboardLoadedMsg{summary: summary, err: err}
	}
}

func statCard(title, value, note string) string {
	return panelStyle.Width(statCardWidth).Render(helpStyle.Render(title) + "\n" + titleStyle.Render(value) + "\n" + note)
}

func (m dashboardModel) View() string {
	switch {
	case m.loadErr != "":
		return renderPage("DASHBOARD", errorStyle.Render(m.loadErr), "ctrl+l: reload")
	case m.loading:
		return renderPage("DASHBOARD", "Loading...", "ctrl+l: reload")
	}

	s := m.summary
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Messages Sent", strconv.FormatInt(s.MessagesSent, 10), fmt.Sprintf("%d replied", s.Replied)),
		statCard("Total Contacts", strconv.Itoa(s.TotalContacts), fmt.Sprintf("%d active", s.ActiveContacts)),
		statCard("Active Campaigns", strconv.Itoa(s.ActiveCampaigns), fmt.Sprintf("%d scheduled", s.ScheduledCampaigns)),
		statCard("Delivery Rate", formatPercent(s.DeliveryRate()), fmt.Sprintf("%d delivered", s.Delivered)),
	)

	var b strings.Builder
	b.WriteString(cards)
	fmt.Fprintf(&b, "\n\nTemplates: %d approved, %d drafts   Follow-ups: %d due, %d overdue\n\n",
		s.ApprovedTemplates, s.DraftTemplates, s.DueFollowUps, s.OverdueFollowUps)

	b.WriteString("Recent campaigns\n")
	if len(s.RecentCampaigns) == 0 {
		b.WriteString("  -")
	}
	for _, c := range s.RecentCampaigns {
		fmt.Fprintf(&b, "  %-24s %-10s %3d%%  delivery %s\n", fitText(c.Name, 24), c.Status, c.Progress, formatPercent(c.DeliveryRate()))
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "ctrl+l: reload")
}
