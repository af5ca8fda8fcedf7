// Package tui is the terminal desk: an inbox for sending messages and
// tracking their delivery, plus a dashboard and catalog tabs for contacts,
// campaigns, templates and follow-ups.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

// Options tune the desk.
type Options struct {
	BuildInfo        models.BuildInfo
	DefaultRecipient string
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) *TUI {
	return &TUI{services: services, opts: opts, logger: logger}
}

// Run shows the desk until the user quits. The status poller is stopped on
// return.
func (t *TUI) Run(ctx context.Context) error {
	defer t.services.StatusPoller.Stop()

	ctx = t.logger.WithContext(ctx)
	root := NewRootModel(t.tabs(ctx), t.opts.BuildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("desk closed by user")
	}
	return nil
}

func (t *TUI) tabs(ctx context.Context) []tab {
	s := t.services
	tabs := []tab{
		{title: "Inbox", model: newInboxModel(ctx, s, t.opts.DefaultRecipient)},
	}
	if !s.HasCatalog() {
		t.logger.Warn().Msg("catalog unavailable, showing the inbox only")
		return tabs
	}

	return append(tabs,
		tab{title: "Dashboard", model: newDashboardModel(ctx, s.DashboardService)},
		tab{title: "Contacts", model: newContactsModel(ctx, s.ContactService)},
		tab{title: "Campaigns", model: newCampaignsModel(ctx, s.CampaignService)},
		tab{title: "Templates", model: newTemplatesModel(ctx, s.TemplateService)},
		tab{title: "Follow-ups", model: newFollowUpsModel(ctx, s.FollowUpService, s.CampaignService, s.ContactService)},
	)
}
