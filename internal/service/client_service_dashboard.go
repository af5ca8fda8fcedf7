package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-wa-desk/models"
)

// RecentCampaignsLimit caps DashboardSummary.RecentCampaigns.
const RecentCampaignsLimit = 3

type dashboardService struct {
	contacts  ContactService
	campaigns CampaignService
	templates TemplateService
	followUps FollowUpService
}

func NewDashboardService(contacts ContactService, campaigns CampaignService, templates TemplateService, followUps FollowUpService) DashboardService {
	return &dashboardService{
		contacts:  contacts,
		campaigns: campaigns,
		templates: templates,
		followUps: followUps,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	var summary models.DashboardSummary

	contactStats, err := s.contacts.Stats(ctx)
	if err != nil {
		return summary, fmt.Errorf("contact stats: %w", err)
	}
	totals, err := s.campaigns.Totals(ctx)
	if err != nil {
		return summary, fmt.Errorf("campaign totals: %w", err)
	}
	campaigns, err := s.campaigns.List(ctx, models.CampaignFilter{})
	if err != nil {
		return summary, fmt.Errorf("list campaigns: %w", err)
	}
	templateStats, err := s.templates.Stats(ctx)
	if err != nil {
		return summary, fmt.Errorf("template stats: %w", err)
	}
	followUpStats, err := s.followUps.Stats(ctx)
	if err != nil {
		return summary, fmt.Errorf("follow-up stats: %w", err)
	}

	summary.MessagesSent = totals.Sent
	summary.Delivered = totals.Delivered
	summary.Replied = totals.Replied
	summary.TotalContacts = contactStats.Total
	summary.ActiveContacts = contactStats.Active
	summary.ApprovedTemplates = templateStats.Approved
	summary.DraftTemplates = templateStats.Drafts
	summary.DueFollowUps = followUpStats.Scheduled
	summary.OverdueFollowUps = followUpStats.Overdue

	for _, c := range campaigns {
		switch c.Status {
		case models.CampaignActive:
			summary.ActiveCampaigns++
		case models.CampaignScheduled:
			summary.ScheduledCampaigns++
		}
	}

	recent := slices.Clone(campaigns)
	slices.SortStableFunc(recent, func(a, b models.Campaign) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	if len(recent) > RecentCampaignsLimit {
		recent = recent[:RecentCampaignsLimit]
	}
	summary.RecentCampaigns = recent

	return summary, nil
}
