package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/store"
	"github.com/MKhiriev/go-wa-desk/internal/validators"
	"github.com/MKhiriev/go-wa-desk/models"
)

// DefaultAudience is stored when a campaign is created without an audience.
const DefaultAudience = "All contacts"

type campaignService struct {
	campaigns store.CampaignRepository
	validator validators.Validator
}

func NewCampaignService(campaigns store.CampaignRepository) CampaignService {
	return &campaignService{
		campaigns: campaigns,
		validator: validators.NewCatalogValidator(),
	}
}

func (s *campaignService) List(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	return s.campaigns.ListCampaigns(ctx, filter)
}

func (s *campaignService) Totals(ctx context.Context) (models.CampaignTotals, error) {
	return s.campaigns.CampaignTotals(ctx)
}

func (s *campaignService) Get(ctx context.Context, id int64) (models.Campaign, error) {
	return s.campaigns.GetCampaign(ctx, id)
}

func (s *campaignService) Create(ctx context.Context, in models.NewCampaign) (models.Campaign, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Campaign{}, err
	}

	c := models.Campaign{
		Name:        strings.TrimSpace(in.Name),
		Audience:    strings.TrimSpace(in.Audience),
		Status:      models.CampaignDraft,
		ScheduledAt: in.ScheduledAt,
		Message:     strings.TrimSpace(in.Message),
		Objective:   strings.TrimSpace(in.Objective),
	}
	if c.Audience == "" {
		c.Audience = DefaultAudience
	}
	if c.ScheduledAt != nil {
		c.Status = models.CampaignScheduled
	}

	created, err := s.campaigns.CreateCampaign(ctx, c)
	if err != nil {
		return models.Campaign{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "campaignService.Create").
		Int64("campaign_id", created.ID).
		Str("status", string(created.Status)).
		Msg("campaign created")
	return created, nil
}

func (s *campaignService) SetStatus(ctx context.Context, id int64, status models.CampaignStatus) error {
	if err := s.validator.Validate(ctx, status); err != nil {
		return err
	}
	return s.campaigns.SetCampaignStatus(ctx, id, status)
}

func (s *campaignService) TogglePause(ctx context.Context, id int64) (models.Campaign, error) {
	c, err := s.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return models.Campaign{}, err
	}

	switch c.Status {
	case models.CampaignActive:
		c.Status = models.CampaignPaused
	case models.CampaignPaused:
		c.Status = models.CampaignActive
	default:
		return c, ErrCampaignNotPausable
	}

	if err = s.campaigns.SetCampaignStatus(ctx, id, c.Status); err != nil {
		return models.Campaign{}, err
	}
	return c, nil
}
