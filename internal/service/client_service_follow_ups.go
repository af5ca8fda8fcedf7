package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/app"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/store"
	"github.com/MKhiriev/go-wa-desk/internal/validators"
	"github.com/MKhiriev/go-wa-desk/models"
)

type followUpService struct {
	followUps store.FollowUpRepository
	validator validators.Validator
	now       func() time.Time
}

func NewFollowUpService(followUps store.FollowUpRepository) FollowUpService {
	return &followUpService{
		followUps: followUps,
		validator: validators.NewCatalogValidator(),
		now:       time.Now,
	}
}

func (s *followUpService) List(ctx context.Context, status models.FollowUpStatus) ([]models.FollowUpView, error) {
	views, err := s.followUps.ListFollowUps(ctx, status)
	if err != nil {
		return nil, err
	}

	for i := range views {
		if views[i].CampaignName == "" {
			views[i].CampaignName = app.MsgUnknown
		}
		if views[i].ContactName == "" {
			views[i].ContactName = app.MsgUnknown
		}
	}
	return views, nil
}

func (s *followUpService) Stats(ctx context.Context) (models.FollowUpStats, error) {
	return s.followUps.FollowUpStats(ctx)
}

func (s *followUpService) Create(ctx context.Context, in models.NewFollowUp) (models.FollowUp, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.FollowUp{}, err
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	return s.followUps.CreateFollowUp(ctx, models.FollowUp{
		CampaignID: in.CampaignID,
		ContactID:  in.ContactID,
		Notes:      strings.TrimSpace(in.Notes),
		DueAt:      in.DueAt,
		Status:     models.FollowUpScheduled,
		Priority:   priority,
	})
}

func (s *followUpService) SetStatus(ctx context.Context, id int64, status models.FollowUpStatus) error {
	if err := s.validator.Validate(ctx, status); err != nil {
		return err
	}
	return s.followUps.SetFollowUpStatus(ctx, id, status)
}

func (s *followUpService) MarkOverdue(ctx context.Context) (int64, error) {
	n, err := s.followUps.MarkOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.FromContext(ctx).Info().
			Str("func", "followUpService.MarkOverdue").
			Int64("count", n).
			Msg("follow-ups marked overdue")
	}
	return n, nil
}
