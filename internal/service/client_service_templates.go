package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/store"
	"github.com/MKhiriev/go-wa-desk/internal/validators"
	"github.com/MKhiriev/go-wa-desk/models"
)

const (
	defaultTemplateChannel = "WhatsApp"
	draftUsage             = "Draft"
)

type templateService struct {
	templates store.TemplateRepository
	messages  MessageService
	validator validators.Validator
	now       func() time.Time
}

func NewTemplateService(templates store.TemplateRepository, messages MessageService) TemplateService {
	return &templateService{
		templates: templates,
		messages:  messages,
		validator: validators.NewCatalogValidator(),
		now:       time.Now,
	}
}

func (s *templateService) List(ctx context.Context, filter models.TemplateFilter) ([]models.Template, error) {
	return s.templates.ListTemplates(ctx, filter)
}

func (s *templateService) Stats(ctx context.Context) (models.TemplateStats, error) {
	return s.templates.TemplateStats(ctx)
}

func (s *templateService) Categories(ctx context.Context) ([]string, error) {
	return s.templates.ListCategories(ctx)
}

func (s *templateService) Languages(ctx context.Context) ([]string, error) {
	return s.templates.ListLanguages(ctx)
}

func (s *templateService) Create(ctx context.Context, in models.NewTemplate) (models.Template, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Template{}, err
	}

	tpl := models.Template{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Language:    strings.TrimSpace(in.Language),
		Status:      models.TemplateDraft,
		LastUpdated: s.now(),
		BodyPreview: strings.TrimSpace(in.Body),
		Usage:       draftUsage,
		Channel:     defaultTemplateChannel,
		HeaderType:  in.HeaderType,
		Footer:      strings.TrimSpace(in.Footer),
		Buttons:     in.Buttons,
	}
	if tpl.Category == "" {
		tpl.Category = models.TemplateCategories[0]
	}
	if tpl.Language == "" {
		tpl.Language = models.TemplateLanguages[0]
	}
	if tpl.HeaderType == "" {
		tpl.HeaderType = models.HeaderNone
	}
	if tpl.HeaderType != models.HeaderNone {
		tpl.HeaderText = strings.TrimSpace(in.HeaderText)
	}

	created, err := s.templates.CreateTemplate(ctx, tpl)
	if err != nil {
		return models.Template{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "templateService.Create").
		Int64("template_id", created.ID).
		Msg("template draft created")
	return created, nil
}

func (s *templateService) CheckRemote(ctx context.Context, id int64) (models.TemplateCheck, error) {
	log := logger.FromContext(ctx)

	tpl, err := s.templates.GetTemplate(ctx, id)
	if err != nil {
		return models.TemplateCheck{}, err
	}
	if tpl.ProviderID == "" {
		return models.TemplateCheck{Template: tpl}, ErrTemplateNotSubmitted
	}

	remote, err := s.messages.TemplateStatus(ctx, tpl.ProviderID)
	if err != nil {
		return models.TemplateCheck{Template: tpl}, err
	}

	check := models.TemplateCheck{Template: tpl, ProviderStatus: remote.Status}

	state, ok := models.ParseTemplateState(remote.Status)
	if !ok || state == tpl.Status {
		log.Debug().
			Str("func", "templateService.CheckRemote").
			Str("provider_id", tpl.ProviderID).
			Str("provider_status", remote.Status).
			Msg("template status unchanged")
		return check, nil
	}

	updatedAt := s.now()
	if err = s.templates.SetTemplateStatus(ctx, id, state, updatedAt); err != nil {
		return check, err
	}

	check.Template.Status = state
	check.Template.LastUpdated = updatedAt
	check.Changed = true

	log.Info().
		Str("func", "templateService.CheckRemote").
		Int64("template_id", id).
		Str("status", string(state)).
		Msg("template status updated from provider")
	return check, nil
}
