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

type contactService struct {
	contacts  store.ContactRepository
	validator validators.Validator
	now       func() time.Time
}

func NewContactService(contacts store.ContactRepository) ContactService {
	return &contactService{
		contacts:  contacts,
		validator: validators.NewCatalogValidator(),
		now:       time.Now,
	}
}

func (s *contactService) List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	return s.contacts.ListContacts(ctx, filter)
}

func (s *contactService) Stats(ctx context.Context) (models.ContactStats, error) {
	return s.contacts.ContactStats(ctx)
}

func (s *contactService) Tags(ctx context.Context) ([]string, error) {
	return s.contacts.ListTags(ctx)
}

func (s *contactService) Create(ctx context.Context, in models.NewContact) (models.Contact, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Contact{}, err
	}

	status := in.Status
	if status == "" {
		status = models.ContactActive
	}

	created, err := s.contacts.CreateContact(ctx, models.Contact{
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Status:      status,
		Tags:        models.ParseTags(in.Tags),
		LastContact: startOfDay(s.now()),
		Notes:       strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return models.Contact{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "contactService.Create").
		Int64("contact_id", created.ID).
		Msg("contact created")
	return created, nil
}

func (s *contactService) SetStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	if err := s.validator.Validate(ctx, status); err != nil {
		return err
	}
	return s.contacts.SetContactStatus(ctx, id, status)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
