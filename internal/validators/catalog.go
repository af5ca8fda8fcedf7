package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-wa-desk/models"
)

// CatalogValidator implements [Validator] for catalog inputs:
// models.NewContact, models.NewCampaign, models.NewFollowUp and
// models.NewTemplate, plus the
// status values accepted by status changes.
type CatalogValidator struct {
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate dispatches validation by the dynamic type of obj. Field scoping is
// not supported for catalog inputs; any field name yields ErrUnknownField.
func (v *CatalogValidator) Validate(_ context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.NewContact:
		return validateNewContact(value)
	case *models.NewContact:
		return validateNewContact(*value)

	case models.NewCampaign:
		return validateNewCampaign(value)
	case *models.NewCampaign:
		return validateNewCampaign(*value)

	case models.NewFollowUp:
		return validateNewFollowUp(value)
	case *models.NewFollowUp:
		return validateNewFollowUp(*value)

	case models.NewTemplate:
		return validateNewTemplate(value)
	case *models.NewTemplate:
		return validateNewTemplate(*value)

	case models.ContactStatus:
		if !slices.Contains(models.ContactStatuses, value) {
			return ErrInvalidStatus
		}
		return nil
	case models.CampaignStatus:
		if !value.Valid() {
			return ErrInvalidStatus
		}
		return nil
	case models.FollowUpStatus:
		if !value.Valid() {
			return ErrInvalidStatus
		}
		return nil
	case models.TemplateState:
		if !slices.Contains(models.TemplateStates, value) {
			return ErrInvalidStatus
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func validateNewContact(c models.NewContact) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrEmptyPhone
	}
	if c.Status != "" && !slices.Contains(models.ContactStatuses, c.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func validateNewCampaign(c models.NewCampaign) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func validateNewFollowUp(f models.NewFollowUp) error {
	if f.CampaignID <= 0 || f.ContactID <= 0 {
		return ErrInvalidReference
	}
	if strings.TrimSpace(f.Notes) == "" {
		return ErrEmptyNotes
	}
	if f.DueAt.IsZero() {
		return ErrMissingDueDate
	}
	switch f.Priority {
	case "", models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return nil
	default:
		return ErrInvalidPriority
	}
}

func validateNewTemplate(t models.NewTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(t.Body) == "" {
		return ErrEmptyBody
	}
	if t.HeaderType != "" && !slices.Contains(models.TemplateHeaderTypes, t.HeaderType) {
		return ErrInvalidHeader
	}
	if t.HeaderType == models.HeaderText && strings.TrimSpace(t.HeaderText) == "" {
		return ErrInvalidHeader
	}
	for _, b := range t.Buttons {
		if strings.TrimSpace(b.Label) == "" {
			return ErrInvalidButton
		}
		if b.Type != models.ButtonCTA && b.Type != models.ButtonQuickReply {
			return ErrInvalidButton
		}
		if b.Type == models.ButtonCTA && strings.TrimSpace(b.URL) == "" {
			return ErrInvalidButton
		}
	}
	if cta, quick := models.CountButtons(t.Buttons); cta > models.MaxCTAButtons || quick > models.MaxQuickReplyButtons {
		return ErrTooManyButtons
	}
	return nil
}
