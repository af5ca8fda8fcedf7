package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-wa-desk/models"
)

// Field name constants used to restrict outbound message validation to a
// subset of fields.
const (
	// FieldRecipient targets OutboundMessage.To.
	FieldRecipient = "to"

	// FieldType targets OutboundMessage.Type or MediaUpload.MediaType.
	FieldType = "type"

	// FieldText targets the body of text messages.
	FieldText = "text"

	// FieldMedia targets the media reference of media messages.
	FieldMedia = "media"

	// FieldFileName targets MediaUpload.FileName.
	FieldFileName = "file_name"
)

// MessageValidator implements [Validator] for outbound traffic:
// models.OutboundMessage and models.MediaUpload, as values or pointers.
//
// It checks already normalized input; see [NormalizeOutbound].
type MessageValidator struct {
}

// NewMessageValidator constructs a new MessageValidator and returns it as the
// Validator interface.
func NewMessageValidator() Validator {
	return &MessageValidator{}
}

// Validate dispatches validation by the dynamic type of obj.
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OutboundMessage:
		return v.validateOutbound(ctx, value, fields...)
	case *models.OutboundMessage:
		return v.validateOutbound(ctx, *value, fields...)

	case models.MediaUpload:
		return v.validateUpload(ctx, value, fields...)
	case *models.MediaUpload:
		return v.validateUpload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateOutbound checks an outbound message.
//
// Default validated fields: recipient, type, then text or media depending on
// the type. Returns the first encountered validation error or nil.
func (v *MessageValidator) validateOutbound(_ context.Context, msg models.OutboundMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecipient, FieldType}
		if msg.Type == models.MessageTypeText {
			fields = append(fields, FieldText)
		} else {
			fields = append(fields, FieldMedia)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldRecipient:
			if DigitsOnly(msg.To) == "" {
				return ErrEmptyRecipient
			}
		case FieldType:
			if !msg.Type.Valid() {
				return ErrInvalidMessageType
			}
		case FieldText:
			if strings.TrimSpace(msg.Text) == "" {
				return ErrEmptyText
			}
		case FieldMedia:
			if strings.TrimSpace(msg.MediaID) == "" && strings.TrimSpace(msg.MediaLink) == "" {
				return ErrMissingMedia
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateUpload(_ context.Context, upload models.MediaUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldType, FieldMedia}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(upload.FileName) == "" {
				return ErrEmptyFileName
			}
		case FieldType:
			if !upload.MediaType.IsMedia() {
				return ErrInvalidMessageType
			}
		case FieldMedia:
			if upload.Content == nil {
				return ErrMissingMedia
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// DigitsOnly strips every non-digit rune, e.g. "+1 555 555 0100" becomes
// "15555550100".
func DigitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeOutbound returns msg with the recipient reduced to digits, the
// type lower-cased, and the payload fields that do not belong to the type
// cleared. Text is trimmed.
func NormalizeOutbound(msg models.OutboundMessage) models.OutboundMessage {
	out := models.OutboundMessage{
		To:   DigitsOnly(msg.To),
		Type: models.MessageType(strings.ToLower(strings.TrimSpace(string(msg.Type)))),
	}
	if out.Type == models.MessageTypeText {
		out.Text = strings.TrimSpace(msg.Text)
		return out
	}

	out.MediaID = strings.TrimSpace(msg.MediaID)
	out.MediaLink = strings.TrimSpace(msg.MediaLink)
	out.Caption = strings.TrimSpace(msg.Caption)
	return out
}
