// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the messaging backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the REST protocol. The package ships an HTTP implementation
// ([NewHTTPBackendAdapter]) built on resty.
//
// Non-2xx responses are returned as [*HTTPError]. Its message is the response
// body text, and it matches the sentinel values defined in errors.go through
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wa-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines communication with the messaging backend. Every
// method issues exactly one request and never retries.
type BackendAdapter interface {
	// SendMessage posts msg to POST /whatsapp/messages as JSON and returns the
	// provider message references. The result may carry no id when the
	// backend accepted the message without one.
	SendMessage(ctx context.Context, msg models.OutboundMessage) (models.SendResult, error)

	// GetMessageStatus fetches the latest and historical delivery snapshots
	// of messageID from GET /whatsapp/messages/{id}/status. It never changes
	// server state.
	GetMessageStatus(ctx context.Context, messageID string) (models.MessageStatus, error)

	// UploadMedia sends upload as multipart form data with the parts "file"
	// and "media_type" to POST /whatsapp/media and returns the media id.
	UploadMedia(ctx context.Context, upload models.MediaUpload) (models.MediaResponse, error)

	// GetTemplateStatus fetches the provider review status of templateID from
	// GET /whatsapp/templates/{id}/status.
	GetTemplateStatus(ctx context.Context, templateID string) (models.TemplateStatus, error)

	// BaseURL returns the normalized backend base URL, without a trailing
	// slash.
	BaseURL() string
}
