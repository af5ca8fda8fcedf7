package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/utils"
	"github.com/MKhiriev/go-wa-desk/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathMessages       = "/whatsapp/messages"
	pathMessageStatus  = "/whatsapp/messages/{id}/status"
	pathMedia          = "/whatsapp/media"
	pathTemplateStatus = "/whatsapp/templates/{id}/status"

	contentTypeJSON = "application/json"
)

// ErrEmptyID is returned when a status lookup is requested for an empty id.
var ErrEmptyID = errors.New("empty id")

type httpBackendAdapter struct {
	client  *utils.HTTPClient
	ids     *utils.UUIDGenerator
	baseURL string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBackendAdapter{
		client:  client,
		ids:     utils.NewUUIDGenerator(),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [BackendAdapter].
func (h *httpBackendAdapter) BaseURL() string {
	return h.baseURL
}

// SendMessage implements [BackendAdapter]. It POSTs msg as JSON to
// POST /whatsapp/messages and decodes the {messages: [{id}]} response.
func (h *httpBackendAdapter) SendMessage(ctx context.Context, msg models.OutboundMessage) (models.SendResult, error) {
	resp, err := h.jsonRequest(ctx).
		SetBody(msg).
		Post(pathMessages)
	if err != nil {
		return models.SendResult{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SendResult{}, err
	}

	var result models.SendResult
	if err = decodeJSON(resp, "send message", &result); err != nil {
		return models.SendResult{}, err
	}
	return result, nil
}

// GetMessageStatus implements [BackendAdapter]. The id is path-escaped.
func (h *httpBackendAdapter) GetMessageStatus(ctx context.Context, messageID string) (models.MessageStatus, error) {
	if strings.TrimSpace(messageID) == "" {
		return models.MessageStatus{}, fmt.Errorf("get message status: %w", ErrEmptyID)
	}

	resp, err := h.jsonRequest(ctx).
		SetPathParam("id", messageID).
		Get(pathMessageStatus)
	if err != nil {
		return models.MessageStatus{}, fmt.Errorf("get message status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageStatus{}, err
	}

	var status models.MessageStatus
	if err = decodeJSON(resp, "message status", &status); err != nil {
		return models.MessageStatus{}, err
	}
	return status, nil
}

// UploadMedia implements [BackendAdapter]. The request is multipart form data;
// resty sets the multipart Content-Type with its boundary.
func (h *httpBackendAdapter) UploadMedia(ctx context.Context, upload models.MediaUpload) (models.MediaResponse, error) {
	if upload.Content == nil {
		return models.MediaResponse{}, fmt.Errorf("upload media: empty content")
	}

	resp, err := h.request(ctx).
		SetFileReader("file", upload.FileName, upload.Content).
		SetFormData(map[string]string{"media_type": string(upload.MediaType)}).
		Post(pathMedia)
	if err != nil {
		return models.MediaResponse{}, fmt.Errorf("upload media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaResponse{}, err
	}

	var media models.MediaResponse
	if err = decodeJSON(resp, "upload media", &media); err != nil {
		return models.MediaResponse{}, err
	}
	return media, nil
}

// GetTemplateStatus implements [BackendAdapter].
func (h *httpBackendAdapter) GetTemplateStatus(ctx context.Context, templateID string) (models.TemplateStatus, error) {
	if strings.TrimSpace(templateID) == "" {
		return models.TemplateStatus{}, fmt.Errorf("get template status: %w", ErrEmptyID)
	}

	resp, err := h.jsonRequest(ctx).
		SetPathParam("id", templateID).
		Get(pathTemplateStatus)
	if err != nil {
		return models.TemplateStatus{}, fmt.Errorf("get template status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TemplateStatus{}, err
	}

	var status models.TemplateStatus
	if err = decodeJSON(resp, "template status", &status); err != nil {
		return models.TemplateStatus{}, err
	}
	return status, nil
}

// request starts a request carrying a correlation id. An id already stored in
// ctx is reused.
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	requestID, ok := utils.RequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(utils.HeaderRequestID, requestID)
}

func (h *httpBackendAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetHeader("Accept", contentTypeJSON)
}
