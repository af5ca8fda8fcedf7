// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/validators"
	"github.com/MKhiriev/go-wa-desk/models"
)

type messageService struct {
	backend   adapter.BackendAdapter
	validator validators.Validator
}

// NewMessageService creates a MessageService backed by backend.
func NewMessageService(backend adapter.BackendAdapter) MessageService {
	return &messageService{
		backend:   backend,
		validator: validators.NewMessageValidator(),
	}
}

func (s *messageService) Send(ctx context.Context, msg models.OutboundMessage) (models.SendResult, error) {
	log := logger.FromContext(ctx)

	msg = validators.NormalizeOutbound(msg)
	if err := s.validator.Validate(ctx, msg); err != nil {
		log.Debug().Err(err).Str("func", "messageService.Send").Msg("outbound message rejected locally")
		return models.SendResult{}, err
	}

	result, err := s.backend.SendMessage(ctx, msg)
	if err != nil {
		log.Err(err).
			Str("func", "messageService.Send").
			Str("type", string(msg.Type)).
			Msg("failed to send message")
		return models.SendResult{}, err
	}

	id, ok := result.MessageID()
	log.Info().
		Str("func", "messageService.Send").
		Str("message_id", id).
		Bool("has_id", ok).
		Msg("message accepted by backend")

	return result, nil
}

func (s *messageService) Status(ctx context.Context, messageID string) (models.MessageStatus, error) {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return models.MessageStatus{}, ErrEmptyMessageID
	}

	status, err := s.backend.GetMessageStatus(ctx, messageID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "messageService.Status").
			Str("message_id", messageID).
			Msg("failed to fetch message status")
		return models.MessageStatus{}, err
	}

	return status, nil
}

func (s *messageService) UploadMedia(ctx context.Context, upload models.MediaUpload) (models.MediaResponse, error) {
	upload.MediaType = models.MessageType(strings.ToLower(strings.TrimSpace(string(upload.MediaType))))
	if err := s.validator.Validate(ctx, upload); err != nil {
		return models.MediaResponse{}, err
	}

	resp, err := s.backend.UploadMedia(ctx, upload)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "messageService.UploadMedia").
			Str("file", upload.FileName).
			Msg("failed to upload media")
		return models.MediaResponse{}, err
	}

	return resp, nil
}

func (s *messageService) TemplateStatus(ctx context.Context, templateID string) (models.TemplateStatus, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		return models.TemplateStatus{}, ErrEmptyTemplateID
	}

	return s.backend.GetTemplateStatus(ctx, templateID)
}

func (s *messageService) BaseURL() string {
	return s.backend.BaseURL()
}
