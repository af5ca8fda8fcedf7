// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// MessageType is the kind of WhatsApp message being sent. It selects which
// payload fields of [OutboundMessage] are meaningful.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeAudio    MessageType = "audio"
	MessageTypeDocument MessageType = "document"
	MessageTypeSticker  MessageType = "sticker"
	MessageTypeVideo    MessageType = "video"
)

// MessageTypes lists every supported kind in display order.
var MessageTypes = []MessageType{
	MessageTypeText,
	MessageTypeImage,
	MessageTypeAudio,
	MessageTypeDocument,
	MessageTypeSticker,
	MessageTypeVideo,
}

// Valid reports whether t is one of the supported message kinds.
func (t MessageType) Valid() bool {
	for _, known := range MessageTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsMedia reports whether t carries a media reference instead of a text body.
func (t MessageType) IsMedia() bool {
	return t.Valid() && t != MessageTypeText
}

// OutboundMessage is the request body of POST /whatsapp/messages.
//
// Only the fields relevant to Type are sent: Text for text messages,
// MediaID or MediaLink (plus an optional Caption) for media messages.
type OutboundMessage struct {
	// To is the recipient identifier, digits only.
	To string `json:"to"`

	// Type selects the message kind.
	Type MessageType `json:"type"`

	// Text is the body of a text message.
	Text string `json:"text,omitempty"`

	// MediaID references media previously uploaded via POST /whatsapp/media.
	MediaID string `json:"media_id,omitempty"`

	// MediaLink is a public URL the provider downloads the media from.
	MediaLink string `json:"media_link,omitempty"`

	// Caption is shown under image, video and document messages.
	Caption string `json:"caption,omitempty"`
}

// SentMessage is a single provider-assigned message reference.
type SentMessage struct {
	ID string `json:"id"`
}

// SendResult is the response of POST /whatsapp/messages.
type SendResult struct {
	Messages []SentMessage `json:"messages,omitempty"`
}

// MessageID returns the first provider message id. ok is false when the
// backend accepted the message without returning an id.
func (r SendResult) MessageID() (id string, ok bool) {
	if len(r.Messages) == 0 || r.Messages[0].ID == "" {
		return "", false
	}
	return r.Messages[0].ID, true
}

// MessageStatus is the response of GET /whatsapp/messages/{id}/status.
//
// Latest and History are opaque snapshots reported by the backend. Latest may
// be an object, a bare status string or null depending on the backend build,
// so it is kept as raw JSON and interpreted by [MessageStatus.LatestStatus].
type MessageStatus struct {
	MessageID string           `json:"message_id"`
	Latest    json.RawMessage  `json:"latest"`
	History   []map[string]any `json:"history"`
}

// LatestStatus extracts a human-readable status from Latest. It returns the
// "status" field when Latest is an object, the value itself when Latest is a
// string, and "" when no status has been reported yet.
func (s MessageStatus) LatestStatus() string {
	raw := strings.TrimSpace(string(s.Latest))
	if raw == "" || raw == "null" {
		return ""
	}

	var asString string
	if err := json.Unmarshal(s.Latest, &asString); err == nil {
		return asString
	}

	var asObject map[string]any
	if err := json.Unmarshal(s.Latest, &asObject); err != nil {
		return ""
	}
	status, _ := asObject["status"].(string)
	return status
}

// LatestSnapshot decodes Latest as an object. ok is false when Latest is
// absent or not an object.
func (s MessageStatus) LatestSnapshot() (snapshot map[string]any, ok bool) {
	if len(s.Latest) == 0 {
		return nil, false
	}
	if err := json.Unmarshal(s.Latest, &snapshot); err != nil || snapshot == nil {
		return nil, false
	}
	return snapshot, true
}

// HistoryStatuses returns the "status" field of each history entry in order,
// skipping entries without one.
func (s MessageStatus) HistoryStatuses() []string {
	out := make([]string, 0, len(s.History))
	for _, entry := range s.History {
		if status, ok := entry["status"].(string); ok && status != "" {
			out = append(out, status)
		}
	}
	return out
}

// StatusUpdate is one result of a status poll. Exactly one of Status and Err
// is meaningful.
type StatusUpdate struct {
	MessageID string
	Status    MessageStatus
	Err       error
	At        time.Time
}
