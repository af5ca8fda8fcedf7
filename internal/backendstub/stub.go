// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backendstub is an in-process stand-in for the messaging backend.
// It serves the four REST endpoints the desk uses, keeps what it receives in
// memory and advances the delivery status of every accepted message one step
// per status request (sent, delivered, read).
//
// Tests mount [Stub.Handler] on an httptest server:
//
//	stub := backendstub.New(logger.Nop())
//	srv := httptest.NewServer(stub.Handler())
//	defer srv.Close()
package backendstub

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// Route names an endpoint for failure injection.
type Route string

const (
	RouteSend           Route = "send"
	RouteMessageStatus  Route = "message_status"
	RouteMedia          Route = "media"
	RouteTemplateStatus Route = "template_status"
)

// DeliveryProgression is the sequence of statuses reported for an accepted
// message. The last one repeats.
var DeliveryProgression = []string{"sent", "delivered", "read"}

// Upload is a media file received by the stub.
type Upload struct {
	ID        string
	FileName  string
	MediaType string
	Content   []byte
}

type failure struct {
	status int
	body   string
}

type tracked struct {
	polls int
	times []time.Time
}

// Stub is a fake backend. The zero value is not usable; call New.
type Stub struct {
	mu        sync.Mutex
	sent      []models.OutboundMessage
	uploads   []Upload
	messages  map[string]*tracked
	templates map[string]string
	failures  map[Route]failure
	omitIDs   bool
	seq       int

	now    func() time.Time
	logger *logger.Logger
}

func New(logger *logger.Logger) *Stub {
	return &Stub{
		messages:  make(map[string]*tracked),
		templates: make(map[string]string),
		failures:  make(map[Route]failure),
		now:       time.Now,
		logger:    logger,
	}
}

// Fail makes every request to route answer with status and body until
// Recover is called.
func (s *Stub) Fail(route Route, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, body: body}
}

// Recover removes the failure set for route.
func (s *Stub) Recover(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

// OmitMessageIDs makes the send endpoint accept messages without returning
// an id.
func (s *Stub) OmitMessageIDs(omit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.omitIDs = omit
}

// SetTemplateStatus registers a template and the review status reported for
// it. An empty status is reported as absent.
func (s *Stub) SetTemplateStatus(templateID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[templateID] = status
}

// Sent returns a copy of every message accepted so far.
func (s *Stub) Sent() []models.OutboundMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OutboundMessage(nil), s.sent...)
}

// Uploads returns a copy of every media file received so far.
func (s *Stub) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Upload(nil), s.uploads...)
}

// StatusRequests returns how many status requests were served for
// messageID.
func (s *Stub) StatusRequests(messageID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.messages[messageID]; ok {
		return m.polls
	}
	return 0
}

func (s *Stub) failureFor(route Route) (failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.failures[route]
	return f, ok
}

func (s *Stub) accept(msg models.OutboundMessage) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("wamid.stub.%d", s.seq)
	s.sent = append(s.sent, msg)
	s.messages[id] = &tracked{}
	return id, !s.omitIDs
}

func (s *Stub) store(u Upload) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	u.ID = fmt.Sprintf("media.stub.%d", s.seq)
	s.uploads = append(s.uploads, u)
	return u.ID
}

// status advances the progression of messageID and renders the snapshot
// served by the status endpoint.
func (s *Stub) status(messageID string) (models.MessageStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[messageID]
	if !ok {
		return models.MessageStatus{}, false
	}

	step := min(m.polls, len(DeliveryProgression)-1)
	if len(m.times) <= step {
		m.times = append(m.times, s.now().UTC())
	}
	m.polls++

	history := make([]map[string]any, 0, step+1)
	for i := 0; i <= step; i++ {
		history = append(history, snapshot(DeliveryProgression[i], m.times[i]))
	}

	latest, _ := marshalSnapshot(history[step])
	return models.MessageStatus{
		MessageID: messageID,
		Latest:    latest,
		History:   history,
	}, true
}

func (s *Stub) templateStatus(templateID string) (models.TemplateStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, ok := s.templates[templateID]
	if !ok {
		return models.TemplateStatus{}, false
	}
	return models.TemplateStatus{ID: templateID, Status: status}, true
}
