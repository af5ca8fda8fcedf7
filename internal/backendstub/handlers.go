package backendstub

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/utils"
	"github.com/MKhiriev/go-wa-desk/models"
)

const maxUploadMemory = 8 << 20

func (s *Stub) sendMessage(w http.ResponseWriter, r *http.Request) {
	if s.writeFailure(w, RouteSend) {
		return
	}

	var msg models.OutboundMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Stub.sendMessage").Msg("invalid message body")
		writeDetail(w, "Invalid JSON body", http.StatusUnprocessableEntity)
		return
	}
	if msg.To == "" || !msg.Type.Valid() {
		writeDetail(w, "Recipient and a supported type are required", http.StatusBadRequest)
		return
	}

	id, withID := s.accept(msg)
	if !withID {
		utils.WriteJSON(w, models.SendResult{}, http.StatusOK)
		return
	}
	utils.WriteJSON(w, models.SendResult{Messages: []models.SentMessage{{ID: id}}}, http.StatusOK)
}

func (s *Stub) messageStatus(w http.ResponseWriter, r *http.Request) {
	if s.writeFailure(w, RouteMessageStatus) {
		return
	}

	status, ok := s.status(chi.URLParam(r, "id"))
	if !ok {
		writeDetail(w, "Message not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, status, http.StatusOK)
}

func (s *Stub) uploadMedia(w http.ResponseWriter, r *http.Request) {
	if s.writeFailure(w, RouteMedia) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeDetail(w, "Expected multipart form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, "Missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, "Unreadable file part", http.StatusBadRequest)
		return
	}

	id := s.store(Upload{
		FileName:  header.Filename,
		MediaType: r.FormValue("media_type"),
		Content:   content,
	})
	utils.WriteJSON(w, models.MediaResponse{ID: id}, http.StatusOK)
}

func (s *Stub) templateReview(w http.ResponseWriter, r *http.Request) {
	if s.writeFailure(w, RouteTemplateStatus) {
		return
	}

	status, ok := s.templateStatus(chi.URLParam(r, "id"))
	if !ok {
		writeDetail(w, "Template not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, status, http.StatusOK)
}

// writeFailure answers with the injected failure of route, if any.
func (s *Stub) writeFailure(w http.ResponseWriter, route Route) bool {
	f, ok := s.failureFor(route)
	if !ok {
		return false
	}
	utils.WriteText(w, f.body, f.status)
	return true
}

func writeDetail(w http.ResponseWriter, detail string, status int) {
	utils.WriteJSON(w, map[string]string{"detail": detail}, status)
}

func snapshot(status string, at time.Time) map[string]any {
	return map[string]any{
		"status":    status,
		"timestamp": strconv.FormatInt(at.Unix(), 10),
	}
}

func marshalSnapshot(v map[string]any) (json.RawMessage, error) {
	return json.Marshal(v)
}
