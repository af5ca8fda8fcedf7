package backendstub

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/utils"
	"github.com/MKhiriev/go-wa-desk/models"
)

func newServer(t *testing.T) (*Stub, *httptest.Server) {
	t.Helper()
	stub := New(logger.Nop())
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)
	return stub, srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSendMessage_AssignsID(t *testing.T) {
	stub, srv := newServer(t)

	resp := postJSON(t, srv.URL+"/whatsapp/messages", models.OutboundMessage{To: "15555550100", Type: models.MessageTypeText, Text: "hi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(utils.HeaderRequestID))

	var result models.SendResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	id, ok := result.MessageID()
	require.True(t, ok)
	assert.Equal(t, "wamid.stub.1", id)

	sent := stub.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "hi", sent[0].Text)
}

func TestSendMessage_WithoutID(t *testing.T) {
	stub, srv := newServer(t)
	stub.OmitMessageIDs(true)

	resp := postJSON(t, srv.URL+"/whatsapp/messages", models.OutboundMessage{To: "1", Type: models.MessageTypeText, Text: "x"})
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{}`, string(body))
}

func TestSendMessage_Rejected(t *testing.T) {
	_, srv := newServer(t)

	resp := postJSON(t, srv.URL+"/whatsapp/messages", map[string]string{"to": "1", "type": "location"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFail_WritesBodyVerbatim(t *testing.T) {
	stub, srv := newServer(t)
	stub.Fail(RouteSend, http.StatusBadGateway, "upstream down")

	resp := postJSON(t, srv.URL+"/whatsapp/messages", models.OutboundMessage{To: "1", Type: models.MessageTypeText, Text: "x"})
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "upstream down", string(body))

	stub.Recover(RouteSend)
	resp = postJSON(t, srv.URL+"/whatsapp/messages", models.OutboundMessage{To: "1", Type: models.MessageTypeText, Text: "x"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMessageStatus_Progresses(t *testing.T) {
	stub, srv := newServer(t)
	postJSON(t, srv.URL+"/whatsapp/messages", models.OutboundMessage{To: "1", Type: models.MessageTypeText, Text: "x"})

	var latest []string
	for i := 0; i < 4; i++ {
		resp, err := http.Get(srv.URL + "/whatsapp/messages/wamid.stub.1/status")
		require.NoError(t, err)

		var status models.MessageStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
		resp.Body.Close()

		assert.Equal(t, "wamid.stub.1", status.MessageID)
		latest = append(latest, status.LatestStatus())
		if i == 3 {
			assert.Equal(t, []string{"sent", "delivered", "read"}, status.HistoryStatuses())
		}
	}

	assert.Equal(t, []string{"sent", "delivered", "read", "read"}, latest)
	assert.Equal(t, 4, stub.StatusRequests("wamid.stub.1"))
}

func TestMessageStatus_Unknown(t *testing.T) {
	_, srv := newServer(t)

	resp, err := http.Get(srv.URL + "/whatsapp/messages/wamid.nope/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Message not found"}`, string(body))
}

func TestUploadMedia_Multipart(t *testing.T) {
	stub, srv := newServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("png-bytes"))
	require.NoError(t, mw.WriteField("media_type", "image"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/whatsapp/media", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	var media models.MediaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&media))
	assert.True(t, strings.HasPrefix(media.ID, "media.stub."))

	uploads := stub.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "logo.png", uploads[0].FileName)
	assert.Equal(t, "image", uploads[0].MediaType)
	assert.Equal(t, []byte("png-bytes"), uploads[0].Content)
}

func TestUploadMedia_JSONRejected(t *testing.T) {
	_, srv := newServer(t)

	resp := postJSON(t, srv.URL+"/whatsapp/media", map[string]string{"file": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTemplateStatus(t *testing.T) {
	stub, srv := newServer(t)
	stub.SetTemplateStatus("order_ready", "APPROVED")

	resp, err := http.Get(srv.URL + "/whatsapp/templates/order_ready/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var status models.TemplateStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, models.TemplateStatus{ID: "order_ready", Status: "APPROVED"}, status)

	resp2, err := http.Get(srv.URL + "/whatsapp/templates/other/status")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestRequestIDEchoed(t *testing.T) {
	_, srv := newServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/whatsapp/templates/x/status", nil)
	require.NoError(t, err)
	req.Header.Set(utils.HeaderRequestID, "req-42")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-42", resp.Header.Get(utils.HeaderRequestID))
}
