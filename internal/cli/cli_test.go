package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/backendstub"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/internal/validators"
	"github.com/MKhiriev/go-wa-desk/models"
)

func newStubServer(t *testing.T) (*backendstub.Stub, string) {
	t.Helper()
	stub := backendstub.New(logger.Nop())
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)
	return stub, srv.URL
}

func execute(ctx context.Context, apiURL string, args ...string) (string, error) {
	root := NewRootCommand(models.NewBuildInfo("1.4.0", "2026-10-01", "9f1c2e7"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--api-url", apiURL, "--log-level", "disabled"}, args...))

	err := root.ExecuteContext(ctx)
	return out.String(), err
}

// ── send ─────────────────────────────────────────────────────────────────────

func TestSend_Text(t *testing.T) {
	stub, url := newStubServer(t)

	out, err := execute(context.Background(), url, "send", "--to", "+1 555 555 0100", "--text", "Your order is ready")
	require.NoError(t, err)

	assert.Equal(t, "sent (id: wamid.stub.1)\n", out)
	require.Len(t, stub.Sent(), 1)
	assert.Equal(t, models.OutboundMessage{
		To:   "15555550100",
		Type: models.MessageTypeText,
		Text: "Your order is ready",
	}, stub.Sent()[0])
}

func TestSend_AcceptedWithoutID(t *testing.T) {
	stub, url := newStubServer(t)
	stub.OmitMessageIDs(true)

	out, err := execute(context.Background(), url, "send", "--to", "15555550100", "--text", "hi")
	require.NoError(t, err)
	assert.Equal(t, "sent\n", out)
}

func TestSend_MediaByLink(t *testing.T) {
	stub, url := newStubServer(t)

	_, err := execute(context.Background(), url, "send",
		"--to", "15555550100", "--type", "image",
		"--media-link", "https://cdn.example.com/menu.png", "--caption", "Menu")
	require.NoError(t, err)

	require.Len(t, stub.Sent(), 1)
	sent := stub.Sent()[0]
	assert.Equal(t, models.MessageTypeImage, sent.Type)
	assert.Equal(t, "https://cdn.example.com/menu.png", sent.MediaLink)
	assert.Equal(t, "Menu", sent.Caption)
}

func TestSend_EmptyTextMakesNoRequest(t *testing.T) {
	stub, url := newStubServer(t)

	out, err := execute(context.Background(), url, "send", "--to", "15555550100", "--text", "  ")
	require.ErrorIs(t, err, validators.ErrEmptyText)
	assert.Empty(t, out)
	assert.Empty(t, stub.Sent())
}

func TestSend_BackendErrorVerbatim(t *testing.T) {
	stub, url := newStubServer(t)
	stub.Fail(backendstub.RouteSend, http.StatusBadRequest, `{"detail":"Recipient phone number not in allowed list"}`)

	_, err := execute(context.Background(), url, "send", "--to", "15555550100", "--text", "hi")
	require.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, `{"detail":"Recipient phone number not in allowed list"}`, service.ErrorText(err))
}

func TestSend_FlagErrors(t *testing.T) {
	_, url := newStubServer(t)

	_, err := execute(context.Background(), url, "send", "--text", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"to"`)

	_, err = execute(context.Background(), url, "send", "--to", "1", "--type", "image", "--media-id", "1", "--media-link", "https://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media-id")
}

// ── status ───────────────────────────────────────────────────────────────────

func TestStatus_Once(t *testing.T) {
	stub, url := newStubServer(t)
	ctx := context.Background()

	_, err := execute(ctx, url, "send", "--to", "15555550100", "--text", "hi")
	require.NoError(t, err)

	out, err := execute(ctx, url, "status", "wamid.stub.1")
	require.NoError(t, err)
	assert.Equal(t, "Latest status: sent\nHistory: sent\n", out)

	out, err = execute(ctx, url, "status", "wamid.stub.1")
	require.NoError(t, err)
	assert.Equal(t, "Latest status: delivered\nHistory: sent -> delivered\n", out)
	assert.Equal(t, 2, stub.StatusRequests("wamid.stub.1"))
}

func TestStatus_UnknownMessage(t *testing.T) {
	_, url := newStubServer(t)

	_, err := execute(context.Background(), url, "status", "wamid.missing")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestStatus_RequiresID(t *testing.T) {
	_, url := newStubServer(t)

	_, err := execute(context.Background(), url, "status")
	assert.Error(t, err)
}

func TestStatus_WatchUntilInterrupted(t *testing.T) {
	stub, url := newStubServer(t)

	_, err := execute(context.Background(), url, "send", "--to", "15555550100", "--text", "hi")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	out, err := execute(ctx, url, "status", "wamid.stub.1", "--watch", "--interval", "10ms")
	require.NoError(t, err, "interrupting a watch is not an error")

	assert.True(t, strings.HasPrefix(out, "Tracking delivery status for wamid.stub.1\n"))
	for _, status := range backendstub.DeliveryProgression {
		assert.Contains(t, out, "Latest status: "+status)
	}
	assert.Equal(t, 1, strings.Count(out, "Latest status: read"), "unchanged statuses are printed once")
	assert.Greater(t, stub.StatusRequests("wamid.stub.1"), 3)
}

func TestStatus_WatchPrintsFailuresAndContinues(t *testing.T) {
	stub, url := newStubServer(t)

	_, err := execute(context.Background(), url, "send", "--to", "15555550100", "--text", "hi")
	require.NoError(t, err)
	stub.Fail(backendstub.RouteMessageStatus, http.StatusServiceUnavailable, "upstream down")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	go func() {
		time.Sleep(100 * time.Millisecond)
		stub.Recover(backendstub.RouteMessageStatus)
	}()

	out, err := execute(ctx, url, "status", "wamid.stub.1", "--watch", "--interval", "10ms")
	require.NoError(t, err)

	assert.Contains(t, out, "Unable to fetch status from backend. upstream down")
	assert.Contains(t, out, "Latest status: sent")
}

// ── media / template ─────────────────────────────────────────────────────────

func TestMediaUpload(t *testing.T) {
	stub, url := newStubServer(t)

	path := filepath.Join(t.TempDir(), "menu.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0o600))

	out, err := execute(context.Background(), url, "media", "upload", path, "--type", "image")
	require.NoError(t, err)
	assert.Equal(t, "media.stub.1\n", out)

	uploads := stub.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "menu.png", uploads[0].FileName)
	assert.Equal(t, "image", uploads[0].MediaType)
	assert.Equal(t, []byte("\x89PNG"), uploads[0].Content)
}

func TestMediaUpload_Errors(t *testing.T) {
	stub, url := newStubServer(t)

	_, err := execute(context.Background(), url, "media", "upload", filepath.Join(t.TempDir(), "missing.png"), "--type", "image")
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	_, err = execute(context.Background(), url, "media", "upload", path, "--type", "text")
	assert.ErrorIs(t, err, validators.ErrInvalidMessageType)

	assert.Empty(t, stub.Uploads())
}

func TestTemplateStatus(t *testing.T) {
	stub, url := newStubServer(t)
	stub.SetTemplateStatus("order_ready", "APPROVED")
	stub.SetTemplateStatus("spring_sale", "")

	out, err := execute(context.Background(), url, "template", "status", "order_ready")
	require.NoError(t, err)
	assert.Equal(t, "order_ready: APPROVED\n", out)

	out, err = execute(context.Background(), url, "template", "status", "spring_sale")
	require.NoError(t, err)
	assert.Equal(t, "spring_sale: no status reported\n", out)

	_, err = execute(context.Background(), url, "template", "status", "unknown")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ── root ─────────────────────────────────────────────────────────────────────

func TestVersion_NeedsNoBackend(t *testing.T) {
	out, err := execute(context.Background(), "::not a url::", "version")
	require.NoError(t, err)
	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-10-01\nBuild commit: 9f1c2e7\n", out)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, url := newStubServer(t)

	root := NewRootCommand(models.BuildInfo{})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--api-url", url, "--log-level", "loud", "template", "status", "x"})

	err := root.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidLogConfigs)
}

func TestRoot_TimeoutFlag(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(slow.Close)

	_, err := execute(context.Background(), slow.URL, "--timeout", "20ms", "template", "status", "x")
	require.Error(t, err)
}

func TestGlobalFlags_Overrides(t *testing.T) {
	got := globalFlags{apiURL: "http://api:9000", timeout: time.Second, configPath: "desk.yaml", logLevel: "debug"}.overrides()

	assert.Equal(t, "http://api:9000", got.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, got.Adapter.RequestTimeout)
	assert.Equal(t, "desk.yaml", got.FilePath)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Empty(t, got.Storage.DB.DSN, "unset flags leave lower sources alone")
}
