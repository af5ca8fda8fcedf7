package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/app"
	"github.com/MKhiriev/go-wa-desk/internal/mock"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

type inboxFixture struct {
	model    inboxModel
	messages *mock.MockMessageService
	poller   *mock.MockStatusPoller
	inbox    *mock.MockInboxService
	updates  chan models.StatusUpdate
}

func newInboxFixture(t *testing.T) *inboxFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &inboxFixture{
		messages: mock.NewMockMessageService(ctrl),
		poller:   mock.NewMockStatusPoller(ctrl),
		inbox:    mock.NewMockInboxService(ctrl),
		updates:  make(chan models.StatusUpdate, 1),
	}
	f.messages.EXPECT().BaseURL().Return("http://localhost:8000").AnyTimes()
	f.poller.EXPECT().Updates().Return((<-chan models.StatusUpdate)(f.updates)).AnyTimes()

	f.model = newInboxModel(context.Background(), &service.ClientServices{
		MessageService: f.messages,
		StatusPoller:   f.poller,
		InboxService:   f.inbox,
	}, "")
	f.update(pageFocusMsg{})
	return f
}

func (f *inboxFixture) update(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(inboxModel)
	return cmd
}

func delivered() models.MessageStatus {
	return models.MessageStatus{
		MessageID: "wamid.1",
		Latest:    json.RawMessage(`{"status":"delivered"}`),
		History:   []map[string]any{{"status": "sent"}, {"status": "delivered"}},
	}
}

func TestInbox_SendSuccessTracksDelivery(t *testing.T) {
	f := newInboxFixture(t)
	f.model.composer.SetValue("Hello")
	f.model.focusOn(focusComposer)

	cmd := f.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, f.model.sending)
	assert.Contains(t, f.model.View(), app.MsgSending)

	// a second enter while in flight is ignored
	assert.Nil(t, f.update(tea.KeyMsg{Type: tea.KeyEnter}))

	f.poller.EXPECT().Start(gomock.Any(), "wamid.1")
	f.update(sentMsg{
		entry:  models.ChatEntry{ID: "local-1", Body: "Hello", Direction: models.Outgoing},
		result: models.SendResult{Messages: []models.SentMessage{{ID: "wamid.1"}}},
	})

	assert.False(t, f.model.sending)
	assert.Empty(t, f.model.composer.Value())
	view := f.model.View()
	assert.Contains(t, view, app.MsgSent)
	assert.Contains(t, view, app.TrackingMessage("wamid.1"))
	assert.Contains(t, view, app.MsgCheckingDelivery)

	f.update(statusMsg{MessageID: "wamid.1", Status: delivered()})
	view = f.model.View()
	assert.Contains(t, view, "Latest status: delivered")
	assert.Contains(t, view, "sent → delivered")
	assert.Equal(t, "delivered", f.model.session[0][0].Status)

	// a failed poll keeps the last status and says so
	f.update(statusMsg{MessageID: "wamid.1", Err: errors.New("boom")})
	view = f.model.View()
	assert.Contains(t, view, "Latest status: delivered")
	assert.Contains(t, view, app.MsgStatusFetchFailed)

	f.poller.EXPECT().Stop()
	f.update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Empty(t, f.model.trackedID)
	assert.NotContains(t, f.model.View(), "Latest status")
}

func TestInbox_SendWithoutID(t *testing.T) {
	f := newInboxFixture(t)
	f.model.sending = true

	f.update(sentMsg{entry: models.ChatEntry{ID: "local-1", Body: "x"}})

	view := f.model.View()
	assert.Contains(t, view, app.MsgSent)
	assert.Contains(t, view, app.MsgAcceptedNoID)
	assert.Empty(t, f.model.trackedID)
}

func TestInbox_SendFailureShowsBody(t *testing.T) {
	f := newInboxFixture(t)
	f.model.composer.SetValue("keep me")
	f.model.sending = true

	f.update(sentMsg{err: &adapter.HTTPError{StatusCode: 400, Body: "Recipient not allowed"}})

	view := f.model.View()
	assert.Contains(t, view, app.MsgSendFailed)
	assert.Contains(t, view, "Recipient not allowed")
	assert.Equal(t, "keep me", f.model.composer.Value())
	assert.False(t, f.model.sending)
}

func TestInbox_CmdSendUsesRecipientAndText(t *testing.T) {
	f := newInboxFixture(t)

	f.messages.EXPECT().
		Send(gomock.Any(), models.OutboundMessage{To: "+1 555 0100", Type: models.MessageTypeText, Text: " hi "}).
		Return(models.SendResult{Messages: []models.SentMessage{{ID: "wamid.9"}}}, nil)

	msg := f.model.cmdSend("+1 555 0100", " hi ")()
	sent, ok := msg.(sentMsg)
	require.True(t, ok)
	require.NoError(t, sent.err)
	assert.Equal(t, "hi", sent.entry.Body)
	assert.NotEmpty(t, sent.entry.ID)
}

func TestInbox_StaleStatusIgnored(t *testing.T) {
	f := newInboxFixture(t)
	f.model.trackedID = "wamid.new"

	f.update(statusMsg{MessageID: "wamid.old", Status: delivered()})
	assert.False(t, f.model.hasStatus)
	assert.True(t, f.model.waiting, "keeps listening for the tracked id")
}

func TestInbox_BlurStopsAndFocusResumesPolling(t *testing.T) {
	f := newInboxFixture(t)
	f.model.trackedID = "wamid.1"

	f.poller.EXPECT().Stop()
	f.update(pageBlurMsg{})

	gomock.InOrder(
		f.poller.EXPECT().Target().Return(""),
		f.poller.EXPECT().Start(gomock.Any(), "wamid.1"),
	)
	cmd := f.update(pageFocusMsg{})
	assert.NotNil(t, cmd)
	assert.True(t, f.model.checking)
}

func TestInbox_CopyTrackedID(t *testing.T) {
	f := newInboxFixture(t)
	f.model.trackedID = "wamid.1"

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, "wamid.1", copied)
	assert.Contains(t, f.model.View(), app.MsgCopied)

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Contains(t, f.model.View(), app.MsgCopyFailed)
}

func TestInbox_ConversationsPrefillRecipient(t *testing.T) {
	f := newInboxFixture(t)
	convs := []models.Conversation{
		{ID: 1, Name: "Sarah Johnson", Phone: "+1 234 567 8901", Unread: 3},
		{ID: 2, Name: "Mike Chen", Phone: "+1 234 567 8902"},
	}

	f.inbox.EXPECT().Thread(gomock.Any(), int64(1)).Return([]models.ChatEntry{{ID: "1", Body: "hi"}}, nil)
	cmd := f.update(conversationsLoadedMsg{items: convs})
	require.NotNil(t, cmd)
	f.update(cmd())

	assert.Equal(t, "+1 234 567 8901", f.model.recipient.Value())
	assert.Len(t, f.model.thread, 1)

	f.inbox.EXPECT().Thread(gomock.Any(), int64(2)).Return(nil, nil)
	cmd = f.update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd)
	f.update(cmd())
	assert.Equal(t, "+1 234 567 8902", f.model.recipient.Value())
	assert.Empty(t, f.model.thread)
}

func TestInbox_NoCatalog(t *testing.T) {
	f := newInboxFixture(t)
	f.model.inbox = nil

	msg := f.model.cmdLoadConversations("")()
	f.update(msg)
	assert.Equal(t, service.ErrCatalogUnavailable.Error(), f.model.loadErr)
}

func TestWaitForStatus(t *testing.T) {
	updates := make(chan models.StatusUpdate, 1)
	updates <- models.StatusUpdate{MessageID: "wamid.1"}

	msg := waitForStatus(context.Background(), updates)()
	assert.Equal(t, statusMsg{MessageID: "wamid.1"}, msg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, waitForStatus(ctx, updates)())
}
