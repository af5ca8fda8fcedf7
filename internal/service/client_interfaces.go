package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wa-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// MessageService sends WhatsApp messages and reads their delivery state through
// the backend. Input is normalized and validated locally; a message that fails
// validation never reaches the network.
type MessageService interface {
	// Send normalizes msg (recipient reduced to digits, text trimmed),
	// validates it and posts it to the backend once. Backend failures are
	// returned unchanged so that the server's error text reaches the user
	// verbatim.
	Send(ctx context.Context, msg models.OutboundMessage) (models.SendResult, error)

	// Status fetches the delivery snapshots of messageID. It never changes
	// server state.
	Status(ctx context.Context, messageID string) (models.MessageStatus, error)

	// UploadMedia validates upload and sends it as multipart form data.
	UploadMedia(ctx context.Context, upload models.MediaUpload) (models.MediaResponse, error)

	// TemplateStatus fetches the provider review status of templateID.
	TemplateStatus(ctx context.Context, templateID string) (models.TemplateStatus, error)

	// BaseURL returns the backend base URL.
	BaseURL() string
}

// StatusPoller tracks the delivery status of one message in the background.
type StatusPoller interface {
	// Start fetches the status of messageID immediately and then on every
	// tick. A previous target is stopped first. An empty messageID is the
	// same as Stop.
	Start(ctx context.Context, messageID string)

	// Stop cancels polling and waits for the background goroutine to exit.
	// Safe to call when idle. Start and Stop may be called concurrently.
	Stop()

	// Updates delivers poll results. Only the latest undelivered update is
	// kept.
	Updates() <-chan models.StatusUpdate

	// Target returns the message id being polled, or "" when idle.
	Target() string
}

// ContactService manages the address book.
type ContactService interface {
	List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	Stats(ctx context.Context) (models.ContactStats, error)
	Tags(ctx context.Context) ([]string, error)
	// Create validates in, parses its tag list and stamps today's date as the
	// last contact.
	Create(ctx context.Context, in models.NewContact) (models.Contact, error)
	SetStatus(ctx context.Context, id int64, status models.ContactStatus) error
}

// CampaignService manages campaigns.
type CampaignService interface {
	List(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	Totals(ctx context.Context) (models.CampaignTotals, error)
	Get(ctx context.Context, id int64) (models.Campaign, error)
	// Create stores a draft, or a scheduled campaign when in.ScheduledAt is
	// set. An empty audience becomes "All contacts".
	Create(ctx context.Context, in models.NewCampaign) (models.Campaign, error)
	SetStatus(ctx context.Context, id int64, status models.CampaignStatus) error
	// TogglePause pauses an active campaign or resumes a paused one.
	TogglePause(ctx context.Context, id int64) (models.Campaign, error)
}

// TemplateService manages message templates.
type TemplateService interface {
	List(ctx context.Context, filter models.TemplateFilter) ([]models.Template, error)
	Stats(ctx context.Context) (models.TemplateStats, error)
	Categories(ctx context.Context) ([]string, error)
	Languages(ctx context.Context) ([]string, error)
	// Create stores a draft. Category and language default to the first
	// builder choice; the header text is dropped when there is no header.
	Create(ctx context.Context, in models.NewTemplate) (models.Template, error)
	// CheckRemote asks the backend for the review status of a submitted
	// template and stores it locally when it maps to a known state.
	CheckRemote(ctx context.Context, id int64) (models.TemplateCheck, error)
}

// FollowUpService manages follow-up reminders.
type FollowUpService interface {
	// List returns follow-ups with campaign and contact names resolved;
	// missing references read "Unknown".
	List(ctx context.Context, status models.FollowUpStatus) ([]models.FollowUpView, error)
	Stats(ctx context.Context) (models.FollowUpStats, error)
	Create(ctx context.Context, in models.NewFollowUp) (models.FollowUp, error)
	SetStatus(ctx context.Context, id int64, status models.FollowUpStatus) error
	// MarkOverdue flips scheduled follow-ups whose due time has passed.
	MarkOverdue(ctx context.Context) (int64, error)
}

// DashboardService aggregates the catalog counters for the overview tab.
type DashboardService interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
}

// InboxService reads the sample inbox threads.
type InboxService interface {
	Conversations(ctx context.Context, search string) ([]models.Conversation, error)
	Thread(ctx context.Context, conversationID int64) ([]models.ChatEntry, error)
}

// OverdueJob periodically marks overdue follow-ups.
type OverdueJob interface {
	// Start sweeps once immediately and then every interval. Any previous
	// run is stopped first.
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
