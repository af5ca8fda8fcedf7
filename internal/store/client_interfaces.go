package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wa-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ContactRepository stores the address book.
type ContactRepository interface {
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, id int64) (models.Contact, error)
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	SetContactStatus(ctx context.Context, id int64, status models.ContactStatus) error
	ContactStats(ctx context.Context) (models.ContactStats, error)
	// ListTags returns every distinct tag, sorted.
	ListTags(ctx context.Context) ([]string, error)
}

// CampaignRepository stores campaigns and their delivery counters.
type CampaignRepository interface {
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (models.Campaign, error)
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	SetCampaignStatus(ctx context.Context, id int64, status models.CampaignStatus) error
	CampaignTotals(ctx context.Context) (models.CampaignTotals, error)
}

// TemplateRepository stores message templates.
type TemplateRepository interface {
	ListTemplates(ctx context.Context, filter models.TemplateFilter) ([]models.Template, error)
	GetTemplate(ctx context.Context, id int64) (models.Template, error)
	CreateTemplate(ctx context.Context, tpl models.Template) (models.Template, error)
	SetTemplateStatus(ctx context.Context, id int64, status models.TemplateState, updatedAt time.Time) error
	TemplateStats(ctx context.Context) (models.TemplateStats, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListLanguages(ctx context.Context) ([]string, error)
}

// FollowUpRepository stores follow-up reminders. Listings carry the campaign
// and contact names; a name is empty when the referenced row is missing.
type FollowUpRepository interface {
	ListFollowUps(ctx context.Context, status models.FollowUpStatus) ([]models.FollowUpView, error)
	CreateFollowUp(ctx context.Context, followUp models.FollowUp) (models.FollowUp, error)
	SetFollowUpStatus(ctx context.Context, id int64, status models.FollowUpStatus) error
	FollowUpStats(ctx context.Context) (models.FollowUpStats, error)
	// MarkOverdue flips scheduled follow-ups due before now to overdue and
	// returns how many changed.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ConversationRepository reads the sample inbox. It is read-only.
type ConversationRepository interface {
	ListConversations(ctx context.Context, search string) ([]models.Conversation, error)
	GetConversation(ctx context.Context, id int64) (models.Conversation, error)
	ListChatEntries(ctx context.Context, conversationID int64) ([]models.ChatEntry, error)
}
