package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// newSampleStorages opens a fresh in-memory database seeded with the sample
// catalog.
func newSampleStorages(t *testing.T) *ClientStorages {
	t.Helper()

	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestClientStorages_Contacts(t *testing.T) {
	ctx := context.Background()
	s := newSampleStorages(t)

	stats, err := s.Contacts.ContactStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStats{Total: 5, Active: 3, Blocked: 1}, stats)

	vip, err := s.Contacts.ListContacts(ctx, models.ContactFilter{Tag: "VIP", Status: "all"})
	require.NoError(t, err)
	require.Len(t, vip, 2)
	assert.Equal(t, "Sarah Johnson", vip[0].Name)
	assert.Equal(t, "James Wilson", vip[1].Name)

	found, err := s.Contacts.ListContacts(ctx, models.ContactFilter{Search: "CHEN"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "michael@example.com", found[0].Email)

	byPhone, err := s.Contacts.ListContacts(ctx, models.ContactFilter{Search: "8905"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, models.ContactBlocked, byPhone[0].Status)

	noWildcards, err := s.Contacts.ListContacts(ctx, models.ContactFilter{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, noWildcards)

	created, err := s.Contacts.CreateContact(ctx, models.Contact{
		Name:        "Nina Park",
		Phone:       "+1 234 567 8906",
		Status:      models.ContactActive,
		Tags:        []string{"Lead"},
		LastContact: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)

	require.NoError(t, s.Contacts.SetContactStatus(ctx, created.ID, models.ContactBlocked))
	got, err := s.Contacts.GetContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactBlocked, got.Status)
	assert.Equal(t, []string{"Lead"}, got.Tags)

	tags, err := s.Contacts.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "DNC", "Lead", "Partner", "VIP"}, tags)

	assert.ErrorIs(t, s.Contacts.SetContactStatus(ctx, 404, models.ContactActive), ErrContactNotFound)
}

func TestClientStorages_Campaigns(t *testing.T) {
	ctx := context.Background()
	s := newSampleStorages(t)

	totals, err := s.Campaigns.CampaignTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignTotals{Sent: 33500, Delivered: 30254, Replied: 860}, totals)

	paused, err := s.Campaigns.ListCampaigns(ctx, models.CampaignFilter{Status: models.CampaignPaused})
	require.NoError(t, err)
	require.Len(t, paused, 1)
	assert.Equal(t, "Weekly Newsletter", paused[0].Name)

	require.NoError(t, s.Campaigns.SetCampaignStatus(ctx, paused[0].ID, models.CampaignActive))
	c, err := s.Campaigns.GetCampaign(ctx, paused[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignActive, c.Status)

	draft, err := s.Campaigns.GetCampaign(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, draft.ScheduledAt)

	at := time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)
	created, err := s.Campaigns.CreateCampaign(ctx, models.Campaign{
		Name: "Black Friday", Audience: "All contacts", Status: models.CampaignScheduled, ScheduledAt: &at,
	})
	require.NoError(t, err)

	stored, err := s.Campaigns.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ScheduledAt)
	assert.True(t, at.Equal(*stored.ScheduledAt))

	_, err = s.Campaigns.GetCampaign(ctx, 999)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestClientStorages_Templates(t *testing.T) {
	ctx := context.Background()
	s := newSampleStorages(t)

	stats, err := s.Templates.TemplateStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TemplateStats{Total: 6, Approved: 3, Drafts: 1}, stats)

	categories, err := s.Templates.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alert", "Authentication", "Marketing", "Utility"}, categories)

	languages, err := s.Templates.ListLanguages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"English", "French", "Spanish"}, languages)

	marketing, err := s.Templates.ListTemplates(ctx, models.TemplateFilter{Search: "marketing", Language: "English"})
	require.NoError(t, err)
	assert.Len(t, marketing, 3)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.Templates.SetTemplateStatus(ctx, 3, models.TemplateApproved, now))
	tpl, err := s.Templates.GetTemplate(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.TemplateApproved, tpl.Status)
	assert.Equal(t, "payment_reminder", tpl.ProviderID)
	assert.True(t, now.Equal(tpl.LastUpdated))

	welcome, err := s.Templates.GetTemplate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.HeaderNone, welcome.HeaderType)
	assert.Equal(t, []models.TemplateButton{
		{Type: models.ButtonCTA, Label: "Set preferences", URL: "https://greenwave.example/preferences"},
	}, welcome.Buttons)
}

func TestClientStorages_CreateTemplate(t *testing.T) {
	ctx := context.Background()
	s := newSampleStorages(t)

	created, err := s.Templates.CreateTemplate(ctx, models.Template{
		Name:        "Spring Promo",
		Category:    "Marketing",
		Language:    "Hindi",
		Status:      models.TemplateDraft,
		LastUpdated: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		BodyPreview: "Hi {{1}}, spring deals are live.",
		Usage:       "Draft",
		Channel:     "WhatsApp",
		HeaderType:  models.HeaderText,
		HeaderText:  "Spring sale",
		Footer:      "Greenwave",
		Buttons:     models.ParseTemplateButtons("Shop|https://greenwave.example; Not now"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	stored, err := s.Templates.GetTemplate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring sale", stored.HeaderText)
	assert.Equal(t, models.HeaderText, stored.HeaderType)
	assert.Equal(t, "Greenwave", stored.Footer)
	assert.Equal(t, created.Buttons, stored.Buttons)

	languages, err := s.Templates.ListLanguages(ctx)
	require.NoError(t, err)
	assert.Contains(t, languages, "Hindi")
}

func TestClientStorages_FollowUps(t *testing.T) {
	ctx := context.Background()
	s := newSampleStorages(t)

	stats, err := s.FollowUps.FollowUpStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpStats{Scheduled: 1, Overdue: 1}, stats)

	all, err := s.FollowUps.ListFollowUps(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 2)
	// overdue one is due first
	assert.Equal(t, "Weekly Newsletter", all[0].CampaignName)
	assert.Equal(t, "Sarah Johnson", all[0].ContactName)

	created, err := s.FollowUps.CreateFollowUp(ctx, models.FollowUp{
		CampaignID: 77, ContactID: 1, Notes: "orphan", DueAt: time.Now().Add(time.Hour),
		Status: models.FollowUpScheduled, Priority: models.PriorityLow,
	})
	require.NoError(t, err)

	scheduled, err := s.FollowUps.ListFollowUps(ctx, models.FollowUpScheduled)
	require.NoError(t, err)
	require.Len(t, scheduled, 2)
	for _, v := range scheduled {
		if v.ID == created.ID {
			assert.Empty(t, v.CampaignName)
		}
	}

	n, err := s.FollowUps.MarkOverdue(ctx, time.Now().Add(72*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, s.FollowUps.SetFollowUpStatus(ctx, created.ID, models.FollowUpDone))
	stats, err = s.FollowUps.FollowUpStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpStats{Done: 1, Overdue: 2}, stats)
}

func TestClientStorages_Conversations(t *testing.T) {
	ctx := context.Background()
	s := newSampleStorages(t)

	conversations, err := s.Conversations.ListConversations(ctx, "")
	require.NoError(t, err)
	require.Len(t, conversations, 5)
	assert.Equal(t, "Sarah Johnson", conversations[0].Name)
	assert.Equal(t, 3, conversations[0].Unread)

	found, err := s.Conversations.ListConversations(ctx, "catalog")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "James Wilson", found[0].Name)

	entries, err := s.Conversations.ListChatEntries(ctx, conversations[0].ID)
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Equal(t, models.Incoming, entries[0].Direction)
	assert.Equal(t, "read", entries[1].Status)

	_, err = s.Conversations.GetConversation(ctx, 42)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
