package tui

import (
	"github.com/MKhiriev/go-wa-desk/models"
)

// pageFocusMsg and pageBlurMsg are delivered to a page when it becomes or
// stops being the active tab.
type pageFocusMsg struct{}

type pageBlurMsg struct{}

type conversationsLoadedMsg struct {
	items []models.Conversation
	err   error
}

type threadLoadedMsg struct {
	conversationID int64
	entries        []models.ChatEntry
	err            error
}

type sentMsg struct {
	conversationID int64
	entry          models.ChatEntry
	result         models.SendResult
	err            error
}

type statusMsg models.StatusUpdate

type contactsLoadedMsg struct {
	items []models.Contact
	stats models.ContactStats
	tags  []string
	err   error
}

type contactCreatedMsg struct {
	contact models.Contact
	err     error
}

type contactStatusSetMsg struct {
	name   string
	status models.ContactStatus
	err    error
}

type campaignsLoadedMsg struct {
	items  []models.Campaign
	totals models.CampaignTotals
	err    error
}

type campaignToggledMsg struct {
	campaign models.Campaign
	err      error
}

type campaignLoadedMsg struct {
	campaign models.Campaign
	err      error
}

type campaignCreatedMsg struct {
	campaign models.Campaign
	err      error
}

type campaignStatusSetMsg struct {
	id     int64
	status models.CampaignStatus
	err    error
}

type templatesLoadedMsg struct {
	items      []models.Template
	stats      models.TemplateStats
	categories []string
	languages  []string
	err        error
}

type templateCreatedMsg struct {
	template models.Template
	err      error
}

type templateCheckedMsg struct {
	check models.TemplateCheck
	err   error
}

type followUpsLoadedMsg struct {
	items []models.FollowUpView
	stats models.FollowUpStats
	err   error
}

type followUpUpdatedMsg struct {
	err error
}

// followUpChoicesMsg carries the campaigns and contacts a new follow-up can
// reference.
type followUpChoicesMsg struct {
	campaigns []models.Campaign
	contacts  []models.Contact
	err       error
}

type followUpCreatedMsg struct {
	followUp models.FollowUp
	err      error
}

type dashboardLoadedMsg struct {
	summary models.DashboardSummary
	err     error
}
