package models

import "time"

// CampaignStatus is the delivery stage of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignFailed    CampaignStatus = "failed"
	CampaignPaused    CampaignStatus = "paused"
)

// CampaignStatuses lists every campaign status in filter-cycle order.
var CampaignStatuses = []CampaignStatus{
	CampaignDraft,
	CampaignScheduled,
	CampaignActive,
	CampaignCompleted,
	CampaignFailed,
	CampaignPaused,
}

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	for _, known := range CampaignStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Campaign is a named bulk send with aggregate delivery counters.
type Campaign struct {
	ID          int64
	Name        string
	Audience    string
	Status      CampaignStatus
	Sent        int64
	Delivered   int64
	Read        int64
	Replied     int64
	Progress    int
	ScheduledAt *time.Time
	Message     string
	Objective   string
}

// DeliveryRate is Delivered/Sent in percent, 0 when nothing was sent.
func (c Campaign) DeliveryRate() float64 {
	return percent(c.Delivered, c.Sent)
}

// ReadRate is Read/Delivered in percent, 0 when nothing was delivered.
func (c Campaign) ReadRate() float64 {
	return percent(c.Read, c.Delivered)
}

// ReplyRate is Replied/Read in percent, 0 when nothing was read.
func (c Campaign) ReplyRate() float64 {
	return percent(c.Replied, c.Read)
}

func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}

// CampaignFilter narrows a campaign listing.
type CampaignFilter struct {
	// Search is matched case-insensitively against the campaign name.
	Search string
	Status CampaignStatus
}

// CampaignTotals sums the counters of every campaign.
type CampaignTotals struct {
	Sent      int64
	Delivered int64
	Replied   int64
}

// NewCampaign is the input of a campaign creation.
type NewCampaign struct {
	Name        string
	Audience    string
	ScheduledAt *time.Time
	Message     string
	Objective   string
}
