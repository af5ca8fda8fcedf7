package models

// DashboardSummary is the overview shown on the dashboard tab.
type DashboardSummary struct {
	MessagesSent       int64
	Delivered          int64
	Replied            int64
	TotalContacts      int
	ActiveContacts     int
	ActiveCampaigns    int
	ScheduledCampaigns int
	ApprovedTemplates  int
	DraftTemplates     int
	DueFollowUps       int
	OverdueFollowUps   int
	// RecentCampaigns holds the newest campaigns, newest first.
	RecentCampaigns []Campaign
}

// DeliveryRate is Delivered/MessagesSent in percent.
func (s DashboardSummary) DeliveryRate() float64 {
	return percent(s.Delivered, s.MessagesSent)
}
