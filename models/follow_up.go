package models

import "time"

// FollowUpStatus is the state of a follow-up reminder.
type FollowUpStatus string

const (
	FollowUpScheduled FollowUpStatus = "scheduled"
	FollowUpDone      FollowUpStatus = "done"
	FollowUpOverdue   FollowUpStatus = "overdue"
)

// FollowUpStatuses lists every follow-up status in filter-cycle order.
var FollowUpStatuses = []FollowUpStatus{FollowUpScheduled, FollowUpDone, FollowUpOverdue}

// Valid reports whether s is a known follow-up status.
func (s FollowUpStatus) Valid() bool {
	return s == FollowUpScheduled || s == FollowUpDone || s == FollowUpOverdue
}

// Priority ranks follow-ups.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// FollowUp is a manual reminder tied to a campaign and a contact.
type FollowUp struct {
	ID         int64
	CampaignID int64
	ContactID  int64
	Notes      string
	DueAt      time.Time
	Status     FollowUpStatus
	Priority   Priority
}

// FollowUpView is a follow-up with its campaign and contact names resolved.
type FollowUpView struct {
	FollowUp
	CampaignName string
	ContactName  string
}

// FollowUpStats are the counters shown above the follow-up list.
type FollowUpStats struct {
	Scheduled int
	Done      int
	Overdue   int
}

// NewFollowUp is the input of a follow-up creation.
type NewFollowUp struct {
	CampaignID int64
	ContactID  int64
	Notes      string
	DueAt      time.Time
	Priority   Priority
}
