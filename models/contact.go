// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ContactStatus is the lifecycle state of a contact.
type ContactStatus string

const (
	ContactActive   ContactStatus = "active"
	ContactInactive ContactStatus = "inactive"
	ContactBlocked  ContactStatus = "blocked"
)

// ContactStatuses lists every contact status in filter-cycle order.
var ContactStatuses = []ContactStatus{ContactActive, ContactInactive, ContactBlocked}

// Contact is an address-book entry that can be messaged from the inbox.
type Contact struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	Status       ContactStatus
	Tags         []string
	LastContact  time.Time
	Timezone     string
	Preferences  []string
	AccountValue string
	Notes        string
}

// HasTag reports whether the contact carries tag (exact match).
func (c Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContactFilter narrows a contact listing. Empty fields match everything;
// Status and Tag also accept the literal "all".
type ContactFilter struct {
	// Search is matched case-insensitively against "name email phone".
	Search string
	Status ContactStatus
	Tag    string
}

// ContactStats are the counters shown above the contact list.
type ContactStats struct {
	Total   int
	Active  int
	Blocked int
}

// NewContact is the input of a contact creation.
type NewContact struct {
	Name   string
	Phone  string
	Email  string
	Status ContactStatus
	// Tags is a comma separated list, e.g. "VIP, Customer".
	Tags  string
	Notes string
}

// ParseTags splits a comma separated tag list, trimming blanks and dropping
// empty entries.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
