package models

import (
	"regexp"
	"strings"
	"time"
)

// TemplateState is the provider approval state of a message template.
type TemplateState string

const (
	TemplateApproved TemplateState = "approved"
	TemplateDraft    TemplateState = "draft"
	TemplatePending  TemplateState = "pending"
	TemplateRejected TemplateState = "rejected"
)

// TemplateStates lists every template state in filter-cycle order.
var TemplateStates = []TemplateState{TemplateApproved, TemplateDraft, TemplatePending, TemplateRejected}

// ParseTemplateState maps a provider-reported status (e.g. "APPROVED",
// "IN_APPEAL") to a local state. ok is false for unknown values.
func ParseTemplateState(raw string) (state TemplateState, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved":
		return TemplateApproved, true
	case "pending", "in_appeal", "pending_deletion":
		return TemplatePending, true
	case "rejected", "disabled", "paused":
		return TemplateRejected, true
	case "draft":
		return TemplateDraft, true
	}
	return "", false
}

// Template is a reusable message shape awaiting or holding provider approval.
type Template struct {
	ID          int64
	Name        string
	Category    string
	Language    string
	Status      TemplateState
	LastUpdated time.Time
	BodyPreview string
	Usage       string
	Channel     string
	// ProviderID is the template id known to the backend; empty for drafts
	// that were never submitted.
	ProviderID string
	HeaderType TemplateHeaderType
	HeaderText string
	Footer     string
	Buttons    []TemplateButton
}

// TemplateHeaderType is the kind of header shown above a template body.
type TemplateHeaderType string

const (
	HeaderNone  TemplateHeaderType = "none"
	HeaderText  TemplateHeaderType = "text"
	HeaderMedia TemplateHeaderType = "media"
)

var TemplateHeaderTypes = []TemplateHeaderType{HeaderNone, HeaderText, HeaderMedia}

// TemplateButtonType is either a call-to-action link or a quick reply.
type TemplateButtonType string

const (
	ButtonCTA        TemplateButtonType = "cta"
	ButtonQuickReply TemplateButtonType = "quick_reply"
)

// Provider limits on template buttons.
const (
	MaxCTAButtons        = 2
	MaxQuickReplyButtons = 3
)

type TemplateButton struct {
	Type  TemplateButtonType
	Label string
	// URL is set for call-to-action buttons only.
	URL string
}

// TemplateCategories and TemplateLanguages are the choices offered by the
// template builder.
var (
	TemplateCategories = []string{"Marketing", "Utility", "Authentication", "Alert"}
	TemplateLanguages  = []string{"English", "Spanish", "French", "Hindi"}
)

// NewTemplate is the input for creating a template draft.
type NewTemplate struct {
	Name       string
	Category   string
	Language   string
	HeaderType TemplateHeaderType
	HeaderText string
	Body       string
	Footer     string
	Buttons    []TemplateButton
}

// ParseTemplateButtons reads buttons written as "label|url; label". A part
// with a URL becomes a call-to-action, a part without one a quick reply.
// Empty labels are skipped.
func ParseTemplateButtons(raw string) []TemplateButton {
	var buttons []TemplateButton
	for _, part := range strings.Split(raw, ";") {
		label, url, _ := strings.Cut(part, "|")
		label, url = strings.TrimSpace(label), strings.TrimSpace(url)
		if label == "" {
			continue
		}
		if url != "" {
			buttons = append(buttons, TemplateButton{Type: ButtonCTA, Label: label, URL: url})
			continue
		}
		buttons = append(buttons, TemplateButton{Type: ButtonQuickReply, Label: label})
	}
	return buttons
}

// FormatTemplateButtons is the inverse of ParseTemplateButtons.
func FormatTemplateButtons(buttons []TemplateButton) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		if b.Type == ButtonCTA && b.URL != "" {
			parts = append(parts, b.Label+"|"+b.URL)
			continue
		}
		parts = append(parts, b.Label)
	}
	return strings.Join(parts, "; ")
}

// CountButtons returns how many call-to-action and quick-reply buttons are set.
func CountButtons(buttons []TemplateButton) (cta, quickReply int) {
	for _, b := range buttons {
		switch b.Type {
		case ButtonCTA:
			cta++
		case ButtonQuickReply:
			quickReply++
		}
	}
	return cta, quickReply
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\d+)\s*\}\}`)

// SamplePlaceholderValues fill {{n}} placeholders in template previews.
var SamplePlaceholderValues = map[string]string{
	"1": "Customer",
	"2": "Order #1234",
	"3": "Tomorrow 2 PM",
}

// RenderTemplateText replaces every {{n}} placeholder in text with values[n].
// Placeholders without a value render as "Value".
func RenderTemplateText(text string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		n := placeholderPattern.FindStringSubmatch(match)[1]
		if v, ok := values[n]; ok {
			return v
		}
		return "Value"
	})
}

// TemplateFilter narrows a template listing.
type TemplateFilter struct {
	// Search is matched case-insensitively against "name category".
	Search   string
	Status   TemplateState
	Category string
	Language string
}

// TemplateStats are the counters shown above the template list.
type TemplateStats struct {
	Total    int
	Approved int
	Drafts   int
}

// TemplateCheck is the outcome of asking the backend for a template's review
// status.
type TemplateCheck struct {
	Template Template
	// ProviderStatus is the raw status reported by the backend, empty when
	// none was reported.
	ProviderStatus string
	// Changed is true when the local status was updated.
	Changed bool
}
