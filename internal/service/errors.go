package service

import "errors"

var (
	ErrEmptyMessageID  = errors.New("message id is empty")
	ErrEmptyTemplateID = errors.New("template id is empty")

	// ErrTemplateNotSubmitted is returned by a remote check of a template that
	// has no provider id.
	ErrTemplateNotSubmitted = errors.New("template was never submitted to the provider")

	// ErrCampaignNotPausable is returned when pausing or resuming a campaign
	// that is neither active nor paused.
	ErrCampaignNotPausable = errors.New("only active or paused campaigns can be paused or resumed")

	ErrCatalogUnavailable = errors.New("catalog storage is not configured")
)
