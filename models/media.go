package models

import "io"

// MediaUpload describes a file sent to POST /whatsapp/media as multipart form
// data. Content is read once by the adapter.
type MediaUpload struct {
	// FileName is the name of the "file" form part.
	FileName string

	// Content is the raw file data.
	Content io.Reader

	// MediaType is sent as the "media_type" form field.
	MediaType MessageType
}

// MediaResponse is the response of POST /whatsapp/media.
type MediaResponse struct {
	ID string `json:"id"`
}

// TemplateStatus is the response of GET /whatsapp/templates/{id}/status.
// Status is empty when the provider did not report one.
type TemplateStatus struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}
