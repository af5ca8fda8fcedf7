// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/app"
)

// ErrorText translates an error returned by the services into the text shown
// to the user. Backend errors keep the server's text verbatim, without the
// wrapping added on the way up.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *adapter.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return app.MsgTimedOut
	}

	return err.Error()
}
