// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-wa-desk/internal/service"
)

const msgBackendUnreachable = "Backend is unreachable. Check the API URL and your network."

// errorText renders err for a notice. Transport failures get one readable
// sentence; everything else is shown as the services report it.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") {
		return msgBackendUnreachable
	}

	return service.ErrorText(err)
}
