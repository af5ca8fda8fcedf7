// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-wa-desk/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	return renderPage("ABOUT go-wa-desk", info.String(), "esc: back")
}
