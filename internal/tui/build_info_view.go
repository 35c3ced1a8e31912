// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-note-vault/models"
)

// renderBuildInfoWindow is the about page toggled with ctrl+b.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("%-12s go-note-vault\n%-12s %s\n%-12s %s\n%-12s %s",
		"Application:", "Version:", info.BuildVersion(),
		"Date:", info.BuildDate(), "Commit:", info.BuildCommit())

	return renderPage("ABOUT", body, "esc / ctrl+b: back")
}
