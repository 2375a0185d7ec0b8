// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"

	"github.com/MKhiriev/go-presence-keeper/internal/app"
	"github.com/MKhiriev/go-presence-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	bannerTitleStyle = lipgloss.NewStyle().Bold(true)
	bannerInfoStyle  = lipgloss.NewStyle().Faint(true)
)

func renderBanner(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(bannerTitleStyle.Render(app.MsgBanner))
	b.WriteString("\n")
	b.WriteString(bannerInfoStyle.Render(
		"version " + valueOrNA(info.BuildVersion()) +
			" · " + valueOrNA(info.BuildDate()) +
			" · " + valueOrNA(info.BuildCommit()),
	))

	return bannerBoxStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
