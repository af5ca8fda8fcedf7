package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  tab/shift+tab: switch tab  v: build info  ctrl+c: quit"))

	return b.String()
}

func renderTabs(titles []string, active int) string {
	parts := make([]string, 0, len(titles))
	for i, title := range titles {
		if i == active {
			parts = append(parts, activeTabStyle.Render(title))
			continue
		}
		parts = append(parts, inactiveTabStyle.Render(title))
	}
	return strings.Join(parts, " ")
}

// notice is a transient outcome line shown under a page.
type notice struct {
	title  string
	detail string
	isErr  bool
}

func (n notice) empty() bool {
	return n.title == "" && n.detail == ""
}

func (n notice) View() string {
	if n.empty() {
		return ""
	}
	title := successStyle.Render(n.title)
	if n.isErr {
		title = errorStyle.Render(n.title)
	}
	if n.detail == "" {
		return title
	}
	return title + "\n" + n.detail
}

func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
