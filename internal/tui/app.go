package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wa-desk/models"
)

// inputCapturer is implemented by pages that can hold keyboard focus in a
// text input. While it reports true, single-letter global keys are passed to
// the page.
type inputCapturer interface {
	capturesInput() bool
}

type tab struct {
	title string
	model tea.Model
}

// RootModel is a TUI router:
// 1) keeps the tabs and the active one
// 2) handles global keys (quit, tab switching, build info)
// 3) delivers key messages to the active tab only
// 4) broadcasts every other message, so async results reach their tab
type RootModel struct {
	tabs      []tab
	active    int
	buildInfo models.BuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers the tabs in display order and activates the first.
func NewRootModel(tabs []tab, buildInfo models.BuildInfo) RootModel {
	return RootModel{
		tabs:      tabs,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.tabs)+1)
	for _, t := range r.tabs {
		cmds = append(cmds, t.model.Init())
	}
	if len(r.tabs) > 0 {
		cmds = append(cmds, func() tea.Msg { return pageFocusMsg{} })
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return r.handleKey(keyMsg)
	}

	// Focus changes concern the active tab only.
	switch msg.(type) {
	case pageFocusMsg, pageBlurMsg:
		return r.updateTab(r.active, msg)
	}

	cmds := make([]tea.Cmd, 0, len(r.tabs))
	for i := range r.tabs {
		var cmd tea.Cmd
		r.tabs[i].model, cmd = r.tabs[i].model.Update(msg)
		cmds = append(cmds, cmd)
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return r, tea.Quit
	case r.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			r.showBuildInfo = false
		}
		return r, nil
	case len(r.tabs) == 0:
		return r, nil
	case key.Matches(msg, keys.tab):
		return r.switchTo((r.active + 1) % len(r.tabs))
	case key.Matches(msg, keys.backtab):
		return r.switchTo((r.active - 1 + len(r.tabs)) % len(r.tabs))
	case key.Matches(msg, keys.buildInfo) && !r.capturing():
		r.showBuildInfo = true
		return r, nil
	}

	return r.updateTab(r.active, msg)
}

func (r RootModel) switchTo(next int) (tea.Model, tea.Cmd) {
	if next == r.active {
		return r, nil
	}

	var blurCmd, focusCmd tea.Cmd
	r.tabs[r.active].model, blurCmd = r.tabs[r.active].model.Update(pageBlurMsg{})
	r.active = next
	r.tabs[r.active].model, focusCmd = r.tabs[r.active].model.Update(pageFocusMsg{})

	return r, tea.Batch(blurCmd, focusCmd)
}

func (r RootModel) updateTab(i int, msg tea.Msg) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(r.tabs) {
		return r, nil
	}
	var cmd tea.Cmd
	r.tabs[i].model, cmd = r.tabs[i].model.Update(msg)
	return r, cmd
}

func (r RootModel) capturing() bool {
	c, ok := r.tabs[r.active].model.(inputCapturer)
	return ok && c.capturesInput()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if len(r.tabs) == 0 {
		return renderPage("go-wa-desk", "", "")
	}

	titles := make([]string, len(r.tabs))
	for i, t := range r.tabs {
		titles[i] = t.title
	}
	return appStyle.Render(renderTabs(titles, r.active) + "\n\n" + r.tabs[r.active].model.View())
}
