package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

type templatesModel struct {
	catalogBase

	ctx context.Context
	svc service.TemplateService

	items       []models.Template
	stats       models.TemplateStats
	categories  []string
	languages   []string
	statusIdx   int
	categoryIdx int
	languageIdx int
	checking    bool
	previewing  bool

	building bool
	builder  form
}

const (
	templateFieldName = iota
	templateFieldCategory
	templateFieldLanguage
	templateFieldHeaderType
	templateFieldHeaderText
	templateFieldBody
	templateFieldFooter
	templateFieldButtons
)

var headerTypeOptions = []string{
	string(models.HeaderNone),
	string(models.HeaderText),
	string(models.HeaderMedia),
}

func newTemplatesModel(ctx context.Context, svc service.TemplateService) templatesModel {
	return templatesModel{
		catalogBase: newCatalogBase([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Category", Width: 14},
			{Title: "Language", Width: 9},
			{Title: "Status", Width: 9},
			{Title: "Updated", Width: 10},
			{Title: "Usage", Width: 12},
		}, "Search name or category"),
		ctx: ctx,
		svc: svc,
	}
}

func (m templatesModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m templatesModel) capturesInput() bool {
	return m.searching || m.building
}

func (m templatesModel) filter() models.TemplateFilter {
	return models.TemplateFilter{
		Search:   m.search.Value(),
		Status:   filterValue(models.TemplateStates, m.statusIdx),
		Category: filterValue(m.categories, m.categoryIdx),
		Language: filterValue(m.languages, m.languageIdx),
	}
}

func (m templatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case templatesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = errorText(msg.err)
			return m, nil
		}
		m.loadErr = ""
		m.items = msg.items
		m.stats = msg.stats
		m.categories = msg.categories
		m.languages = msg.languages
		m.table.SetRows(templateRows(m.items))
		return m, nil

	case templateCreatedMsg:
		m.builder.saving = false
		if msg.err != nil {
			m.builder.err = errorText(msg.err)
			return m, nil
		}
		m.building = false
		m.notice = notice{title: "Template draft saved", detail: msg.template.Name}
		return m, m.cmdLoad()

	case templateCheckedMsg:
		m.checking = false
		return m.handleChecked(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m templatesModel) handleChecked(msg templateCheckedMsg) (tea.Model, tea.Cmd) {
	name := msg.check.Template.Name
	switch {
	case errors.Is(msg.err, service.ErrTemplateNotSubmitted):
		m.notice = notice{title: "Template not submitted", detail: name, isErr: true}
		return m, nil
	case msg.err != nil:
		m.notice = notice{title: "Unable to check template status", detail: errorText(msg.err), isErr: true}
		return m, nil
	}

	provider := msg.check.ProviderStatus
	if provider == "" {
		provider = "not reported"
	}
	detail := fmt.Sprintf("%s: provider status %s", name, provider)
	if !msg.check.Changed {
		m.notice = notice{title: "Template status unchanged", detail: detail}
		return m, nil
	}
	m.notice = notice{title: "Template status updated", detail: detail}
	return m, m.cmdLoad()
}

func (m templatesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.building {
		return m.updateBuilder(msg)
	}
	if m.searching {
		changed, cmd := m.updateSearch(msg)
		if changed {
			return m, tea.Batch(cmd, m.cmdLoad())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.search):
		m.startSearch()
		return m, nil
	case key.Matches(msg, keys.filter):
		m.statusIdx = nextFilter(m.statusIdx, len(models.TemplateStates))
		return m, m.cmdLoad()
	case key.Matches(msg, keys.category):
		m.categoryIdx = nextFilter(m.categoryIdx, len(m.categories))
		return m, m.cmdLoad()
	case key.Matches(msg, keys.language):
		m.languageIdx = nextFilter(m.languageIdx, len(m.languages))
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		m.startBuilder()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.previewing = !m.previewing
		return m, nil
	case key.Matches(msg, keys.check):
		i := m.cursor(len(m.items))
		if i < 0 || m.checking {
			return m, nil
		}
		m.checking = true
		return m, m.cmdCheck(m.items[i].ID)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	}
	return m, m.updateTable(msg)
}

func (m *templatesModel) startBuilder() {
	m.builder = newForm("NEW TEMPLATE",
		textField("Name", "order_shipped"),
		choiceField("Category", models.TemplateCategories, 0),
		choiceField("Language", models.TemplateLanguages, 0),
		choiceField("Header", headerTypeOptions, 0),
		textField("Header text", "shown when the header is text"),
		textField("Body", "Hi {{1}}, your order {{2}} ships {{3}}."),
		textField("Footer", "optional"),
		textField("Buttons", "Track|https://example.com; Thanks"),
	)
	m.builder.fields[templateFieldBody].input.CharLimit = 1024
	m.building = true
}

func (m templatesModel) updateBuilder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.building = false
		return m, nil
	}

	submit, cmd := m.builder.update(msg)
	if !submit {
		return m, cmd
	}
	m.builder.saving = true
	m.builder.err = ""
	return m, m.cmdCreate(m.draft())
}

// draft reads the builder fields.
func (m templatesModel) draft() models.NewTemplate {
	f := m.builder
	return models.NewTemplate{
		Name:       f.value(templateFieldName),
		Category:   f.value(templateFieldCategory),
		Language:   f.value(templateFieldLanguage),
		HeaderType: models.TemplateHeaderType(f.value(templateFieldHeaderType)),
		HeaderText: f.value(templateFieldHeaderText),
		Body:       f.value(templateFieldBody),
		Footer:     f.value(templateFieldFooter),
		Buttons:    models.ParseTemplateButtons(f.value(templateFieldButtons)),
	}
}

func (m templatesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	filter := m.filter()

	return func() tea.Msg {
		items, err := svc.List(ctx, filter)
		if err != nil {
			return templatesLoadedMsg{err: err}
		}
		stats, err := svc.Stats(ctx)
		if err != nil {
			return templatesLoadedMsg{err: err}
		}
		categories, err := svc.Categories(ctx)
		if err != nil {
			return templatesLoadedMsg{err: err}
		}
		languages, err := svc.Languages(ctx)
		return templatesLoadedMsg{items: items, stats: stats, categories: categories, languages: languages, err: err}
	}
}

func (m templatesModel) cmdCreate(in models.NewTemplate) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		tpl, err := svc.Create(ctx, in)
		return templateCreatedMsg{template: tpl, err: err}
	}
}

func (m templatesModel) cmdCheck(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		check, err := svc.CheckRemote(ctx, id)
		return templateCheckedMsg{check: check, err: err}
	}
}

func templateRows(items []models.Template) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, t := range items {
		rows = append(rows, table.Row{
			t.Name,
			t.Category,
			t.Language,
			string(t.Status),
			t.LastUpdated.Format("2006-01-02"),
			valueOrDash(t.Usage),
		})
	}
	return rows
}

// renderTemplatePreview shows a template the way a recipient would see it,
// with sample values in place of {{n}} placeholders.
func renderTemplatePreview(t models.NewTemplate) string {
	var lines []string
	switch t.HeaderType {
	case models.HeaderText:
		lines = append(lines, titleStyle.Render(models.RenderTemplateText(t.HeaderText, models.SamplePlaceholderValues)))
	case models.HeaderMedia:
		lines = append(lines, helpStyle.Render("[media]"))
	}

	body := models.RenderTemplateText(t.Body, models.SamplePlaceholderValues)
	if strings.TrimSpace(body) == "" {
		body = helpStyle.Render("Start typing your message...")
	}
	lines = append(lines, body)

	if t.Footer != "" {
		lines = append(lines, helpStyle.Render(t.Footer))
	}
	for _, b := range t.Buttons {
		label := "[ " + b.Label + " ]"
		if b.Type == models.ButtonCTA {
			label += " " + helpStyle.Render(b.URL)
		}
		lines = append(lines, label)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func templateAsDraft(t models.Template) models.NewTemplate {
	return models.NewTemplate{
		Name:       t.Name,
		Category:   t.Category,
		Language:   t.Language,
		HeaderType: t.HeaderType,
		HeaderText: t.HeaderText,
		Body:       t.BodyPreview,
		Footer:     t.Footer,
		Buttons:    t.Buttons,
	}
}

func (m templatesModel) viewBuilder() string {
	draft := m.draft()
	cta, quick := models.CountButtons(draft.Buttons)
	limits := fmt.Sprintf("Buttons: %d/%d call-to-action, %d/%d quick reply", cta, models.MaxCTAButtons, quick, models.MaxQuickReplyButtons)
	if cta > models.MaxCTAButtons || quick > models.MaxQuickReplyButtons {
		limits = errorStyle.Render(limits)
	}

	body := m.builder.View() + "\n" + limits + "\n\nPreview\n" + renderTemplatePreview(draft)
	return renderPage(m.builder.title, body, formHotkeys)
}

func (m templatesModel) View() string {
	if m.building {
		return m.viewBuilder()
	}

	header := fmt.Sprintf("Total %d   Approved %d   Drafts %d", m.stats.Total, m.stats.Approved, m.stats.Drafts)
	filters := fmt.Sprintf("status: %s  category: %s  language: %s",
		filterValue(models.TemplateStates, m.statusIdx),
		filterValue(m.categories, m.categoryIdx),
		filterValue(m.languages, m.languageIdx))

	body := m.viewBody(header, filters)
	if i := m.cursor(len(m.items)); m.previewing && i >= 0 {
		body += "\n\n" + renderTemplatePreview(templateAsDraft(m.items[i]))
	}

	return renderPage("TEMPLATES", body, "/: search  f: status  c: category  l: language  a: new  enter: preview  s: check provider status  ctrl+l: reload")
}
