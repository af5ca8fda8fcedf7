package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formLabelWidth = 12
	formInputWidth = 48
)

// formField is a text input, or a choice among options when options is set.
type formField struct {
	label   string
	input   textinput.Model
	options []string
	choice  int
}

func textField(label, placeholder string) formField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.Width = formInputWidth
	return formField{label: label, input: in}
}

func choiceField(label string, options []string, choice int) formField {
	if choice < 0 || choice >= len(options) {
		choice = 0
	}
	return formField{label: label, options: options, choice: choice}
}

func (f formField) isChoice() bool {
	return len(f.options) > 0
}

func (f formField) value() string {
	if f.isChoice() {
		return f.options[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

// form is a vertical list of fields edited one at a time. Enter moves to the
// next field and submits on the last one.
type form struct {
	title  string
	fields []formField
	focus  int
	saving bool
	err    string
}

func newForm(title string, fields ...formField) form {
	f := form{title: title, fields: fields}
	f.focusField(0)
	return f
}

func (f *form) focusField(i int) {
	if len(f.fields) == 0 {
		return
	}
	if !f.fields[f.focus].isChoice() {
		f.fields[f.focus].input.Blur()
	}
	f.focus = (i + len(f.fields)) % len(f.fields)
	if !f.fields[f.focus].isChoice() {
		f.fields[f.focus].input.Focus()
	}
}

// update applies a key to the form. submit is true when enter was pressed on
// the last field and no save is in flight.
func (f *form) update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	if len(f.fields) == 0 {
		return false, nil
	}
	field := &f.fields[f.focus]

	switch {
	case key.Matches(msg, keys.fieldPrev):
		f.focusField(f.focus - 1)
		return false, nil
	case key.Matches(msg, keys.fieldNext):
		f.focusField(f.focus + 1)
		return false, nil
	case key.Matches(msg, keys.enter):
		if f.focus < len(f.fields)-1 {
			f.focusField(f.focus + 1)
			return false, nil
		}
		return !f.saving, nil
	case field.isChoice() && key.Matches(msg, keys.optionPrev):
		field.choice = (field.choice - 1 + len(field.options)) % len(field.options)
		return false, nil
	case field.isChoice() && key.Matches(msg, keys.optionNext):
		field.choice = (field.choice + 1) % len(field.options)
		return false, nil
	case field.isChoice():
		return false, nil
	}

	field.input, cmd = field.input.Update(msg)
	return false, cmd
}

func (f form) value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].value()
}

func (f form) choice(i int) int {
	if i < 0 || i >= len(f.fields) {
		return 0
	}
	return f.fields[i].choice
}

func (f form) View() string {
	var b strings.Builder
	for i, field := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(fmt.Sprintf("%-*s", formLabelWidth, field.label))
		if field.isChoice() {
			b.WriteString("< " + field.options[field.choice] + " >")
		} else {
			b.WriteString(field.input.View())
		}
		b.WriteString("\n")
	}
	if f.saving {
		b.WriteString("\nSaving...")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
	}
	return b.String()
}

const formHotkeys = "↑/↓: field  ←/→: choice  enter: next / save  esc: cancel"
