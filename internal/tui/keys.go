package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding
	search    key.Binding
	filter    key.Binding
	newItem   key.Binding
	compose   key.Binding
	recipient key.Binding
	clearID   key.Binding
	copyID    key.Binding
	pause     key.Binding
	done      key.Binding
	check     key.Binding
	tagFilter key.Binding
	category  key.Binding
	refresh   key.Binding
	language  key.Binding
	status    key.Binding
	fail      key.Binding

	// form navigation; letters stay typeable
	fieldPrev  key.Binding
	fieldNext  key.Binding
	optionPrev key.Binding
	optionNext key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	search:    key.NewBinding(key.WithKeys("/")),
	filter:    key.NewBinding(key.WithKeys("f")),
	newItem:   key.NewBinding(key.WithKeys("a")),
	compose:   key.NewBinding(key.WithKeys("i")),
	recipient: key.NewBinding(key.WithKeys("r")),
	clearID:   key.NewBinding(key.WithKeys("ctrl+x")),
	copyID:    key.NewBinding(key.WithKeys("y")),
	pause:     key.NewBinding(key.WithKeys("p")),
	done:      key.NewBinding(key.WithKeys("d")),
	check:     key.NewBinding(key.WithKeys("s")),
	tagFilter: key.NewBinding(key.WithKeys("t")),
	category:  key.NewBinding(key.WithKeys("c")),
	refresh:   key.NewBinding(key.WithKeys("ctrl+l")),
	language:  key.NewBinding(key.WithKeys("l")),
	status:    key.NewBinding(key.WithKeys("s")),
	fail:      key.NewBinding(key.WithKeys("x")),

	fieldPrev:  key.NewBinding(key.WithKeys("up")),
	fieldNext:  key.NewBinding(key.WithKeys("down")),
	optionPrev: key.NewBinding(key.WithKeys("left")),
	optionNext: key.NewBinding(key.WithKeys("right")),
}
