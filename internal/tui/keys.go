package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	save       key.Binding
	upload     key.Binding
	search     key.Binding
	switchTab  key.Binding
	theme      key.Binding
	signOut    key.Binding
	changePIN  key.Binding
	logo       key.Binding
	buildInfo  key.Binding
	toggleMode key.Binding
	switchUser key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	save:       key.NewBinding(key.WithKeys("s")),
	upload:     key.NewBinding(key.WithKeys("u")),
	search:     key.NewBinding(key.WithKeys("/")),
	switchTab:  key.NewBinding(key.WithKeys("tab")),
	theme:      key.NewBinding(key.WithKeys("t")),
	signOut:    key.NewBinding(key.WithKeys("x")),
	changePIN:  key.NewBinding(key.WithKeys("p")),
	logo:       key.NewBinding(key.WithKeys("L")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	toggleMode: key.NewBinding(key.WithKeys("ctrl+n")),
	switchUser: key.NewBinding(key.WithKeys("ctrl+u")),
	yes:        key.NewBinding(key.WithKeys("y", "o")),
	no:         key.NewBinding(key.WithKeys("n")),
}
