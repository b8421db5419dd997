package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNewCategory promptKind = iota
	promptRenameDocument
	promptUpload
	promptSaveDocument
	promptSearchDocuments
	promptNewFolder
	promptSearchRegistres
	promptChangePIN
	promptLogo
	promptRegistre
)

type promptField struct {
	label  string
	value  string
	secret bool
	limit  int
}

// promptModel is a small modal form of one or more text fields.
type promptModel struct {
	kind   promptKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newPrompt(kind promptKind, title string, fields ...promptField) promptModel {
	p := promptModel{kind: kind, title: title}
	for i, f := range fields {
		in := textinput.New()
		in.Width = 48
		in.CharLimit = 512
		if f.limit > 0 {
			in.CharLimit = f.limit
		}
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		in.SetValue(f.value)
		if i == 0 {
			in.Focus()
		}

		p.labels = append(p.labels, f.label)
		p.inputs = append(p.inputs, in)
	}
	return p
}

// promptResult is reported by update: done means submitted, cancelled means
// esc was pressed.
type promptResult struct {
	done      bool
	cancelled bool
}

func (p promptModel) update(msg tea.KeyMsg) (promptModel, promptResult, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return p, promptResult{cancelled: true}, nil
	case key.Matches(msg, keys.tab), msg.String() == "down":
		p.setFocus((p.focus + 1) % len(p.inputs))
		return p, promptResult{}, nil
	case key.Matches(msg, keys.backtab), msg.String() == "up":
		p.setFocus((p.focus - 1 + len(p.inputs)) % len(p.inputs))
		return p, promptResult{}, nil
	case key.Matches(msg, keys.enter):
		if p.focus < len(p.inputs)-1 {
			p.setFocus(p.focus + 1)
			return p, promptResult{}, nil
		}
		return p, promptResult{done: true}, nil
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, promptResult{}, cmd
}

func (p *promptModel) setFocus(i int) {
	p.inputs[p.focus].Blur()
	p.focus = i
	p.inputs[p.focus].Focus()
}

// value returns the trimmed text of field i.
func (p promptModel) value(i int) string {
	if i < 0 || i >= len(p.inputs) {
		return ""
	}
	return strings.TrimSpace(p.inputs[i].Value())
}

func (p promptModel) View(th Theme) string {
	var b strings.Builder
	b.WriteString(th.Title.Render(p.title))
	b.WriteString("\n\n")

	width := 0
	for _, l := range p.labels {
		width = max(width, len([]rune(l)))
	}
	for i, in := range p.inputs {
		label := p.labels[i] + strings.Repeat(" ", width-len([]rune(p.labels[i])))
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	b.WriteString("\n")
	b.WriteString(th.Help.Render("enter valider │ tab champ suivant │ esc annuler"))
	return th.Box.Render(b.String())
}
