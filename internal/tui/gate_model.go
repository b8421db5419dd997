package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// gateModel renders the startup resolution, the login form and the PIN pad.
// It quits once the gate reports Unlocked.
type gateModel struct {
	ctx   context.Context
	gate  *gate.Gate
	theme Theme

	spinner spinner.Model
	loading bool
	busy    bool

	state     gate.State
	notice    string
	bioPrompt string

	// login form
	signUp   bool
	inputs   []textinput.Model
	focus    int
	pinInput textinput.Model

	quit bool
}

func newGateModel(ctx context.Context, g *gate.Gate, theme Theme) gateModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "mot de passe"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	pin := textinput.New()
	pin.Placeholder = "····"
	pin.CharLimit = 4
	pin.Width = 6
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '•'

	return gateModel{
		ctx:      ctx,
		gate:     g,
		theme:    theme,
		spinner:  s,
		loading:  true,
		inputs:   []textinput.Model{email, password},
		pinInput: pin,
	}
}

func (m gateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdResolve())
}

func (m gateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gateStateMsg:
		return m.applyState(msg)
	case biometricPromptMsg:
		m.bioPrompt = string(msg)
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		if m.loading || m.busy {
			return m, nil
		}
		if m.state.Screen == gate.PinChallenge {
			return m.updatePin(msg)
		}
		return m.updateLogin(msg)
	}

	return m, nil
}

func (m gateModel) applyState(msg gateStateMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.busy = false
	m.bioPrompt = ""

	previous := m.state.Screen
	m.state = msg.state
	m.notice = msg.state.Notice
	if msg.err != nil && m.notice == "" {
		m.notice = humanizeError(msg.err)
	}

	switch m.state.Screen {
	case gate.Unlocked:
		return m, tea.Quit
	case gate.PinChallenge:
		if msg.state.ClearInput || previous != gate.PinChallenge {
			m.pinInput.Reset()
		}
		m.pinInput.Focus()
	case gate.LoginRequired:
		if previous != gate.LoginRequired {
			m.inputs[1].Reset()
		}
		if m.signUp && m.notice == gate.NoticeAccountCreated {
			m.signUp = false
			m.inputs[1].Reset()
		}
	}

	return m, nil
}

func (m gateModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case key.Matches(msg, keys.toggleMode):
		m.signUp = !m.signUp
		m.notice = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		email := strings.TrimSpace(m.inputs[0].Value())
		password := m.inputs[1].Value()

		m.busy = true
		m.notice = ""
		if m.signUp {
			return m, tea.Batch(m.spinner.Tick, m.cmdSignUp(email, password))
		}
		return m, tea.Batch(m.spinner.Tick, m.cmdSignIn(email, password))
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m gateModel) updatePin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.busy = true
		return m, m.cmdSubmitPIN(m.pinInput.Value())
	case key.Matches(msg, keys.switchUser):
		m.busy = true
		return m, m.cmdSwitchUser()
	}

	var cmd tea.Cmd
	m.pinInput, cmd = m.pinInput.Update(msg)
	return m, cmd
}

func (m *gateModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m gateModel) View() string {
	if m.loading {
		text := "Chargement…"
		if m.bioPrompt != "" {
			text = m.bioPrompt
		}
		return renderPage(m.theme, "DOCVAULT", m.spinner.View()+" "+text, "")
	}

	var b strings.Builder
	if m.state.Logo != "" {
		b.WriteString(m.theme.Help.Render("Logo : " + m.state.Logo))
		b.WriteString("\n\n")
	}

	var title, hotKeys string
	if m.state.Screen == gate.PinChallenge {
		title, hotKeys = m.pinView(&b)
	} else {
		title, hotKeys = m.loginView(&b)
	}

	if m.busy {
		text := "Veuillez patienter…"
		if m.bioPrompt != "" {
			text = m.bioPrompt
		}
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" " + text + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Notice.Render(m.notice))
		b.WriteString("\n")
	}

	return renderPage(m.theme, title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m gateModel) loginView(b *strings.Builder) (string, string) {
	b.WriteString("Email         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Mot de passe  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.signUp {
		return "CRÉER UN COMPTE", "tab: champ suivant │ enter: s'inscrire │ ctrl+n: j'ai déjà un compte"
	}
	return "CONNEXION", "tab: champ suivant │ enter: se connecter │ ctrl+n: créer un compte"
}

func (m gateModel) pinView(b *strings.Builder) (string, string) {
	if m.state.Mode == gate.PinCreate {
		b.WriteString("Choisissez un code PIN à 4 chiffres\n\n")
	} else {
		b.WriteString("Saisissez votre code PIN\n\n")
	}
	b.WriteString("PIN │ [")
	b.WriteString(m.pinInput.View())
	b.WriteString("]\n")

	return "DÉVERROUILLAGE", "enter: valider │ ctrl+u: changer d'utilisateur"
}

func (m gateModel) cmdResolve() tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		return gateStateMsg{state: g.Resolve(ctx)}
	}
}

func (m gateModel) cmdSignIn(email, password string) tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		st, err := g.SignIn(ctx, email, password)
		return gateStateMsg{state: st, err: err}
	}
}

func (m gateModel) cmdSignUp(email, password string) tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		st, err := g.SignUp(ctx, email, password)
		return gateStateMsg{state: st, err: err}
	}
}

func (m gateModel) cmdSubmitPIN(pin string) tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		st, err := g.SubmitPIN(ctx, pin)
		return gateStateMsg{state: st, err: err}
	}
}

func (m gateModel) cmdSwitchUser() tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		st, err := g.SwitchUser(ctx)
		return gateStateMsg{state: st, err: err}
	}
}
