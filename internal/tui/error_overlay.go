package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(th Theme) string {
	content := th.Error.Render("Erreur") + "\n\n" + m.message + "\n\nenter / esc fermer"
	return th.Box.Render(content)
}
