package tui

type confirmModel struct {
	question string
}

func deleteConfirm(name string) confirmModel {
	return confirmModel{question: "Supprimer « " + name + " » ?"}
}

func (m confirmModel) View(th Theme) string {
	content := m.question + "\n\n"
	content += th.Help.Render("o oui    n non")
	return th.Box.Render(content)
}
