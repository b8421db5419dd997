package tui

import (
	"time"

	"github.com/MKhiriev/doc-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 4 * time.Second

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m vaultModel) cmdLoadCategories() tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		items, err := svc.ListCategories(ctx)
		return categoriesLoadedMsg{items: items, err: err}
	}
}

func (m vaultModel) cmdLoadDocuments(categoryID string) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		items, err := svc.ListDocuments(ctx, categoryID)
		return documentsLoadedMsg{items: items, err: err}
	}
}

func (m vaultModel) cmdSearchDocuments(term string) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		items, err := svc.SearchDocuments(ctx, term)
		return documentsLoadedMsg{items: items, err: err}
	}
}

func (m vaultModel) cmdLoadFolders() tea.Cmd {
	ctx, svc := m.ctx, m.services.RegistreService
	return func() tea.Msg {
		items, err := svc.ListFolders(ctx)
		return foldersLoadedMsg{items: items, err: err}
	}
}

func (m vaultModel) cmdLoadRegistres(folderID, term string) tea.Cmd {
	ctx, svc := m.ctx, m.services.RegistreService
	return func() tea.Msg {
		items, err := svc.ListRegistres(ctx, folderID, term)
		return registresLoadedMsg{items: items, err: err}
	}
}

func (m vaultModel) cmdGetRegistre(registreID string) tea.Cmd {
	ctx, svc := m.ctx, m.services.RegistreService
	return func() tea.Msg {
		r, err := svc.GetRegistre(ctx, registreID)
		return registreLoadedMsg{registre: r, err: err}
	}
}

func (m vaultModel) cmdCreateCategory(name string) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		c, err := svc.CreateCategory(ctx, name)
		return actionDoneMsg{status: "Catégorie « " + c.Name + " » créée", err: err, reload: true}
	}
}

func (m vaultModel) cmdDeleteCategory(c models.Category) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		err := svc.DeleteCategory(ctx, c.CategoryID)
		return actionDoneMsg{status: "Catégorie « " + c.Name + " » supprimée", err: err, reload: true}
	}
}

func (m vaultModel) cmdUpload(categoryID, title, path string) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		d, err := svc.UploadFile(ctx, categoryID, title, path)
		return actionDoneMsg{status: "Document « " + d.Title + " » ajouté", err: err, reload: true}
	}
}

func (m vaultModel) cmdRenameDocument(documentID, title string) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		d, err := svc.RenameDocument(ctx, documentID, title)
		return actionDoneMsg{status: "Document renommé en « " + d.Title + " »", err: err, reload: true}
	}
}

func (m vaultModel) cmdDeleteDocument(d models.Document) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		err := svc.DeleteDocument(ctx, d.DocumentID)
		return actionDoneMsg{status: "Document « " + d.Title + " » supprimé", err: err, reload: true}
	}
}

func (m vaultModel) cmdCopyDocumentURL(documentID string) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		url, err := svc.CopyDocumentURL(ctx, documentID)
		if err != nil && url != "" {
			// no clipboard: show the link instead
			return actionDoneMsg{status: "Lien : " + url}
		}
		return actionDoneMsg{status: "Lien copié dans le presse-papiers", err: err}
	}
}

func (m vaultModel) cmdSaveDocument(d models.Document, dir string) tea.Cmd {
	ctx, svc := m.ctx, m.services.VaultService
	return func() tea.Msg {
		path, err := svc.SaveDocument(ctx, d, dir)
		return actionDoneMsg{status: "Enregistré dans " + path, err: err}
	}
}

func (m vaultModel) cmdCreateFolder(name string) tea.Cmd {
	ctx, svc := m.ctx, m.services.RegistreService
	return func() tea.Msg {
		f, err := svc.CreateFolder(ctx, name)
		return actionDoneMsg{status: "Dossier « " + f.Name + " » créé", err: err, reload: true}
	}
}

func (m vaultModel) cmdSaveRegistre(r models.Registre, signaturePath string) tea.Cmd {
	ctx, svc := m.ctx, m.services.RegistreService
	return func() tea.Msg {
		saved, err := svc.SaveRegistre(ctx, r, signaturePath)
		return registreSavedMsg{registre: saved, err: err}
	}
}

func (m vaultModel) cmdCopySignatureURL(registreID string) tea.Cmd {
	ctx, svc := m.ctx, m.services.RegistreService
	return func() tea.Msg {
		url, err := svc.CopySignatureURL(ctx, registreID)
		if err != nil && url != "" {
			return actionDoneMsg{status: "Lien : " + url}
		}
		return actionDoneMsg{status: "Lien de la signature copié", err: err}
	}
}

func (m vaultModel) cmdSaveTheme(th Theme) tea.Cmd {
	ctx, secrets := m.ctx, m.secrets
	return func() tea.Msg {
		err := SaveTheme(ctx, secrets, th)
		return actionDoneMsg{status: "Thème enregistré", err: err}
	}
}

func (m vaultModel) cmdChangePIN(currentPIN, newPIN string) tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		st, err := g.ChangePIN(ctx, currentPIN, newPIN)
		return gateStateMsg{state: st, err: err}
	}
}

func (m vaultModel) cmdSetLogo(path string) tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		st, err := g.SetLogo(ctx, path)
		return gateStateMsg{state: st, err: err}
	}
}

func (m vaultModel) cmdSignOut() tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		st, err := g.SignOut(ctx)
		return gateStateMsg{state: st, err: err}
	}
}
