package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type vaultScreen int

const (
	screenCategories vaultScreen = iota
	screenDocuments
	screenSearch
	screenFolders
	screenRegistres
)

const listWidth = 48

// vaultModel is the unlocked part of the client: the documents tab
// (categories, documents, search) and the registres tab (folders, entries).
type vaultModel struct {
	ctx       context.Context
	services  *service.ClientServices
	gate      *gate.Gate
	secrets   gate.SecretStore
	theme     Theme
	buildInfo models.AppBuildInfo
	now       func() time.Time

	userID string
	logo   string
	online bool

	screen  vaultScreen
	spinner spinner.Model
	loading bool

	categories []models.Category
	catIdx     int
	category   models.Category

	documents  []models.Document
	docIdx     int
	searchTerm string

	folders   []models.Folder
	folderIdx int
	folder    models.Folder

	registres []models.Registre
	regIdx    int
	regTerm   string
	editing   models.Registre

	prompt        *promptModel
	confirm       *confirmModel
	onConfirm     tea.Cmd
	errOverlay    *errorOverlayModel
	showBuildInfo bool
	status        string

	signOut bool
	quit    bool
}

func newVaultModel(ctx context.Context, t *TUI, userID, logo string) vaultModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return vaultModel{
		ctx:       ctx,
		services:  t.services,
		gate:      t.gate,
		secrets:   t.secrets,
		theme:     t.theme,
		buildInfo: t.buildInfo,
		now:       time.Now,
		userID:    userID,
		logo:      logo,
		online:    t.services.Connectivity.Online(),
		spinner:   s,
		loading:   true,
	}
}

func (m vaultModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadCategories())
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case onlineMsg:
		m.online = bool(msg)
		return m, nil
	case biometricPromptMsg:
		m.status = string(msg)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case categoriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.categories = msg.items
		m.catIdx = clamp(m.catIdx, len(m.categories))
		return m, nil
	case documentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.documents = msg.items
		m.docIdx = clamp(m.docIdx, len(m.documents))
		return m, nil
	case foldersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.folders = msg.items
		m.folderIdx = clamp(m.folderIdx, len(m.folders))
		return m, nil
	case registresLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.registres = msg.items
		m.regIdx = clamp(m.regIdx, len(m.registres))
		return m, nil
	case registreLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		return m.openRegistreForm(msg.registre), nil

	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = msg.status
		cmds := []tea.Cmd{clearStatusAfter(statusTTL)}
		if msg.reload {
			m.loading = true
			cmds = append(cmds, m.spinner.Tick, m.reload())
		}
		return m, tea.Batch(cmds...)
	case registreSavedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = "Registre de « " + msg.registre.FullName + " » enregistré"
		m.loading = true
		return m, tea.Batch(clearStatusAfter(statusTTL), m.spinner.Tick, m.reload())
	case gateStateMsg:
		return m.applyGateState(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m vaultModel) fail(err error) vaultModel {
	m.errOverlay = &errorOverlayModel{message: humanizeError(err)}
	return m
}

func (m vaultModel) applyGateState(msg gateStateMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.state.Screen == gate.LoginRequired {
		m.signOut = true
		return m, tea.Quit
	}
	if msg.err != nil {
		return m.fail(msg.err), nil
	}

	m.logo = msg.state.Logo
	m.status = msg.state.Notice
	return m, clearStatusAfter(statusTTL)
}

func (m vaultModel) reload() tea.Cmd {
	switch m.screen {
	case screenDocuments:
		return m.cmdLoadDocuments(m.category.CategoryID)
	case screenSearch:
		return m.cmdSearchDocuments(m.searchTerm)
	case screenFolders:
		return m.cmdLoadFolders()
	case screenRegistres:
		return m.cmdLoadRegistres(m.folder.FolderID, m.regTerm)
	default:
		return m.cmdLoadCategories()
	}
}

func (m vaultModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quit = true
		return m, tea.Quit
	}

	switch {
	case m.errOverlay != nil:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	case m.showBuildInfo:
		m.showBuildInfo = false
		return m, nil
	case m.confirm != nil:
		switch {
		case key.Matches(msg, keys.yes):
			cmd := m.onConfirm
			m.confirm, m.onConfirm = nil, nil
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, cmd)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm, m.onConfirm = nil, nil
		}
		return m, nil
	case m.prompt != nil:
		p, res, cmd := m.prompt.update(msg)
		switch {
		case res.cancelled:
			m.prompt = nil
			return m, nil
		case res.done:
			m.prompt = nil
			return m.submitPrompt(p)
		}
		m.prompt = &p
		return m, cmd
	case m.loading:
		return m, nil
	}

	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}

	switch m.screen {
	case screenDocuments, screenSearch:
		return m.handleDocumentsKey(msg)
	case screenFolders:
		return m.handleFoldersKey(msg)
	case screenRegistres:
		return m.handleRegistresKey(msg)
	default:
		return m.handleCategoriesKey(msg)
	}
}

func (m vaultModel) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quit = true
		return m, tea.Quit, true
	case key.Matches(msg, keys.theme):
		m.theme = m.theme.Toggled()
		return m, m.cmdSaveTheme(m.theme), true
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil, true
	case key.Matches(msg, keys.changePIN):
		p := newPrompt(promptChangePIN, "CHANGER LE CODE PIN",
			promptField{label: "PIN actuel", secret: true, limit: 4},
			promptField{label: "Nouveau PIN", secret: true, limit: 4},
		)
		m.prompt = &p
		return m, nil, true
	case key.Matches(msg, keys.logo):
		p := newPrompt(promptLogo, "LOGO", promptField{label: "Image (vide pour retirer)", value: m.logo})
		m.prompt = &p
		return m, nil, true
	case key.Matches(msg, keys.signOut):
		m.confirm = &confirmModel{question: "Se déconnecter ?"}
		m.onConfirm = m.cmdSignOut()
		return m, nil, true
	}

	return m, nil, false
}

func (m vaultModel) handleCategoriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.catIdx = clamp(m.catIdx-1, len(m.categories))
	case key.Matches(msg, keys.down):
		m.catIdx = clamp(m.catIdx+1, len(m.categories))
	case key.Matches(msg, keys.switchTab):
		m.screen = screenFolders
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadFolders())
	case key.Matches(msg, keys.newItem):
		p := newPrompt(promptNewCategory, "NOUVELLE CATÉGORIE", promptField{label: "Nom", limit: 128})
		m.prompt = &p
	case key.Matches(msg, keys.search):
		p := newPrompt(promptSearchDocuments, "RECHERCHER UN DOCUMENT", promptField{label: "Titre", value: m.searchTerm})
		m.prompt = &p
	}

	if len(m.categories) == 0 {
		return m, nil
	}
	selected := m.categories[m.catIdx]

	switch {
	case key.Matches(msg, keys.enter):
		m.category = selected
		m.screen = screenDocuments
		m.documents, m.docIdx = nil, 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadDocuments(selected.CategoryID))
	case key.Matches(msg, keys.delete):
		c := deleteConfirm(selected.Name)
		m.confirm = &c
		m.onConfirm = m.cmdDeleteCategory(selected)
	}

	return m, nil
}

func (m vaultModel) handleDocumentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.docIdx = clamp(m.docIdx-1, len(m.documents))
	case key.Matches(msg, keys.down):
		m.docIdx = clamp(m.docIdx+1, len(m.documents))
	case key.Matches(msg, keys.esc):
		m.screen = screenCategories
		m.documents, m.docIdx = nil, 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCategories())
	case key.Matches(msg, keys.search):
		p := newPrompt(promptSearchDocuments, "RECHERCHER UN DOCUMENT", promptField{label: "Titre", value: m.searchTerm})
		m.prompt = &p
	case key.Matches(msg, keys.upload) && m.screen == screenDocuments:
		p := newPrompt(promptUpload, "AJOUTER UN DOCUMENT",
			promptField{label: "Fichier"},
			promptField{label: "Titre (facultatif)", limit: 256},
		)
		m.prompt = &p
	}

	if len(m.documents) == 0 {
		return m, nil
	}
	selected := m.documents[m.docIdx]

	switch {
	case key.Matches(msg, keys.edit):
		p := newPrompt(promptRenameDocument, "RENOMMER", promptField{label: "Titre", value: selected.Title, limit: 256})
		m.prompt = &p
	case key.Matches(msg, keys.delete):
		c := deleteConfirm(selected.Title)
		m.confirm = &c
		m.onConfirm = m.cmdDeleteDocument(selected)
	case key.Matches(msg, keys.copy):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdCopyDocumentURL(selected.DocumentID))
	case key.Matches(msg, keys.save):
		p := newPrompt(promptSaveDocument, "TÉLÉCHARGER", promptField{label: "Dossier", value: defaultDownloadDir()})
		m.prompt = &p
	}

	return m, nil
}

func (m vaultModel) handleFoldersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.folderIdx = clamp(m.folderIdx-1, len(m.folders))
	case key.Matches(msg, keys.down):
		m.folderIdx = clamp(m.folderIdx+1, len(m.folders))
	case key.Matches(msg, keys.switchTab):
		m.screen = screenCategories
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCategories())
	case key.Matches(msg, keys.newItem):
		p := newPrompt(promptNewFolder, "NOUVEAU DOSSIER", promptField{label: "Nom", limit: 128})
		m.prompt = &p
	case key.Matches(msg, keys.enter) && len(m.folders) > 0:
		m.folder = m.folders[m.folderIdx]
		m.screen = screenRegistres
		m.registres, m.regIdx, m.regTerm = nil, 0, ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadRegistres(m.folder.FolderID, ""))
	}

	return m, nil
}

func (m vaultModel) handleRegistresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.regIdx = clamp(m.regIdx-1, len(m.registres))
	case key.Matches(msg, keys.down):
		m.regIdx = clamp(m.regIdx+1, len(m.registres))
	case key.Matches(msg, keys.esc):
		m.screen = screenFolders
		m.registres, m.regIdx = nil, 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadFolders())
	case key.Matches(msg, keys.newItem):
		return m.openRegistreForm(models.Registre{FolderID: m.folder.FolderID}), nil
	case key.Matches(msg, keys.search):
		p := newPrompt(promptSearchRegistres, "RECHERCHER", promptField{label: "Nom, immatriculation", value: m.regTerm})
		m.prompt = &p
	}

	if len(m.registres) == 0 {
		return m, nil
	}
	selected := m.registres[m.regIdx]

	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.edit):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdGetRegistre(selected.RegistreID))
	case key.Matches(msg, keys.copy):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdCopySignatureURL(selected.RegistreID))
	}

	return m, nil
}

func (m vaultModel) openRegistreForm(r models.Registre) vaultModel {
	if r.FolderID == "" {
		r.FolderID = m.folder.FolderID
	}
	m.editing = r
	p := newRegistrePrompt(r, m.now())
	m.prompt = &p
	return m
}

func (m vaultModel) submitPrompt(p promptModel) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch p.kind {
	case promptNewCategory:
		cmd = m.cmdCreateCategory(p.value(0))
	case promptSearchDocuments:
		m.searchTerm = p.value(0)
		if m.searchTerm == "" {
			m.screen = screenCategories
			cmd = m.cmdLoadCategories()
			break
		}
		m.screen = screenSearch
		m.documents, m.docIdx = nil, 0
		cmd = m.cmdSearchDocuments(m.searchTerm)
	case promptUpload:
		cmd = m.cmdUpload(m.category.CategoryID, p.value(1), p.value(0))
	case promptRenameDocument:
		cmd = m.cmdRenameDocument(m.documents[m.docIdx].DocumentID, p.value(0))
	case promptSaveDocument:
		cmd = m.cmdSaveDocument(m.documents[m.docIdx], p.value(0))
	case promptNewFolder:
		cmd = m.cmdCreateFolder(p.value(0))
	case promptSearchRegistres:
		m.regTerm = p.value(0)
		m.regIdx = 0
		cmd = m.cmdLoadRegistres(m.folder.FolderID, m.regTerm)
	case promptRegistre:
		r, signature := registreFromPrompt(p, m.editing)
		cmd = m.cmdSaveRegistre(r, signature)
	case promptChangePIN:
		cmd = m.cmdChangePIN(p.inputs[0].Value(), p.inputs[1].Value())
	case promptLogo:
		cmd = m.cmdSetLogo(p.value(0))
	default:
		return m, nil
	}

	m.loading = true
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m vaultModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.theme, m.buildInfo)
	}

	var b strings.Builder

	b.WriteString(m.headerLine())
	b.WriteString("\n\n")

	var hotKeys string
	switch m.screen {
	case screenDocuments, screenSearch:
		hotKeys = m.documentsView(&b)
	case screenFolders:
		hotKeys = m.foldersView(&b)
	case screenRegistres:
		hotKeys = m.registresView(&b)
	default:
		hotKeys = m.categoriesView(&b)
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Chargement…")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Notice.Render(m.status))
	}

	hotKeys += "\nt thème │ p PIN │ L logo │ v version │ x déconnexion │ q quitter"
	page := renderPage(m.theme, m.title(), strings.TrimRight(b.String(), "\n"), hotKeys)

	switch {
	case m.errOverlay != nil:
		return page + "\n" + m.errOverlay.View(m.theme)
	case m.confirm != nil:
		return page + "\n" + m.confirm.View(m.theme)
	case m.prompt != nil:
		return page + "\n" + m.prompt.View(m.theme)
	}
	return page
}

func (m vaultModel) title() string {
	switch m.screen {
	case screenDocuments:
		return "DOCUMENTS › " + m.category.Name
	case screenSearch:
		return "RECHERCHE › " + m.searchTerm
	case screenFolders:
		return "REGISTRES"
	case screenRegistres:
		return "REGISTRES › " + m.folder.Name
	default:
		return "DOCUMENTS"
	}
}

func (m vaultModel) headerLine() string {
	badge := m.theme.Offline.Render("● hors-ligne")
	if m.online {
		badge = m.theme.Online.Render("● en ligne")
	}

	line := badge
	if m.logo != "" {
		line += "  " + m.theme.Help.Render("Logo : "+fitText(m.logo, 40))
	}
	return line
}

func (m vaultModel) categoriesView(b *strings.Builder) string {
	if len(m.categories) == 0 && !m.loading {
		b.WriteString(m.theme.Help.Render("Aucune catégorie. Appuyez sur n pour en créer une."))
		b.WriteString("\n")
	}
	for i, c := range m.categories {
		line := cursor(i == m.catIdx) + fitText(c.Name, listWidth)
		if i == m.catIdx {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return "↑↓ naviguer │ enter ouvrir │ n nouvelle │ d supprimer │ / rechercher │ tab registres"
}

func (m vaultModel) documentsView(b *strings.Builder) string {
	if len(m.documents) == 0 && !m.loading {
		b.WriteString(m.theme.Help.Render("Aucun document."))
		b.WriteString("\n")
	}
	for i, d := range m.documents {
		line := fmt.Sprintf("%s%-*s  %8s  %s",
			cursor(i == m.docIdx),
			listWidth, fitText(d.Title, listWidth),
			formatSize(d.Size),
			formatDate(d.CreatedAt),
		)
		if i == m.docIdx {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	hotKeys := "↑↓ naviguer │ e renommer │ d supprimer │ c copier le lien │ s télécharger │ / rechercher │ esc retour"
	if m.screen == screenDocuments {
		hotKeys = "u ajouter │ " + hotKeys
	}
	return hotKeys
}

func (m vaultModel) foldersView(b *strings.Builder) string {
	if len(m.folders) == 0 && !m.loading {
		b.WriteString(m.theme.Help.Render("Aucun dossier. Appuyez sur n pour en créer un."))
		b.WriteString("\n")
	}
	for i, f := range m.folders {
		line := cursor(i == m.folderIdx) + fitText(f.Name, listWidth)
		if i == m.folderIdx {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return "↑↓ naviguer │ enter ouvrir │ n nouveau │ tab documents"
}

func (m vaultModel) registresView(b *strings.Builder) string {
	if m.regTerm != "" {
		b.WriteString(m.theme.Help.Render("Filtre : " + m.regTerm))
		b.WriteString("\n\n")
	}
	if len(m.registres) == 0 && !m.loading {
		b.WriteString(m.theme.Help.Render("Aucune entrée."))
		b.WriteString("\n")
	}
	for i, r := range m.registres {
		line := fmt.Sprintf("%s%-10s  %-32s  %s",
			cursor(i == m.regIdx),
			fitText(valueOrDash(r.Date), 10),
			fitText(r.FullName, 32),
			valueOrDash(r.PlateNumber),
		)
		if i == m.regIdx {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return "↑↓ naviguer │ enter modifier │ n nouvelle entrée │ c lien de la signature │ / rechercher │ esc retour"
}

func formatSize(n int64) string {
	switch {
	case n <= 0:
		return "-"
	case n < 1<<10:
		return fmt.Sprintf("%d o", n)
	case n < 1<<20:
		return fmt.Sprintf("%.1f Ko", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%.1f Mo", float64(n)/(1<<20))
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
