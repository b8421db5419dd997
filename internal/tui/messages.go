package tui

import (
	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/models"
)

// gateStateMsg carries the state returned by a gate operation.
type gateStateMsg struct {
	state gate.State
	err   error
}

type categoriesLoadedMsg struct {
	items []models.Category
	err   error
}

type documentsLoadedMsg struct {
	items []models.Document
	err   error
}

type foldersLoadedMsg struct {
	items []models.Folder
	err   error
}

type registresLoadedMsg struct {
	items []models.Registre
	err   error
}

// actionDoneMsg ends any mutation; reload tells the current list to refresh.
type actionDoneMsg struct {
	status string
	err    error
	reload bool
}

type registreSavedMsg struct {
	registre models.Registre
	err      error
}

type onlineMsg bool

// biometricPromptMsg asks the user to touch the sensor.
type biometricPromptMsg string

type clearStatusMsg struct{}
