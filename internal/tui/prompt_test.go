package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptModel_EnterWalksFields(t *testing.T) {
	p := newPrompt(promptUpload, "AJOUTER", promptField{label: "Fichier"}, promptField{label: "Titre"})
	require.True(t, p.inputs[0].Focused())

	p, res, _ := p.update(keyMsg("enter"))
	assert.False(t, res.done)
	assert.Equal(t, 1, p.focus)

	_, res, _ = p.update(keyMsg("enter"))
	assert.True(t, res.done)
}

func TestPromptModel_Escape(t *testing.T) {
	p := newPrompt(promptLogo, "LOGO", promptField{label: "Image", value: "/img/logo.png"})

	_, res, _ := p.update(keyMsg("esc"))
	assert.True(t, res.cancelled)
	assert.Equal(t, "/img/logo.png", p.value(0))
	assert.Empty(t, p.value(3), "out of range")
}

func TestPromptModel_SecretField(t *testing.T) {
	p := newPrompt(promptChangePIN, "PIN", promptField{label: "PIN", secret: true, limit: 4})
	p.inputs[0].SetValue("123456")

	assert.Equal(t, "1234", p.value(0), "char limit applies")
	assert.NotContains(t, p.View(LightTheme()), "1234")
}

func TestRegistrePrompt(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	t.Run("new entry defaults the date", func(t *testing.T) {
		p := newRegistrePrompt(models.Registre{FolderID: "f-1"}, now)
		assert.Equal(t, "NOUVEAU REGISTRE", p.title)
		assert.Equal(t, "2026-10-19", p.value(fieldDate))
	})

	t.Run("merge keeps identity", func(t *testing.T) {
		base := models.Registre{RegistreID: "r-1", UserID: "u-1", FolderID: "f-1", SignatureKey: "u-1/signatures/1.png"}
		p := newRegistrePrompt(base, now)
		assert.Empty(t, p.value(fieldDate), "existing entry keeps its own date")

		p.inputs[fieldFullName].SetValue(" Jeanne Martin ")
		p.inputs[fieldOrigin].SetValue("Lyon")

		r, signature := registreFromPrompt(p, base)
		assert.Equal(t, "r-1", r.RegistreID)
		assert.Equal(t, "u-1/signatures/1.png", r.SignatureKey)
		assert.Equal(t, "Jeanne Martin", r.FullName)
		assert.Equal(t, "Lyon", r.Origin)
		assert.Empty(t, signature)
	})
}

func TestPromptModel_LettersAreTyped(t *testing.T) {
	p := newPrompt(promptNewFolder, "DOSSIER", promptField{label: "Nom"})

	for _, r := range "juillet" {
		p, _, _ = p.update(keyMsg(string(r)))
	}
	assert.Equal(t, "juillet", p.value(0), "list navigation keys do not steal letters")
}
