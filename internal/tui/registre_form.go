package tui

import (
	"time"

	"github.com/MKhiriev/doc-vault/models"
)

const registreDateLayout = "2006-01-02"

const (
	fieldDate = iota
	fieldFullName
	fieldPhone
	fieldSerial
	fieldPlate
	fieldOrigin
	fieldSigner
	fieldSignature
)

type registreLoadedMsg struct {
	registre models.Registre
	err      error
}

// newRegistrePrompt opens the entry form. A new entry gets today's date.
// The signature field takes a local image path; left empty on an existing
// entry it keeps the stored signature.
func newRegistrePrompt(r models.Registre, now time.Time) promptModel {
	title := "NOUVEAU REGISTRE"
	date := r.Date
	if r.RegistreID != "" {
		title = "MODIFIER LE REGISTRE"
	} else if date == "" {
		date = now.Format(registreDateLayout)
	}

	signatureLabel := "Signature (image)"
	if r.SignatureKey != "" {
		signatureLabel = "Nouvelle signature"
	}

	return newPrompt(promptRegistre, title,
		promptField{label: "Date", value: date, limit: 32},
		promptField{label: "Nom complet", value: r.FullName, limit: 128},
		promptField{label: "Téléphone", value: r.Phone, limit: 32},
		promptField{label: "N° de série", value: r.SerialNumber, limit: 64},
		promptField{label: "Immatriculation", value: r.PlateNumber, limit: 32},
		promptField{label: "Provenance", value: r.Origin, limit: 128},
		promptField{label: "Signataire", value: r.SignerName, limit: 128},
		promptField{label: signatureLabel},
	)
}

// registreFromPrompt merges the form into base and returns the signature
// path to upload, "" when unchanged.
func registreFromPrompt(p promptModel, base models.Registre) (models.Registre, string) {
	r := base
	r.Date = p.value(fieldDate)
	r.FullName = p.value(fieldFullName)
	r.Phone = p.value(fieldPhone)
	r.SerialNumber = p.value(fieldSerial)
	r.PlateNumber = p.value(fieldPlate)
	r.Origin = p.value(fieldOrigin)
	r.SignerName = p.value(fieldSigner)

	return r, p.value(fieldSignature)
}
