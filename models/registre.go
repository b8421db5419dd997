package models

import "time"

// Registre is one signed entry of a paper-like register kept in a folder.
type Registre struct {
	// RegistreID is the unique identifier of the entry.
	RegistreID string `json:"registre_id"`

	// UserID is the owner of the entry.
	UserID string `json:"user_id"`

	// FolderID is the folder the entry belongs to.
	FolderID string `json:"folder_id"`

	// Date is the free-form date written on the entry.
	Date string `json:"date"`

	// FullName is the name of the person registered. Required.
	FullName string `json:"full_name"`

	Phone        string `json:"phone"`
	SerialNumber string `json:"serial_number"`
	PlateNumber  string `json:"plate_number"`
	Origin       string `json:"origin"`
	SignerName   string `json:"signer_name"`

	// SignatureKey is the object store key of the signature image. Required.
	SignatureKey string `json:"signature_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Registre model.
func (r Registre) TableName() string {
	return "registres"
}
