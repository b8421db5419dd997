package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/doc-vault/models"
)

const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldUserID       = "user_id"
	FieldName         = "name"
	FieldTitle        = "title"
	FieldCategoryID   = "category_id"
	FieldFolderID     = "folder_id"
	FieldRegistreID   = "registre_id"
	FieldFullName     = "full_name"
	FieldSignatureKey = "signature_key"
	FieldFileName     = "file_name"
)

const (
	MinPasswordLength = 6
	maxNameLength     = 200
)

type DocVaultValidator struct{}

func NewDocVaultValidator() Validator {
	return &DocVaultValidator{}
}

// Validate checks obj. Without fields every rule of the type applies.
func (v *DocVaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Category:
		return v.validateCategory(value, fields...)
	case *models.Category:
		return v.validateCategory(*value, fields...)

	case models.Document:
		return v.validateDocument(value, fields...)
	case *models.Document:
		return v.validateDocument(*value, fields...)

	case models.DocumentUpload:
		return v.validateDocumentUpload(value, fields...)
	case *models.DocumentUpload:
		return v.validateDocumentUpload(*value, fields...)

	case models.Folder:
		return v.validateFolder(value, fields...)
	case *models.Folder:
		return v.validateFolder(*value, fields...)

	case models.Registre:
		return v.validateRegistre(value, fields...)
	case *models.Registre:
		return v.validateRegistre(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DocVaultValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !validEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(c.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocVaultValidator) validateCategory(c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if c.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if err := checkName(c.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocVaultValidator) validateDocument(d models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCategoryID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if d.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldCategoryID:
			if d.CategoryID == "" {
				return ErrInvalidCategoryID
			}
		case FieldTitle:
			if strings.TrimSpace(d.Title) == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(d.Title) > maxNameLength {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocVaultValidator) validateDocumentUpload(u models.DocumentUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCategoryID, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if u.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldCategoryID:
			if u.CategoryID == "" {
				return ErrInvalidCategoryID
			}
		case FieldFileName:
			if strings.TrimSpace(u.FileName) == "" {
				return ErrEmptyFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocVaultValidator) validateFolder(fo models.Folder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if fo.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if err := checkName(fo.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocVaultValidator) validateRegistre(r models.Registre, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFolderID, FieldFullName, FieldSignatureKey}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if r.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldFolderID:
			if r.FolderID == "" {
				return ErrInvalidFolderID
			}
		case FieldRegistreID:
			if r.RegistreID == "" {
				return ErrInvalidRegistreID
			}
		case FieldFullName:
			if strings.TrimSpace(r.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldSignatureKey:
			if strings.TrimSpace(r.SignatureKey) == "" {
				return ErrEmptySignature
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// validEmail is the loose check of the sign-in form: one "@" with text on
// both sides.
func validEmail(email string) bool {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}
