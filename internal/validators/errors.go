package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("invalid email")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrEmptyName         = errors.New("name is required")
	ErrNameTooLong       = errors.New("name is too long")
	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidCategoryID = errors.New("invalid category ID")
	ErrInvalidFolderID   = errors.New("invalid folder ID")
	ErrInvalidRegistreID = errors.New("invalid registre ID")
	ErrEmptyFullName     = errors.New("full name is required")
	ErrEmptySignature    = errors.New("signature is required")
	ErrEmptyFileName     = errors.New("file name is required")
)
