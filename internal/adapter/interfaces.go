// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the DocVault server.
//
// [ServerAdapter] decouples the client services from the protocol; the
// package ships an HTTP/REST implementation built on resty
// ([NewHTTPServerAdapter]) and a connectivity probe that can use either
// HTTP or the gRPC health service.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// wraps one of the sentinel values of errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401) and
// read the server's message with [errors.As]. Transport failures wrap
// [ErrUnreachable].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the complete client view of the server API.
type ServerAdapter interface {
	AuthAdapter
	VaultAdapter
	RegistreAdapter

	// Ping checks that the server answers.
	Ping(ctx context.Context) error

	// Download streams the content at url (usually a presigned object URL)
	// into w. No credentials are sent.
	Download(ctx context.Context, url string, w io.Writer) error
}

// AuthAdapter covers account and session endpoints. The bearer token set
// with SetToken is attached to every authenticated request.
type AuthAdapter interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, creds models.Credentials) error
	// Login stores the returned bearer token via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (models.SessionResponse, error)
}

// VaultAdapter covers categories and documents.
type VaultAdapter interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListDocuments(ctx context.Context, categoryID string) ([]models.Document, error)
	SearchDocuments(ctx context.Context, term string) ([]models.Document, error)
	UploadDocument(ctx context.Context, categoryID, title, fileName string, body io.Reader) (models.Document, error)
	RenameDocument(ctx context.Context, documentID, title string) (models.Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
	DocumentURL(ctx context.Context, documentID string) (string, error)
}

// RegistreAdapter covers registre folders and entries.
type RegistreAdapter interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, name string) (models.Folder, error)

	ListRegistres(ctx context.Context, folderID, term string) ([]models.Registre, error)
	GetRegistre(ctx context.Context, registreID string) (models.Registre, error)
	CreateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error)
	UpdateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error)
	// UploadSignature stores a signature image and returns the key to put
	// in Registre.SignatureKey.
	UploadSignature(ctx context.Context, fileName string, body io.Reader) (string, error)
	SignatureURL(ctx context.Context, registreID string) (string, error)
}
