package adapter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/doc-vault/models"
)

func (h *httpServerAdapter) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder

	resp, err := h.authedRequest(ctx).SetResult(&folders).Get("/api/folders")
	if err != nil {
		return nil, fmt.Errorf("%w: list folders: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return folders, nil
}

func (h *httpServerAdapter) CreateFolder(ctx context.Context, name string) (models.Folder, error) {
	var folder models.Folder

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NameRequest{Name: name}).
		SetResult(&folder).
		Post("/api/folders")
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: create folder: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}

	return folder, nil
}

// ListRegistres lists a folder's entries; a non-empty term filters them.
func (h *httpServerAdapter) ListRegistres(ctx context.Context, folderID, term string) ([]models.Registre, error) {
	var list []models.Registre

	req := h.authedRequest(ctx).
		SetPathParam("id", folderID).
		SetResult(&list)
	if term != "" {
		req.SetQueryParam("q", term)
	}

	resp, err := req.Get("/api/folders/{id}/registres")
	if err != nil {
		return nil, fmt.Errorf("%w: list registres: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list, nil
}

func (h *httpServerAdapter) GetRegistre(ctx context.Context, registreID string) (models.Registre, error) {
	var g models.Registre

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", registreID).
		SetResult(&g).
		Get("/api/registres/{id}")
	if err != nil {
		return models.Registre{}, fmt.Errorf("%w: get registre: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Registre{}, err
	}

	return g, nil
}

func (h *httpServerAdapter) CreateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error) {
	var g models.Registre

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", registre.FolderID).
		SetHeader("Content-Type", "application/json").
		SetBody(registre).
		SetResult(&g).
		Post("/api/folders/{id}/registres")
	if err != nil {
		return models.Registre{}, fmt.Errorf("%w: create registre: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Registre{}, err
	}

	return g, nil
}

func (h *httpServerAdapter) UpdateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error) {
	var g models.Registre

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", registre.RegistreID).
		SetHeader("Content-Type", "application/json").
		SetBody(registre).
		SetResult(&g).
		Put("/api/registres/{id}")
	if err != nil {
		return models.Registre{}, fmt.Errorf("%w: update registre: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Registre{}, err
	}

	return g, nil
}

// UploadSignature sends the image as the "signature" part of a multipart
// form and returns the stored key.
func (h *httpServerAdapter) UploadSignature(ctx context.Context, fileName string, body io.Reader) (string, error) {
	var out models.SignatureResponse

	resp, err := h.authedRequest(ctx).
		SetMultipartField("signature", filepath.Base(fileName), contentTypeOf(fileName), body).
		SetResult(&out).
		Post("/api/signatures")
	if err != nil {
		return "", fmt.Errorf("%w: upload signature: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.SignatureKey, nil
}

func (h *httpServerAdapter) SignatureURL(ctx context.Context, registreID string) (string, error) {
	var out models.URLResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", registreID).
		SetResult(&out).
		Get("/api/registres/{id}/signature/url")
	if err != nil {
		return "", fmt.Errorf("%w: signature url: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.URL, nil
}
