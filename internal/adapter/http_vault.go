package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/MKhiriev/doc-vault/models"
)

func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	resp, err := h.authedRequest(ctx).SetResult(&categories).Get("/api/categories")
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return categories, nil
}

func (h *httpServerAdapter) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	var category models.Category

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NameRequest{Name: name}).
		SetResult(&category).
		Post("/api/categories")
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: create category: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (h *httpServerAdapter) DeleteCategory(ctx context.Context, categoryID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", categoryID).
		Delete("/api/categories/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete category: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListDocuments(ctx context.Context, categoryID string) ([]models.Document, error) {
	var docs []models.Document

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", categoryID).
		SetResult(&docs).
		Get("/api/categories/{id}/documents")
	if err != nil {
		return nil, fmt.Errorf("%w: list documents: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return docs, nil
}

func (h *httpServerAdapter) SearchDocuments(ctx context.Context, term string) ([]models.Document, error) {
	var docs []models.Document

	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", term).
		SetResult(&docs).
		Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("%w: search documents: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return docs, nil
}

// UploadDocument sends the file as multipart/form-data: a "title" field and
// a "file" part.
func (h *httpServerAdapter) UploadDocument(ctx context.Context, categoryID, title, fileName string, body io.Reader) (models.Document, error) {
	var doc models.Document

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", categoryID).
		SetMultipartFormData(map[string]string{"title": title}).
		SetMultipartField("file", filepath.Base(fileName), contentTypeOf(fileName), body).
		SetResult(&doc).
		Post("/api/categories/{id}/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: upload document: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

func (h *httpServerAdapter) RenameDocument(ctx context.Context, documentID, title string) (models.Document, error) {
	var doc models.Document

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", documentID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RenameRequest{Title: title}).
		SetResult(&doc).
		Patch("/api/documents/{id}")
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: rename document: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

func (h *httpServerAdapter) DeleteDocument(ctx context.Context, documentID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", documentID).
		Delete("/api/documents/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete document: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// DocumentURL returns a short-lived download URL for the document.
func (h *httpServerAdapter) DocumentURL(ctx context.Context, documentID string) (string, error) {
	var out models.URLResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", documentID).
		SetResult(&out).
		Get("/api/documents/{id}/url")
	if err != nil {
		return "", fmt.Errorf("%w: document url: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.URL, nil
}

func contentTypeOf(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
