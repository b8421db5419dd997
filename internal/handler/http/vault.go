package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

func isUploadPath(path string) bool {
	return path == "/api/signatures" ||
		(strings.HasPrefix(path, "/api/categories/") && strings.HasSuffix(path, "/documents"))
}

// formFile parses a size-capped multipart body and opens its field part.
// The caller must close the returned file and call r.MultipartForm.RemoveAll.
func (h *Handler) formFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if h.cfg.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrFileRequired, err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		_ = r.MultipartForm.RemoveAll()
		return nil, nil, fmt.Errorf("%w: %w", ErrFileRequired, err)
	}
	return file, header, nil
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listCategories")
		return
	}

	categories, err := h.services.VaultService.ListCategories(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listCategories")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(categories), http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.createCategory")
		return
	}

	var req models.NameRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, "*http.Handler.createCategory")
		return
	}

	category, err := h.services.VaultService.CreateCategory(r.Context(), userID, req.Name)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.createCategory")
		return
	}

	_, _ = utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.deleteCategory")
		return
	}

	if err = h.services.VaultService.DeleteCategory(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "*http.Handler.deleteCategory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listDocuments")
		return
	}

	docs, err := h.services.VaultService.ListDocuments(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listDocuments")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(docs), http.StatusOK)
}

func (h *Handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.searchDocuments")
		return
	}

	docs, err := h.services.VaultService.SearchDocuments(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.searchDocuments")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(docs), http.StatusOK)
}

// uploadDocument takes a multipart body with an optional "title" field and
// a "file" part.
func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.uploadDocument")
		return
	}

	file, header, err := h.formFile(w, r, "file")
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.uploadDocument")
		return
	}
	defer file.Close()
	defer r.MultipartForm.RemoveAll()

	upload := models.DocumentUpload{
		UserID:      userID,
		CategoryID:  chi.URLParam(r, "id"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	doc, err := h.services.VaultService.UploadDocument(r.Context(), upload, r.FormValue("title"), file)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.uploadDocument")
		return
	}

	_, _ = utils.WriteJSON(w, doc, http.StatusCreated)
}

func (h *Handler) renameDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.renameDocument")
		return
	}

	var req models.RenameRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, "*http.Handler.renameDocument")
		return
	}

	doc, err := h.services.VaultService.RenameDocument(r.Context(), userID, chi.URLParam(r, "id"), req.Title)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.renameDocument")
		return
	}

	_, _ = utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.deleteDocument")
		return
	}

	if err = h.services.VaultService.DeleteDocument(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "*http.Handler.deleteDocument")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) documentURL(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.documentURL")
		return
	}

	url, err := h.services.VaultService.DocumentURL(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.documentURL")
		return
	}

	_, _ = utils.WriteJSON(w, models.URLResponse{URL: url}, http.StatusOK)
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
