package http

import (
	"net/http"

	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listFolders")
		return
	}

	folders, err := h.services.RegistreService.ListFolders(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listFolders")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(folders), http.StatusOK)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.createFolder")
		return
	}

	var req models.NameRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err, "*http.Handler.createFolder")
		return
	}

	folder, err := h.services.RegistreService.CreateFolder(r.Context(), userID, req.Name)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.createFolder")
		return
	}

	_, _ = utils.WriteJSON(w, folder, http.StatusCreated)
}

// listRegistres lists a folder's entries, filtered by ?q= when present.
func (h *Handler) listRegistres(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listRegistres")
		return
	}

	list, err := h.services.RegistreService.ListRegistres(r.Context(), userID, chi.URLParam(r, "id"), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.listRegistres")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(list), http.StatusOK)
}

func (h *Handler) getRegistre(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.getRegistre")
		return
	}

	registre, err := h.services.RegistreService.GetRegistre(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.getRegistre")
		return
	}

	_, _ = utils.WriteJSON(w, registre, http.StatusOK)
}

// createRegistre and updateRegistre take the owner and the ids from the
// route and the token, never from the body.
func (h *Handler) createRegistre(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.createRegistre")
		return
	}

	var registre models.Registre
	if err = decodeJSON(w, r, &registre); err != nil {
		h.writeError(w, r, err, "*http.Handler.createRegistre")
		return
	}
	registre.UserID = userID
	registre.FolderID = chi.URLParam(r, "id")
	registre.RegistreID = ""

	created, err := h.services.RegistreService.CreateRegistre(r.Context(), registre)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.createRegistre")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRegistre(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.updateRegistre")
		return
	}

	var registre models.Registre
	if err = decodeJSON(w, r, &registre); err != nil {
		h.writeError(w, r, err, "*http.Handler.updateRegistre")
		return
	}
	registre.UserID = userID
	registre.RegistreID = chi.URLParam(r, "id")

	updated, err := h.services.RegistreService.UpdateRegistre(r.Context(), registre)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.updateRegistre")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) signatureURL(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.signatureURL")
		return
	}

	url, err := h.services.RegistreService.SignatureURL(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.signatureURL")
		return
	}

	_, _ = utils.WriteJSON(w, models.URLResponse{URL: url}, http.StatusOK)
}

// uploadSignature stores the "signature" image part and returns its key,
// which the client then sets on the registre it saves.
func (h *Handler) uploadSignature(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.uploadSignature")
		return
	}

	file, header, err := h.formFile(w, r, "signature")
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.uploadSignature")
		return
	}
	defer file.Close()
	defer r.MultipartForm.RemoveAll()

	key, err := h.services.RegistreService.UploadSignature(r.Context(), userID, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.uploadSignature")
		return
	}

	_, _ = utils.WriteJSON(w, models.SignatureResponse{SignatureKey: key}, http.StatusCreated)
}
