package http

import (
	"net/http"

	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/models"
)

// ping is the connectivity probe of the client.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "pong", http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	_, _ = utils.WriteJSON(w, models.VersionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
