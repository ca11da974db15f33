package http

import (
	"net/http"

	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/utils"
	"github.com/MKhiriev/go-xkpasswd/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.VersionResponse{Version: h.version}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getVersion").Msg("error encoding response")
	}
}
