package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/service"
	"github.com/MKhiriev/go-xkpasswd/internal/utils"
	"github.com/MKhiriev/go-xkpasswd/models"
)

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// io.EOF means an empty body, which is a valid request for the
		// Default preset.
		log.Err(err).Str("func", "*Handler.generate").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	mode := models.Mode{Preset: req.Preset, Custom: req.Config}
	if mode.Preset == "" && mode.Custom == nil {
		mode.Preset = "Default"
	}

	generator, err := service.NewPasswordService(mode, h.words, h.rnd, h.logger)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("error building generator")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	generated, err := generator.GenerateN(r.Context(), req.Count)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("error generating passwords")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, models.GenerateResponse{Passwords: generated}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("error encoding response")
	}
}

func (h *Handler) listPresets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, service.Presets(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listPresets").Msg("error encoding response")
	}
}
