package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-xkpasswd/internal/config"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/utils"
	"github.com/MKhiriev/go-xkpasswd/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GeneratePasswords implements [ServerAdapter]. It POSTs req to
// POST /api/generate and decodes the generated passwords from the response.
func (h *httpServerAdapter) GeneratePasswords(ctx context.Context, req models.GenerateRequest) ([]models.Password, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/generate")
	if err != nil {
		return nil, fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var generateResponse models.GenerateResponse
	if err = json.Unmarshal(resp.Body(), &generateResponse); err != nil {
		return nil, fmt.Errorf("decode generate response: %w", err)
	}

	return generateResponse.Passwords, nil
}

// Presets implements [ServerAdapter]. It GETs GET /api/presets and decodes
// the preset listing.
func (h *httpServerAdapter) Presets(ctx context.Context) ([]models.PresetInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/presets")
	if err != nil {
		return nil, fmt.Errorf("presets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var presets []models.PresetInfo
	if err = json.Unmarshal(resp.Body(), &presets); err != nil {
		return nil, fmt.Errorf("decode presets response: %w", err)
	}

	return presets, nil
}

// Version implements [ServerAdapter]. It GETs GET /api/version and returns
// the server's build version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var version models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return "", fmt.Errorf("decode version response: %w", err)
	}

	return version.Version, nil
}
