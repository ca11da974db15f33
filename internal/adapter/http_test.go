package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-xkpasswd/internal/config"
	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/service"
	"github.com/MKhiriev/go-xkpasswd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)

	serverAdapter, err := NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    testServer.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return serverAdapter
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", raw: "https://xkpasswd.example.com/", want: "https://xkpasswd.example.com"},
		{name: "surrounding whitespace", raw: "  localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := normalizeBaseURL(test.raw)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress_ReturnsError(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())

	assert.Error(t, err)
}

func TestGeneratePasswords_OK(t *testing.T) {
	serverAdapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)

		var req models.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "XKCD", req.Preset)
		assert.Equal(t, 2, req.Count)

		json.NewEncoder(w).Encode(models.GenerateResponse{Passwords: []models.Password{
			{Phrase: "alpha-bravo-china-delta"},
			{Phrase: "eagle-fable-gamma-hedge"},
		}})
	})

	passwords, err := serverAdapter.GeneratePasswords(context.Background(), models.GenerateRequest{
		Preset: "XKCD",
		Count:  2,
	})

	require.NoError(t, err)
	require.Len(t, passwords, 2)
	assert.Equal(t, "alpha-bravo-china-delta", passwords[0].Phrase)
}

func TestGeneratePasswords_BadRequest_MapsToInvalidConfiguration(t *testing.T) {
	serverAdapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown preset", http.StatusBadRequest)
	})

	_, err := serverAdapter.GeneratePasswords(context.Background(), models.GenerateRequest{Preset: "Nope"})

	assert.ErrorIs(t, err, service.ErrInvalidConfiguration)
}

func TestGeneratePasswords_UnprocessableEntity_MapsToInsufficientDictionary(t *testing.T) {
	serverAdapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "3 candidate words after filtering, need 4", http.StatusUnprocessableEntity)
	})

	_, err := serverAdapter.GeneratePasswords(context.Background(), models.GenerateRequest{Preset: "XKCD"})

	assert.ErrorIs(t, err, service.ErrInsufficientDictionary)
}

func TestGeneratePasswords_ServiceUnavailable_MapsToDictionaryUnavailable(t *testing.T) {
	serverAdapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wordlist missing", http.StatusServiceUnavailable)
	})

	_, err := serverAdapter.GeneratePasswords(context.Background(), models.GenerateRequest{Preset: "XKCD"})

	assert.ErrorIs(t, err, dictionary.ErrDictionaryUnavailable)
}

func TestGeneratePasswords_MalformedResponse_ReturnsError(t *testing.T) {
	serverAdapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"passwords": `))
	})

	_, err := serverAdapter.GeneratePasswords(context.Background(), models.GenerateRequest{Preset: "XKCD"})

	assert.Error(t, err)
}

func TestPresets_OK(t *testing.T) {
	serverAdapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/presets", r.URL.Path)

		json.NewEncoder(w).Encode([]models.PresetInfo{
			{Name: "Default", Config: models.Configuration{NumWords: 3}},
			{Name: "XKCD", Config: models.Configuration{NumWords: 4}},
		})
	})

	presets, err := serverAdapter.Presets(context.Background())

	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "Default", presets[0].Name)
	assert.Equal(t, 4, presets[1].Config.NumWords)
}

func TestVersion_OK(t *testing.T) {
	serverAdapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/version", r.URL.Path)
		json.NewEncoder(w).Encode(models.VersionResponse{Version: "v2.1.0"})
	})

	version, err := serverAdapter.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v2.1.0", version)
}
