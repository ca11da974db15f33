package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-xkpasswd/internal/config"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/service"
	"github.com/MKhiriev/go-xkpasswd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalGenerator_EmbeddedList(t *testing.T) {
	generator, err := NewLocalGenerator(config.Dictionary{}, "v1", logger.Nop())
	require.NoError(t, err)

	passwords, err := generator.GeneratePasswords(context.Background(), models.GenerateRequest{
		Preset: "XKCD",
		Count:  3,
	})

	require.NoError(t, err)
	require.Len(t, passwords, 3)
	for _, password := range passwords {
		assert.NotEmpty(t, password.Phrase)
	}
}

func TestNewLocalGenerator_FileList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "avocado\nbramble\ncurrant\ndurian\nfig\nguava\nkumquat\nloquat\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	generator, err := NewLocalGenerator(config.Dictionary{Path: path}, "v1", logger.Nop())
	require.NoError(t, err)

	passwords, err := generator.GeneratePasswords(context.Background(), models.GenerateRequest{Preset: "XKCD"})

	require.NoError(t, err)
	require.Len(t, passwords, 1)
}

func TestNewLocalGenerator_MissingFile_FailsAtStartup(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, err := NewLocalGenerator(config.Dictionary{Path: missing}, "v1", logger.Nop())

	assert.Error(t, err)
}

func TestLocalGenerator_EmptyRequest_UsesDefaultPreset(t *testing.T) {
	generator, err := NewLocalGenerator(config.Dictionary{}, "v1", logger.Nop())
	require.NoError(t, err)

	passwords, err := generator.GeneratePasswords(context.Background(), models.GenerateRequest{})

	require.NoError(t, err)
	require.Len(t, passwords, 1)
	assert.NotEmpty(t, passwords[0].Phrase)
}

func TestLocalGenerator_UnknownPreset_ReturnsError(t *testing.T) {
	generator, err := NewLocalGenerator(config.Dictionary{}, "v1", logger.Nop())
	require.NoError(t, err)

	_, err = generator.GeneratePasswords(context.Background(), models.GenerateRequest{Preset: "Nope"})

	assert.ErrorIs(t, err, service.ErrInvalidConfiguration)
}

func TestLocalGenerator_Presets(t *testing.T) {
	generator, err := NewLocalGenerator(config.Dictionary{}, "v1", logger.Nop())
	require.NoError(t, err)

	presets, err := generator.Presets(context.Background())

	require.NoError(t, err)
	assert.Len(t, presets, 8)
}

func TestLocalGenerator_Version(t *testing.T) {
	generator, err := NewLocalGenerator(config.Dictionary{}, "v1.2.3", logger.Nop())
	require.NoError(t, err)

	version, err := generator.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", version)
}
