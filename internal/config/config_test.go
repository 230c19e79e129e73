package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	shoperrors "github.com/soutech/shopctl/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "BRL", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "api_url: https://shop.example\npage_size: 12\nlocale: en-US\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example", cfg.APIURL)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "BRL", cfg.Currency, "unset fields keep their defaults")
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "api_url: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)

	var shopErr *shoperrors.ShopError
	require.ErrorAs(t, err, &shopErr)
	assert.Equal(t, shoperrors.ErrCodeConfigInvalid, shopErr.Code)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("SHOP_BACKEND", "https://env.example")
	path := writeConfig(t, "api_url: ${SHOP_BACKEND}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.APIURL)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "api_url: https://file.example\n")
	t.Setenv("SHOPCTL_API_URL", "https://override.example")
	t.Setenv("SHOPCTL_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://override.example", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero page size", "page_size: 0\n"},
		{"bogus locale", "locale: \"not a locale!\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)

			var shopErr *shoperrors.ShopError
			require.ErrorAs(t, err, &shopErr)
			assert.Equal(t, shoperrors.ErrCodeConfigInvalid, shopErr.Code)
		})
	}
}

func TestLanguageTag(t *testing.T) {
	cfg := Default()
	assert.Equal(t, language.MustParse("pt-BR"), cfg.LanguageTag())
}
