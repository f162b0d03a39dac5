package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentpulse/internal/config"
	"studentpulse/pkg/contracts/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080},
		Logging: config.LoggingConfig{Level: "error", Format: "text"},
		Upload:  config.UploadConfig{MaxBytes: 1 << 20},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func TestNewApplication(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)
	require.NotNil(t, application.Router)
	require.NotNil(t, application.StudentService)
	assert.Equal(t, ":8080", application.Server.Addr)
}

func TestHealthAndVersionEndpoints(t *testing.T) {
	application, err := New(testConfig())
	require.NoError(t, err)

	for _, path := range []string{"/api/health", "/api/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		application.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNormalizationOverridesApplied(t *testing.T) {
	cfg := testConfig()
	cfg.Normalization = map[string]config.RangeConfig{
		"智育": {Min: 0, Max: 90},
	}

	application, err := New(cfg)
	require.NoError(t, err)

	r, ok := application.RangeStore.Range(domain.KindIntellectual)
	require.True(t, ok)
	assert.Equal(t, domain.ScoreRange{Min: 0, Max: 90}, r)
}

func TestNormalizationOverrideRejected(t *testing.T) {
	cfg := testConfig()
	cfg.Normalization = map[string]config.RangeConfig{
		"智育": {Min: 90, Max: 90},
	}

	_, err := New(cfg)
	assert.Error(t, err)
}
