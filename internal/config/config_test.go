package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.ServerPort)
	assert.Equal(t, time.Second, cfg.Landing.SubmitDelay)
	assert.Equal(t, 2*time.Second, cfg.Landing.ResetDelay)
	assert.Equal(t, "support-care@narturebelle.com", cfg.Landing.ContactAddress)
	assert.Equal(t, "nb_session", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.Otel.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SUBMIT_DELAY", "250ms")
	t.Setenv("RESET_DELAY", "500ms")
	t.Setenv("CONTACT_ADDRESS", "hello@example.com")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 250*time.Millisecond, cfg.Landing.SubmitDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Landing.ResetDelay)
	assert.Equal(t, "hello@example.com", cfg.Landing.ContactAddress)
	assert.True(t, cfg.Otel.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "SERVER_PORT", "70000"},
		{"unparsable duration", "SUBMIT_DELAY", "soon"},
		{"negative delay", "RESET_DELAY", "-1s"},
		{"zero rate", "CONTACT_RATE_PER_MINUTE", "0"},
		{"zero ttl", "SESSION_TTL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		address string
		port    int
		want    string
	}{
		{"wildcard", "0.0.0.0", 4002, "http://localhost:4002"},
		{"empty", "", 80, "http://localhost:80"},
		{"explicit host", "127.0.0.1", 9000, "http://127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ServerAddress: tt.address, ServerPort: tt.port}
			assert.Equal(t, tt.want, cfg.BaseURL())
		})
	}
}
