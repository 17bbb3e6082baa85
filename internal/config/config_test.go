package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, token, apiKey string) {
	t.Helper()
	t.Setenv("BOT_TOKEN", token)
	t.Setenv("GROQ_API_KEY", apiKey)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
}

func TestNewConfig_Defaults(t *testing.T) {
	setEnv(t, "123:abc", "gsk_test")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, "gsk_test", cfg.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.BaseURL)
	assert.Equal(t, "llama3-8b-8192", cfg.Model)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, DefaultMessages, cfg.Messages)
}

func TestNewConfig_MissingSecrets(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		apiKey  string
		wantErr string
	}{
		{name: "empty token", token: "", apiKey: "key", wantErr: "BOT_TOKEN"},
		{name: "blank token", token: "   ", apiKey: "key", wantErr: "BOT_TOKEN"},
		{name: "empty api key", token: "tok", apiKey: "", wantErr: "GROQ_API_KEY"},
		{name: "both empty", token: "", apiKey: "", wantErr: "GROQ_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.token, tt.apiKey)

			_, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewConfig_UnsetToken(t *testing.T) {
	setEnv(t, "x", "key")
	require.NoError(t, os.Unsetenv("BOT_TOKEN"))

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := Config{Token: "t", APIKey: "k", BaseURL: "not a url", Model: "m"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_BASE_URL")
}

func TestLoadFile_OverridesAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[messages]
greeting = "Hai {name}!"
mabar = "Ayo main."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Config{ConfigFile: path}
	require.NoError(t, cfg.LoadFile())

	assert.Equal(t, "Hai Ana!", cfg.Messages.Greet("Ana"))
	assert.Equal(t, "Ayo main.", cfg.Messages.Mabar)
	assert.Equal(t, DefaultMessages.Help, cfg.Messages.Help)
	assert.Equal(t, DefaultMessages.AIFailure, cfg.Messages.AIFailure)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[messages\n"), 0o600))

	cfg := Config{ConfigFile: path}
	assert.Error(t, cfg.LoadFile())
}

func TestGreet(t *testing.T) {
	assert.Equal(t, "Halo Ana, bagaimana kabarmu?", DefaultMessages.Greet("Ana"))
}
