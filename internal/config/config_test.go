package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var requiredVars = []string{
	"LOG_MODE",
	"SERVER_PORT",
	"RAINDROP_TOKEN",
	"ANTHROPIC_API_KEY",
	"ANTHROPIC_MODEL",
	"KEYWORD_API_URL",
	"KEYWORD_API_KEY",
	"TRANSCRIPT_API_URL",
	"TRANSCRIPT_API_KEY",
}

func setAllVars(t *testing.T) {
	t.Helper()
	for _, name := range requiredVars {
		t.Setenv(name, "value-for-"+name)
	}
}

func TestCheckEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T)
		expectErr bool
	}{
		{
			name:  "AllVariablesSet",
			setup: setAllVars,
		},
		{
			name: "MissingVariable",
			setup: func(t *testing.T) {
				setAllVars(t)
				t.Setenv("RAINDROP_TOKEN", "")
			},
			expectErr: true,
		},
		{
			name: "EmptyVariableCountsAsMissing",
			setup: func(t *testing.T) {
				setAllVars(t)
				t.Setenv("ANTHROPIC_API_KEY", "")
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			err := checkEnv(requiredVars)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	setAllVars(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")

	cfg, err := LoadConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.AnthropicModel)
	assert.Equal(t, "value-for-RAINDROP_TOKEN", cfg.RaindropToken)
}

func TestLoadConfig_MissingVariableFails(t *testing.T) {
	setAllVars(t)
	t.Setenv("KEYWORD_API_URL", "")

	cfg, err := LoadConfig("nonexistent.env")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "KEYWORD_API_URL")
}
