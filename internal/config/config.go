package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode          string
	ServerPort       string
	RaindropToken    string
	AnthropicAPIKey  string
	AnthropicModel   string
	KeywordAPIURL    string
	KeywordAPIKey    string
	TranscriptAPIURL string
	TranscriptAPIKey string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}
	return nil
}

func validateEnv() error {
	return checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
		"RAINDROP_TOKEN",
		"ANTHROPIC_API_KEY",
		"ANTHROPIC_MODEL",
		"KEYWORD_API_URL",
		"KEYWORD_API_KEY",
		"TRANSCRIPT_API_URL",
		"TRANSCRIPT_API_KEY",
	})
}

func LoadConfig(envPath string) (*Config, error) {
	// A missing .env file is fine when the variables come from the
	// environment itself.
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	if err := validateEnv(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return &Config{
		LogMode:          os.Getenv("LOG_MODE"),
		ServerPort:       os.Getenv("SERVER_PORT"),
		RaindropToken:    os.Getenv("RAINDROP_TOKEN"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   os.Getenv("ANTHROPIC_MODEL"),
		KeywordAPIURL:    os.Getenv("KEYWORD_API_URL"),
		KeywordAPIKey:    os.Getenv("KEYWORD_API_KEY"),
		TranscriptAPIURL: os.Getenv("TRANSCRIPT_API_URL"),
		TranscriptAPIKey: os.Getenv("TRANSCRIPT_API_KEY"),
	}, nil
}
