package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Provider string         `mapstructure:"provider"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Compat   CompatConfig   `mapstructure:"compat"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// CompatConfig points at any OpenAI-compatible completion endpoint (a
// self-hosted gateway, a serverless function wrapping a model API, ...).
type CompatConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

type JWTConfig struct {
	SecretKey   string `mapstructure:"secret_key"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

func LoadConfig(configPath string, envPath string) (*Config, error) {
	// Load .env first so viper's AutomaticEnv can see it; a missing file
	// is fine (production sets real environment variables).
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.JWT.ExpiryHours <= 0 {
		config.JWT.ExpiryHours = 24
	}

	return &config, nil
}
