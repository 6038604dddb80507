package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Artifact ArtifactConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type ArtifactConfig struct {
	Path string
	// Codecs in the order they are tried.
	Codecs []string
	// Required makes the server exit at startup when the artifact file is absent.
	Required bool
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ARTIFACT_PATH", "pipeline.joblib")
	v.SetDefault("ARTIFACT_CODECS", "msgpack,json")
	v.SetDefault("ARTIFACT_REQUIRED", true)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Artifact: ArtifactConfig{
			Path:     v.GetString("ARTIFACT_PATH"),
			Codecs:   splitList(v.GetString("ARTIFACT_CODECS")),
			Required: v.GetBool("ARTIFACT_REQUIRED"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
