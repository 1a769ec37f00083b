package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// TransportConfig selects how the server speaks MCP: "stdio" for local
// clients or "http" for the streamable HTTP transport.
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// AuthConfig holds the optional bearer token checked in HTTP mode. An empty
// token disables auth; this is a single-user local tool.
type AuthConfig struct {
	Token string `yaml:"token"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		DB: DBConfig{
			Path: "planner.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("PLANNER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PLANNER_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PLANNER_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PLANNER_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("PLANNER_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if dbPath := os.Getenv("PLANNER_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("PLANNER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if token := os.Getenv("PLANNER_AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}

	if cfg.Transport.Mode != "stdio" && cfg.Transport.Mode != "http" {
		return Config{}, fmt.Errorf("invalid transport mode %q", cfg.Transport.Mode)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
