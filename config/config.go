package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		Port     string `yaml:"port"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	JWT struct {
		Secret        string `yaml:"secret"`
		ExpiryMinutes int    `yaml:"expiry_minutes"`
	} `yaml:"jwt"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Seed struct {
		Dir string `yaml:"dir"` // optional: directory of JSON seed files
	} `yaml:"seed"`
}

// DSN generates the PostgreSQL DSN from database config
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.Port,
		c.Database.SSLMode,
	)
}

// TokenExpiry returns the configured JWT lifetime.
func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryMinutes) * time.Minute
}

// Load reads and parses the YAML configuration file
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"database.host":     c.Database.Host,
		"database.user":     c.Database.User,
		"database.password": c.Database.Password,
		"database.dbname":   c.Database.DBName,
		"database.port":     c.Database.Port,
		"database.sslmode":  c.Database.SSLMode,
		"jwt.secret":        c.JWT.Secret,
	}
	for key, val := range required {
		if val == "" {
			return fmt.Errorf("%s is required in config", key)
		}
	}
	if c.JWT.ExpiryMinutes <= 0 {
		c.JWT.ExpiryMinutes = 60
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}
