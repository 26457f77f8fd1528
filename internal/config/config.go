package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"debug"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"default-secret-key-change-me"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"interntrack"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"interntrack"`
	DBName     string `env:"DB_NAME" envDefault:"interntrack"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"InternTrack <no-reply@interntrack.app>"`

	// AppURL is the base URL of the web client, used for links in emails.
	AppURL string `env:"APP_URL" envDefault:"http://localhost:5173"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return &cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
