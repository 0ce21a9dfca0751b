package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"disaster-alert/internal/mailer"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Store
	MongoURL      string `envconfig:"MONGODB_URL" required:"true"`
	MongoDatabase string `envconfig:"MONGODB_DATABASE" default:"DisasterAlertSystem"`
	// Shared secret every request must carry as "hash"
	Hash string `envconfig:"HASH" required:"true"`
	// Email
	EmailProvider  string        `envconfig:"EMAIL_PROVIDER" default:"courier"`
	CourierToken   string        `envconfig:"COURIER_API"`
	CourierBaseURL string        `envconfig:"COURIER_BASE_URL" default:"https://api.courier.com"`
	EmailTimeout   time.Duration `envconfig:"EMAIL_TIMEOUT" default:"10s"`
	SMTPHost       string        `envconfig:"SMTP_HOST"`
	SMTPPort       int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername   string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword   string        `envconfig:"SMTP_PASSWORD"`
	SMTPFrom       string        `envconfig:"SMTP_FROM"`
	// HTTP
	HTTPAddr         string        `envconfig:"HTTP_ADDR" default:":5000"`
	GinMode          string        `envconfig:"GIN_MODE" default:"release"`
	StrictHTTPStatus bool          `envconfig:"STRICT_HTTP_STATUS" default:"false"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and then decodes the environment. A missing .env file
// is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Hash == "" {
		return errors.New("HASH cannot be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return c.Mailer().Validate()
}

func (c Config) Mailer() mailer.Config {
	return mailer.Config{
		Provider:       c.EmailProvider,
		CourierToken:   c.CourierToken,
		CourierBaseURL: c.CourierBaseURL,
		Timeout:        c.EmailTimeout,
		SMTP: mailer.SMTPConfig{
			Host:     c.SMTPHost,
			Port:     c.SMTPPort,
			Username: c.SMTPUsername,
			Password: c.SMTPPassword,
			From:     c.SMTPFrom,
		},
	}
}
