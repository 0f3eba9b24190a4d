package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded once in main and handed to constructors; nothing else in
// the codebase reads the environment.
type Config struct {
	Port        string        `envconfig:"PORT" default:"8080"`
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	BcryptCost  int           `envconfig:"BCRYPT_COST" default:"10"`

	// External email reputation check at registration (off by default).
	UseEmailReputation bool `envconfig:"USE_EMAIL_REPUTATION" default:"false"`
	// Address report notifications are mailed to; empty disables them.
	ReportNotifyEmail string `envconfig:"REPORT_NOTIFY_EMAIL"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
