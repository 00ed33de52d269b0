package config

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/docnova/go-docnova-client/docnova/api"
	"github.com/docnova/go-docnova-client/docnova/i18n"
	"github.com/docnova/go-docnova-client/docnova/util"
)

var logger = logrus.WithField("component", "docnova.config")

// DefaultCompanyID is the company the viewer is scoped to.
const DefaultCompanyID = "01c880ca-46b5-4699-a477-616b84770071"

// AppBaseURL is the browser-facing application, used for share links.
const AppBaseURL = "https://app.docnova.ai"

type Config struct {
	Environment api.Environment
	CompanyID   uuid.UUID
	Locale      i18n.Locale
	SessionFile string

	// login fallbacks for the CLI, flags win over these
	Email    string
	Password string
}

// Load reads configuration from the environment, with .env support. Only the
// company id can actually fail to parse, everything else has a default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debugf("no .env loaded: %v", err)
	}

	cfg := &Config{
		Environment: api.Dev,
		Locale:      i18n.ParseLocale(util.GetEnv("DOCNOVA_LOCALE", string(i18n.Default))),
		Email:       util.GetEnv("DOCNOVA_EMAIL", ""),
		Password:    util.GetEnv("DOCNOVA_PASSWORD", ""),
	}

	if v, ok := os.LookupEnv("DOCNOVA_ENV"); ok {
		if err := cfg.Environment.UnmarshalText([]byte(v)); err != nil {
			return nil, err
		}
	}

	companyID, err := uuid.Parse(util.GetEnv("DOCNOVA_COMPANY_ID", DefaultCompanyID))
	if err != nil {
		return nil, errors.Wrap(err, "DOCNOVA_COMPANY_ID")
	}
	cfg.CompanyID = companyID

	cfg.SessionFile = util.GetEnv("DOCNOVA_SESSION_FILE", defaultSessionFile())

	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return cfg, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docnova-session.json"
	}
	return filepath.Join(home, ".docnova", "session.json")
}
