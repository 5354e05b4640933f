// Package config loads the run configuration from an explicit environment
// map. Loading is all-or-nothing: either every required name is bound or the
// result is a Failure listing the absent ones.
//
// Configuration is parsed with github.com/caarlos0/env. Variables:
//   - NODE_ENV: runtime mode, logged only (required)
//   - NOTION_API_KEY: integration token (required)
//   - NOTION_PAGE_ID: page the new database is created under (required)
//   - NOTION_DATABASE_TITLE: title of the created database
//   - NOTION_TIMEOUT: HTTP timeout for each Notion call
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ib-77/bevy-notion/internal/failure"
	"github.com/ib-77/bevy-notion/pkg/rop"
)

const DefaultDatabaseTitle = "GDSC Japan Events"

type Config struct {
	Mode     string `env:"NODE_ENV,required"`
	APIKey   string `env:"NOTION_API_KEY,required"`
	ParentID string `env:"NOTION_PAGE_ID,required"`

	DatabaseTitle string        `env:"NOTION_DATABASE_TITLE" envDefault:"GDSC Japan Events"`
	Timeout       time.Duration `env:"NOTION_TIMEOUT" envDefault:"30s"`
}

// Load parses environ into a Config. A bound but empty value counts as
// present and required values are kept byte for byte. A nil environ is
// treated as empty; the process environment is never consulted.
func Load(environ map[string]string) rop.Result[Config] {
	if environ == nil {
		environ = map[string]string{}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		if missing := missingKeys(err); len(missing) > 0 {
			return rop.Fail[Config](&failure.ConfigMissing{Fields: missing})
		}
		return rop.Fail[Config](fmt.Errorf("parse config: %w", err))
	}

	cfg.sanitize()
	return rop.Success(cfg)
}

func (c *Config) sanitize() {
	if strings.TrimSpace(c.DatabaseTitle) == "" {
		c.DatabaseTitle = DefaultDatabaseTitle
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

func missingKeys(err error) []string {
	var errs []error
	var agg env.AggregateError
	if errors.As(err, &agg) {
		errs = agg.Errors
	} else {
		errs = []error{err}
	}

	var keys []string
	for _, e := range errs {
		var notSet env.EnvVarIsNotSetError
		if errors.As(e, &notSet) {
			keys = append(keys, notSet.Key)
		}
	}
	return keys
}

// Environ returns the process environment overlaid on the contents of
// envFile. Process variables win. A missing envFile is not an error.
func Environ(envFile string) (map[string]string, error) {
	out := make(map[string]string)

	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil {
			var pathErr *os.PathError
			if !errors.As(err, &pathErr) {
				return FromList(os.Environ()), fmt.Errorf("load %s: %w", envFile, err)
			}
		}
		for k, v := range fileEnv {
			out[k] = v
		}
	}

	for k, v := range FromList(os.Environ()) {
		out[k] = v
	}
	return out, nil
}

// FromList turns KEY=VALUE pairs into a map; later pairs win.
func FromList(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
