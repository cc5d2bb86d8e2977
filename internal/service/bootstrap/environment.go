package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sandevgo/ragstart/internal/config"
	"github.com/sandevgo/ragstart/pkg/log"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(ctx context.Context, path string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", path).Msg("loaded .env file")
	return nil
}

// MissingVars parses target (a struct with env tags) against environ and
// returns the names of every required variable that is unset or empty.
// It never stops at the first one. Errors other than missing variables
// (e.g. a malformed int) are returned as-is.
func MissingVars(target any, environ map[string]string) ([]string, error) {
	err := env.ParseWithOptions(target, env.Options{Environment: environ})
	if err == nil {
		return nil, nil
	}

	errs := []error{err}
	var agg env.AggregateError
	if errors.As(err, &agg) {
		errs = agg.Errors
	}

	var missing []string
	for _, e := range errs {
		var notSet env.VarIsNotSetError
		var empty env.EmptyVarError
		switch {
		case errors.As(e, &notSet):
			missing = append(missing, notSet.Key)
		case errors.As(e, &empty):
			missing = append(missing, empty.Key)
		default:
			return nil, e
		}
	}
	return missing, nil
}

// ValidateEnvironment checks every variable required by target and reports
// all missing ones together. Variables still holding a template placeholder
// count as missing.
func (b *Bootstrapper) ValidateEnvironment(ctx context.Context, target any) error {
	if err := LoadEnvFile(ctx, b.cfg.GetEnvFilePath()); err != nil {
		return fmt.Errorf("load %s: %w", b.cfg.GetEnvFilePath(), err)
	}

	environ := env.ToMap(b.environ())
	for k, v := range environ {
		if config.IsPlaceholder(v) {
			environ[k] = ""
		}
	}

	missing, err := MissingVars(target, environ)
	if err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if len(missing) > 0 {
		b.status.Fail("Missing required environment variables:")
		for _, name := range missing {
			b.status.Item("%s", name)
		}
		b.status.Plain("")
		b.status.Plain("Please set these variables in your environment or %s", b.cfg.GetEnvFilePath())
		b.status.Plain("Example: export %s='your-value-here'", missing[0])
		return &MissingConfigError{Vars: missing}
	}

	b.status.Ok("Required environment variables found")
	return nil
}
