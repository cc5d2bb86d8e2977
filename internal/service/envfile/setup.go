package envfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/ragstart/internal/config"
	"github.com/sandevgo/ragstart/internal/core"
	"github.com/sandevgo/ragstart/pkg/env"
	"github.com/sandevgo/ragstart/pkg/log"
)

var ErrBackendNotFound = errors.New("backend directory not found")

type Outcome int

const (
	// Existing means a .env was already there and was left untouched.
	Existing Outcome = iota
	CopiedExample
	CreatedDefault
)

func (o Outcome) String() string {
	switch o {
	case Existing:
		return "existing"
	case CopiedExample:
		return "copied-example"
	case CreatedDefault:
		return "created-default"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type Result struct {
	Path          string
	Outcome       Outcome
	KeyConfigured bool
}

// Setup makes sure the backend has a .env file. An existing file is never
// overwritten; otherwise env.example is copied, or a default template is
// generated when there is no example either. A non-nil Result may accompany
// an error when the file is in place but could not be read back.
func Setup(ctx context.Context, cfg core.EnvFileConfig) (*Result, error) {
	logger := log.FromCtx(ctx)

	if info, err := os.Stat(cfg.GetBackendPath()); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotFound, cfg.GetBackendPath())
	}

	path := cfg.GetEnvFilePath()
	res := &Result{Path: path}

	switch _, err := os.Stat(path); {
	case err == nil:
		res.Outcome = Existing
	case !os.IsNotExist(err):
		return nil, err
	default:
		copied, err := copyIfExists(cfg.GetEnvExamplePath(), path)
		if err != nil {
			return nil, fmt.Errorf("copy %s: %w", cfg.GetEnvExamplePath(), err)
		}
		if copied {
			res.Outcome = CopiedExample
		} else {
			if err := writeDefault(path); err != nil {
				return nil, fmt.Errorf("write %s: %w", path, err)
			}
			res.Outcome = CreatedDefault
		}
	}
	logger.Debug().Str("path", path).Stringer("outcome", res.Outcome).Msg("env file ready")

	// res is returned with the error: the file exists by now and the
	// caller still needs its path.
	configured, err := KeyConfigured(path)
	if err != nil {
		return res, err
	}
	res.KeyConfigured = configured
	return res, nil
}

// KeyConfigured reports whether the file sets the API key to something other
// than the placeholder.
func KeyConfigured(path string) (bool, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	key := vars[APIKeyVar]
	return key != "" && !config.IsPlaceholder(key), nil
}

// SetKey stores the API key in the .env file, keeping other variables.
// Comments are not preserved.
func SetKey(path, key string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	vars[APIKeyVar] = key
	return godotenv.Write(vars, path)
}

func writeDefault(path string) error {
	content, err := env.MarshalEnv(&Template{})
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o600)
}

func copyIfExists(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, err
	}
	return true, out.Close()
}
