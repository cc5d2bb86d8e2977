package bootstrap

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sandevgo/ragstart/internal/config"
	"github.com/sandevgo/ragstart/pkg/log"
)

var versionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// MinimumVersion is the oldest interpreter the service runs on.
var MinimumVersion = Version{Major: config.MinPythonMajor, Minor: config.MinPythonMinor}

type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less compares version triples component by component.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// ParseVersion extracts the first dotted version from s, e.g. the output of
// `python3 --version` ("Python 3.11.4"). A missing patch component is zero.
func ParseVersion(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("no version found in %q", strings.TrimSpace(s))
	}

	var v Version
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		v.Patch, _ = strconv.Atoi(m[3])
	}
	return v, nil
}

// CheckRuntime runs the configured interpreter and verifies its version is at
// least MinimumVersion. It has no side effects besides that one process.
func (b *Bootstrapper) CheckRuntime(ctx context.Context) (Version, error) {
	python := b.cfg.GetPython()
	log.FromCtx(ctx).Debug().Str("python", python).Msg("checking interpreter version")

	out, err := b.runner.Output(ctx, Command{Name: python, Args: []string{"--version"}})
	if err != nil {
		b.status.Fail("Python %d.%d or higher is required", MinimumVersion.Major, MinimumVersion.Minor)
		b.status.Plain("Could not run %s: %v", python, err)
		return Version{}, fmt.Errorf("%w: %s: %w", ErrUnsupportedRuntime, python, err)
	}

	v, err := ParseVersion(string(out))
	if err != nil {
		b.status.Fail("Python %d.%d or higher is required", MinimumVersion.Major, MinimumVersion.Minor)
		return Version{}, fmt.Errorf("%w: %w", ErrUnsupportedRuntime, err)
	}

	if v.Less(MinimumVersion) {
		b.status.Fail("Python %d.%d or higher is required", MinimumVersion.Major, MinimumVersion.Minor)
		b.status.Plain("Current version: %s", v)
		return v, fmt.Errorf("%w: found %s, need >= %d.%d", ErrUnsupportedRuntime, v, MinimumVersion.Major, MinimumVersion.Minor)
	}

	b.status.Ok("Python version: %s", v)
	return v, nil
}
