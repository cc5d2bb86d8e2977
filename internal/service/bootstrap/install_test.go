package bootstrap

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallDependencies(t *testing.T) {
	cfg := newTestConfig(t)
	writeManifest(t, cfg)
	runner := &fakeRunner{}
	b, out := newTestBootstrapper(cfg, runner)

	require.NoError(t, b.InstallDependencies(context.Background()))

	runs := runner.getRuns()
	require.Len(t, runs, 1)
	assert.Equal(t, "python3", runs[0].Name)
	assert.Equal(t, []string{"-m", "pip", "install", "-r", cfg.GetManifestPath()}, runs[0].Args)
	assert.Contains(t, out.String(), "Dependencies installed successfully")
}

func TestInstallDependencies_ManifestNotFound(t *testing.T) {
	runner := &fakeRunner{}
	b, out := newTestBootstrapper(newTestConfig(t), runner)

	err := b.InstallDependencies(context.Background())
	assert.ErrorIs(t, err, ErrManifestNotFound)
	assert.Empty(t, runner.getRuns(), "installer must not be spawned")
	assert.Contains(t, out.String(), "requirements.txt not found")
}

func TestInstallDependencies_ManifestIsDirectory(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, os.MkdirAll(cfg.GetManifestPath(), 0o755))
	runner := &fakeRunner{}
	b, _ := newTestBootstrapper(cfg, runner)

	assert.ErrorIs(t, b.InstallDependencies(context.Background()), ErrManifestNotFound)
	assert.Empty(t, runner.getRuns())
}

func TestInstallDependencies_InstallerFails(t *testing.T) {
	cfg := newTestConfig(t)
	writeManifest(t, cfg)
	runner := &fakeRunner{runFunc: func(ctx context.Context, c Command) error {
		return &ExitError{Code: 2}
	}}
	b, out := newTestBootstrapper(cfg, runner)

	err := b.InstallDependencies(context.Background())
	require.ErrorIs(t, err, ErrDependencyInstall)
	code, ok := ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "exited with status 2")
}

func TestInstallDependencies_Interrupted(t *testing.T) {
	cfg := newTestConfig(t)
	writeManifest(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	runner := &fakeRunner{runFunc: func(ctx context.Context, c Command) error {
		cancel()
		return errors.New("signal: interrupt")
	}}
	b, out := newTestBootstrapper(cfg, runner)

	err := b.InstallDependencies(ctx)
	assert.ErrorIs(t, err, ErrDependencyInstall)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "interrupted")
}
