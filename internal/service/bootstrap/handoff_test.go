package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoff(t *testing.T) {
	cfg := newTestConfig(t)
	runner := &fakeRunner{}
	b, out := newTestBootstrapper(cfg, runner)

	require.NoError(t, b.Handoff(context.Background()))

	runs := runner.getRuns()
	require.Len(t, runs, 1)
	assert.Equal(t, Command{
		Name: "python3",
		Args: []string{"services/ragService.py"},
		Dir:  cfg.GetBackendPath(),
	}, runs[0])
	assert.Contains(t, out.String(), "Starting RAG PDF service")
}

func TestHandoff_InterruptIsGraceful(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := &fakeRunner{runFunc: func(ctx context.Context, c Command) error {
		cancel()
		return &ExitError{Code: 130}
	}}
	b, out := newTestBootstrapper(newTestConfig(t), runner)

	assert.NoError(t, b.Handoff(ctx))
	assert.Contains(t, out.String(), "RAG service stopped")
}

func TestHandoff_LaunchFailure(t *testing.T) {
	runner := &fakeRunner{runFunc: func(ctx context.Context, c Command) error {
		return errors.New("exec: \"python3\": executable file not found in $PATH")
	}}
	b, out := newTestBootstrapper(newTestConfig(t), runner)

	err := b.Handoff(context.Background())
	assert.ErrorIs(t, err, ErrServiceLaunch)
	assert.Contains(t, out.String(), "Failed to start service")
}

func TestHandoff_ServiceCrash(t *testing.T) {
	runner := &fakeRunner{runFunc: func(ctx context.Context, c Command) error {
		return &ExitError{Code: 1}
	}}
	b, _ := newTestBootstrapper(newTestConfig(t), runner)

	err := b.Handoff(context.Background())
	require.ErrorIs(t, err, ErrServiceLaunch)
	code, ok := ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 1, code)
}
