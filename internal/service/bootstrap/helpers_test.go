package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sandevgo/ragstart/internal/config"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu sync.Mutex

	version    string
	versionErr error
	runFunc    func(ctx context.Context, c Command) error

	outputs []Command
	runs    []Command
}

func (f *fakeRunner) Output(ctx context.Context, c Command) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs = append(f.outputs, c)
	if f.versionErr != nil {
		return nil, f.versionErr
	}
	return []byte(f.version), nil
}

func (f *fakeRunner) Run(ctx context.Context, c Command) error {
	f.mu.Lock()
	f.runs = append(f.runs, c)
	fn := f.runFunc
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, c)
	}
	return nil
}

func (f *fakeRunner) getRuns() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Command(nil), f.runs...)
}

func newTestConfig(t *testing.T) *config.BootstrapConfig {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "backend"), 0o755))
	return &config.BootstrapConfig{
		Root:         root,
		Python:       "python3",
		BackendDir:   "backend",
		Manifest:     "requirements.txt",
		ServiceEntry: "services/ragService.py",
	}
}

func writeManifest(t *testing.T, cfg *config.BootstrapConfig) {
	t.Helper()
	require.NoError(t, os.WriteFile(cfg.GetManifestPath(), []byte("fastapi\nchromadb\n"), 0o644))
}

func environWith(vars ...string) func() []string {
	return func() []string { return vars }
}

func newTestBootstrapper(cfg *config.BootstrapConfig, r Runner) (*Bootstrapper, *bytes.Buffer) {
	var out bytes.Buffer
	return New(cfg, r, &out).WithEnviron(environWith("OPENAI_API_KEY=sk-test")), &out
}

func assertNoDirs(t *testing.T, cfg *config.BootstrapConfig) {
	t.Helper()
	for _, dir := range cfg.GetWorkDirs() {
		_, err := os.Stat(dir)
		require.Truef(t, os.IsNotExist(err), "expected %s to be absent", dir)
	}
}
