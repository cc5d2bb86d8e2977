package envfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/sandevgo/ragstart/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.BootstrapConfig {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "backend"), 0o755))
	return &config.BootstrapConfig{Root: root, BackendDir: "backend"}
}

func TestSetup_CreatesDefault(t *testing.T) {
	cfg := newTestConfig(t)

	res, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, CreatedDefault, res.Outcome)
	assert.False(t, res.KeyConfigured)

	vars, err := godotenv.Read(cfg.GetEnvFilePath())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"OPENAI_API_KEY": Placeholder,
		"PORT":           "3001",
		"NODE_ENV":       "development",
		"FRONTEND_URL":   "http://localhost:5173",
	}, vars)
}

func TestSetup_CopiesExample(t *testing.T) {
	cfg := newTestConfig(t)
	example := "OPENAI_API_KEY=sk-from-example\nPORT=4000\n"
	require.NoError(t, os.WriteFile(cfg.GetEnvExamplePath(), []byte(example), 0o644))

	res, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, CopiedExample, res.Outcome)
	assert.True(t, res.KeyConfigured)

	got, err := os.ReadFile(cfg.GetEnvFilePath())
	require.NoError(t, err)
	assert.Equal(t, example, string(got))
}

func TestSetup_KeepsExisting(t *testing.T) {
	cfg := newTestConfig(t)
	existing := "# mine\nOPENAI_API_KEY=sk-live\n"
	require.NoError(t, os.WriteFile(cfg.GetEnvFilePath(), []byte(existing), 0o600))
	require.NoError(t, os.WriteFile(cfg.GetEnvExamplePath(), []byte("OPENAI_API_KEY=other\n"), 0o644))

	res, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, Existing, res.Outcome)
	assert.True(t, res.KeyConfigured)

	got, err := os.ReadFile(cfg.GetEnvFilePath())
	require.NoError(t, err)
	assert.Equal(t, existing, string(got))
}

func TestSetup_ExistingWithPlaceholder(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, os.WriteFile(cfg.GetEnvFilePath(), []byte("OPENAI_API_KEY="+Placeholder+"\n"), 0o600))

	res, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, res.KeyConfigured)
}

func TestSetup_BackendMissing(t *testing.T) {
	cfg := &config.BootstrapConfig{Root: t.TempDir(), BackendDir: "backend"}

	_, err := Setup(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrBackendNotFound)
}

func TestSetKey(t *testing.T) {
	cfg := newTestConfig(t)
	_, err := Setup(context.Background(), cfg)
	require.NoError(t, err)

	require.NoError(t, SetKey(cfg.GetEnvFilePath(), "sk-new"))

	vars, err := godotenv.Read(cfg.GetEnvFilePath())
	require.NoError(t, err)
	assert.Equal(t, "sk-new", vars[APIKeyVar])
	assert.Equal(t, "3001", vars["PORT"])

	ok, err := KeyConfigured(cfg.GetEnvFilePath())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetup_UnreadableEnvFileKeepsResult(t *testing.T) {
	cfg := newTestConfig(t)
	// a directory passes the existence check but cannot be read as a file
	require.NoError(t, os.MkdirAll(cfg.GetEnvFilePath(), 0o755))

	res, err := Setup(context.Background(), cfg)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, cfg.GetEnvFilePath(), res.Path)
	assert.Equal(t, Existing, res.Outcome)
	assert.False(t, res.KeyConfigured)
}
