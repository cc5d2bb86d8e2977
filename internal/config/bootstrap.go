package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// MinPythonMajor and MinPythonMinor form the lowest interpreter version the
// RAG service supports.
const (
	MinPythonMajor = 3
	MinPythonMinor = 8
)

// workDirs are created under the backend directory before the service starts.
// Order matters only for readability: MkdirAll creates missing parents anyway.
var workDirs = []string{
	"uploads",
	"chroma_db",
	filepath.Join("uploads", "temp"),
}

type BootstrapConfig struct {
	Root       string `env:"RAGSTART_ROOT" envDefault:"."`
	Python     string `env:"RAGSTART_PYTHON" envDefault:"python3"`
	BackendDir string `env:"RAGSTART_BACKEND_DIR" envDefault:"backend"`

	// Both relative to the backend directory
	Manifest     string `env:"RAGSTART_MANIFEST" envDefault:"requirements.txt"`
	ServiceEntry string `env:"RAGSTART_SERVICE" envDefault:"services/ragService.py"`

	SkipInstall bool `env:"RAGSTART_SKIP_INSTALL" envDefault:"false"`
}

func ParseBootstrapConfig() (*BootstrapConfig, error) {
	c := &BootstrapConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c BootstrapConfig) GetPython() string {
	return c.Python
}

func (c BootstrapConfig) GetBackendPath() string {
	return filepath.Join(c.Root, c.BackendDir)
}

func (c BootstrapConfig) GetManifestPath() string {
	return filepath.Join(c.GetBackendPath(), c.Manifest)
}

// GetServiceEntry is relative to GetBackendPath, which is where the service
// process runs.
func (c BootstrapConfig) GetServiceEntry() string {
	return c.ServiceEntry
}

func (c BootstrapConfig) GetEnvFilePath() string {
	return filepath.Join(c.GetBackendPath(), ".env")
}

func (c BootstrapConfig) GetEnvExamplePath() string {
	return filepath.Join(c.GetBackendPath(), "env.example")
}

func (c BootstrapConfig) GetWorkDirs() []string {
	dirs := make([]string, 0, len(workDirs))
	for _, d := range workDirs {
		dirs = append(dirs, filepath.Join(c.GetBackendPath(), d))
	}
	return dirs
}

func (c BootstrapConfig) ShouldInstall() bool {
	return !c.SkipInstall
}
