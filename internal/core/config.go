package core

type BootstrapConfig interface {
	GetPython() string
	GetBackendPath() string
	GetManifestPath() string
	GetServiceEntry() string
	GetEnvFilePath() string
	GetWorkDirs() []string
	ShouldInstall() bool
}

type EnvFileConfig interface {
	GetBackendPath() string
	GetEnvFilePath() string
	GetEnvExamplePath() string
}
