package config

import "os"

func IsDebug() bool {
	return os.Getenv("RAGSTART_DEBUG") == "1"
}
