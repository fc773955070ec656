// Package where resolves the application's per-user filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/jeremyfitness/fitplayer/constant"
	"github.com/jeremyfitness/fitplayer/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "FITPLAYER_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring FITPLAYER_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the resume-position registry file.
func History() string {
	return filepath.Join(Cache(), "history.json")
}

// Sockets resolves the directory where mpv IPC sockets are created.
func Sockets() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
