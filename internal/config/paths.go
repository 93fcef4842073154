package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands a leading ~ to the home directory.
// It supports ~/ or ~\ prefixes; ~user is left alone.
func expandPath(p string) string {
	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return p
	}
	if strings.HasPrefix(p, "~/") || (runtime.GOOS == "windows" && strings.HasPrefix(p, "~\\")) {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, p[2:])
	}
	return p
}
