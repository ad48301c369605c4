package config

import (
	"os"
	"path/filepath"

	"github.com/valemcp/valemcp/internal/logging"
)

// conventionalConfigName is vale's default configuration filename.
const conventionalConfigName = ".vale.ini"

// Resolver implements domain.ConfigResolver. It decides which configuration
// file path, if any, is passed to vale.
type Resolver struct {
	// override is the process-wide config path sourced at startup
	// (environment or server config file).
	override string
}

// NewResolver creates a Resolver with the given process-wide override path
// (may be empty).
func NewResolver(override string) *Resolver {
	return &Resolver{override: override}
}

// Resolve applies the priority order: explicit per-call path, then the
// process-wide override if it points at a readable file, then .vale.ini in
// the working directory, then none. Relative paths resolve against the
// working directory. Returning "" lets vale run its own upward discovery
// from the target file's directory.
func (r *Resolver) Resolve(explicit string) string {
	if explicit != "" {
		return absolute(explicit)
	}

	if r.override != "" {
		p := absolute(r.override)
		if readable(p) {
			return p
		}
		logging.Warn("configured vale config file is not readable, ignoring", "path", r.override)
	}

	if readable(conventionalConfigName) {
		return absolute(conventionalConfigName)
	}
	return ""
}

// readable is a non-throwing existence+permission probe. Any failure means
// "absent", never a fatal error.
func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
