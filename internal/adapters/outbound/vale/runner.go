// Package vale shells out to the vale binary. It is the only place in the
// codebase that spawns processes.
package vale

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/valemcp/valemcp/internal/domain"
	"github.com/valemcp/valemcp/internal/logging"
)

// Runner implements domain.ToolRunner by executing the vale binary.
type Runner struct {
	bin string
}

// New creates a Runner for the given binary path or name ("vale" resolves
// via PATH).
func New(bin string) *Runner {
	if bin == "" {
		bin = "vale"
	}
	return &Runner{bin: bin}
}

// Version runs `vale --version` and returns trimmed stdout.
func (r *Runner) Version() (string, error) {
	out, err := exec.Command(r.bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", r.bin, err)
	}
	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", fmt.Errorf("%s --version produced no output", r.bin)
	}
	return version, nil
}

// Sync runs `vale sync` to fetch external style packages. When a config path
// is given the child process runs in that file's directory so relative
// StylesPath entries in the config resolve correctly. Combined stdout+stderr
// is returned either way.
func (r *Runner) Sync(configPath string) (string, error) {
	args := []string{"sync"}
	cmd := exec.Command(r.bin, args...)
	if configPath != "" {
		cmd.Args = append(cmd.Args, "--config="+configPath)
		cmd.Dir = filepath.Dir(configPath)
	}

	logging.Debug("running vale sync", "config", configPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("vale sync: %w", err)
	}
	return string(out), nil
}

// Check lints one file with `vale --output=JSON`.
//
// The --config flag is passed only when the resolver supplied a path;
// otherwise vale searches upward for .vale.ini itself. The child's working
// directory is set to the target file's directory so that upward search
// starts from the file, not from wherever this server happens to run.
//
// Vale exits non-zero whenever it finds issues, so the exit code is not the
// failure signal: only empty stdout is. On empty stdout the captured stderr
// (or the exec error) is returned as a *domain.ExecutionError.
func (r *Runner) Check(filePath, configPath string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", &domain.FileNotFoundError{Path: filePath}
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", &domain.FileNotFoundError{Path: abs}
	}

	args := []string{"--output=JSON"}
	if configPath != "" {
		args = append(args, "--config="+configPath)
	}
	args = append(args, abs)

	cmd := exec.Command(r.bin, args...)
	cmd.Dir = filepath.Dir(abs)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug("running vale check", "file", abs, "config", configPath)
	runErr := cmd.Run()

	if strings.TrimSpace(stdout.String()) == "" {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" && runErr != nil {
			msg = runErr.Error()
		}
		return "", &domain.ExecutionError{Output: msg}
	}
	return stdout.String(), nil
}
