package application

import (
	"sync"

	"github.com/valemcp/valemcp/internal/domain"
)

// InstallCache memoizes the result of the external tool's version query so
// that repeated capability calls do not re-launch the process. It is owned
// by whoever wires the services together and injected where needed.
type InstallCache struct {
	runner domain.ToolRunner

	mu      sync.Mutex
	checked bool
	status  domain.InstallationStatus
}

// NewInstallCache creates an empty cache backed by the given runner.
func NewInstallCache(runner domain.ToolRunner) *InstallCache {
	return &InstallCache{runner: runner}
}

// Probe returns the cached installation status, populating it on first use.
// The probe is idempotent, so a redundant first call at worst launches the
// version query twice and converges on the same value.
func (c *InstallCache) Probe() domain.InstallationStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.checked {
		return c.status
	}

	version, err := c.runner.Version()
	if err != nil {
		c.status = domain.InstallationStatus{Installed: false, Error: err.Error()}
	} else {
		c.status = domain.InstallationStatus{Installed: true, Version: version}
	}
	c.checked = true
	return c.status
}

// Invalidate clears the cached status so the next Probe re-runs the query.
func (c *InstallCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checked = false
	c.status = domain.InstallationStatus{}
}
