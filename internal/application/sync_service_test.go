package application_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valemcp/valemcp/internal/application"
)

func TestSyncService_Success(t *testing.T) {
	runner := &fakeRunner{syncOut: "Downloading packages...\nDone."}
	svc := application.NewSyncService(runner, &passthroughResolver{})

	result := svc.Sync("")

	assert.True(t, result.Success)
	assert.Contains(t, result.Output, "Done.")
	assert.Empty(t, result.Error)
}

func TestSyncService_FailureIsARecordNotAnError(t *testing.T) {
	runner := &fakeRunner{syncOut: "partial output", syncErr: errors.New("vale sync: exit status 1")}
	svc := application.NewSyncService(runner, &passthroughResolver{})

	result := svc.Sync("")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "exit status 1")
	assert.Equal(t, "partial output", result.Output)
}

func TestSyncService_ConfigPriority(t *testing.T) {
	runner := &fakeRunner{}
	svc := application.NewSyncService(runner, &passthroughResolver{fallback: "/etc/fallback.ini"})

	svc.Sync("/tmp/explicit.ini")
	assert.Equal(t, "/tmp/explicit.ini", runner.lastSyncConfig)

	svc.Sync("")
	assert.Equal(t, "/etc/fallback.ini", runner.lastSyncConfig)
}
