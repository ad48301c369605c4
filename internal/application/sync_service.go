package application

import (
	"github.com/valemcp/valemcp/internal/domain"
)

// SyncService fetches vale's external style packages.
type SyncService struct {
	runner   domain.ToolRunner
	resolver domain.ConfigResolver
}

func NewSyncService(runner domain.ToolRunner, resolver domain.ConfigResolver) *SyncService {
	return &SyncService{runner: runner, resolver: resolver}
}

// Sync runs vale sync against the resolved configuration. It never returns
// an error; failures are carried in the result record.
func (s *SyncService) Sync(configPath string) domain.SyncResult {
	cfg := s.resolver.Resolve(configPath)

	out, err := s.runner.Sync(cfg)
	if err != nil {
		return domain.SyncResult{
			Success: false,
			Message: "Vale sync failed.",
			Error:   err.Error(),
			Output:  out,
		}
	}
	return domain.SyncResult{
		Success: true,
		Message: "Vale styles synced successfully.",
		Output:  out,
	}
}
