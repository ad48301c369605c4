package application

import (
	"path/filepath"

	"github.com/valemcp/valemcp/internal/domain"
)

// CheckService orchestrates the check pipeline:
// resolve config -> run vale -> normalize output -> render report.
type CheckService struct {
	runner   domain.ToolRunner
	resolver domain.ConfigResolver
}

func NewCheckService(runner domain.ToolRunner, resolver domain.ConfigResolver) *CheckService {
	return &CheckService{runner: runner, resolver: resolver}
}

// CheckFile lints one file and returns the normalized result. configPath,
// when non-empty, overrides the resolver's discovery for this call.
func (s *CheckService) CheckFile(path, configPath string) (*domain.CheckResult, error) {
	cfg := s.resolver.Resolve(configPath)

	raw, err := s.runner.Check(path, cfg)
	if err != nil {
		return nil, err
	}

	issues, err := domain.ParseIssues(raw)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	sum := domain.Summarize(issues)
	return &domain.CheckResult{
		File:    abs,
		Issues:  issues,
		Summary: sum,
		Report:  domain.RenderReport(issues, sum, abs),
	}, nil
}
