package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/importer"
)

type importService struct {
	groups   PileGroupService
	observer UseCaseObserver
}

func NewImportService(groups PileGroupService, observers ...UseCaseObserver) ImportService {
	obs := UseCaseObserver(NoopUseCaseObserver{})
	for _, o := range observers {
		if o != nil {
			obs = o
			break
		}
	}
	return &importService{groups: groups, observer: obs}
}

func (s *importService) ImportFile(ctx context.Context, path string) (result *ImportResult, err error) {
	defer observe(ctx, s.observer, "import-file", time.Now(), map[string]any{"path": path}, &err)

	file, err := importer.LoadGroupFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportGroupFile(ctx, file)
}

func (s *importService) ImportGroupFile(ctx context.Context, file *importer.GroupFile) (*ImportResult, error) {
	if err := importer.JoinErrors(importer.ValidateGroupFile(file)); err != nil {
		return nil, err
	}

	created, err := s.groups.AddAll(ctx, importer.Convert(file))
	if err != nil {
		return nil, fmt.Errorf("importing pile groups: %w", err)
	}
	return &ImportResult{Groups: created, Totals: calc.Sum(created)}, nil
}

func (s *importService) Export(ctx context.Context, format importer.Format) ([]byte, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}
	return importer.Encode(importer.FromGroups(groups), format)
}
