package service

import (
	"context"

	"geotrail/internal/domain"
)

func (s *Service) RecordFix(ctx context.Context, fix domain.Fix) (domain.LocationRecord, error) {
	return s.HistoryService.RecordFix(ctx, fix)
}

func (s *Service) Snapshot() domain.Snapshot {
	return s.HistoryService.Snapshot()
}

func (s *Service) RemoveAt(previousIndex int) error {
	return s.HistoryService.RemoveAt(previousIndex)
}

func (s *Service) ClearPrevious() {
	s.HistoryService.ClearPrevious()
}
