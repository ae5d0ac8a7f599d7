package legendsservice

import (
	"context"
	"log/slog"

	legendsdb "github.com/dcb-athletics/sportsite/app/modules/legends/infrastructure/repositories"
)

// LegendsService serves legend listings.
type LegendsService struct {
	repo   legendsdb.Repository
	logger *slog.Logger
}

// NewLegendsService creates a new LegendsService.
func NewLegendsService(repo legendsdb.Repository, logger *slog.Logger) *LegendsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LegendsService{repo: repo, logger: logger}
}

// LegendsPage is one listing window plus the total.
type LegendsPage struct {
	Legends []*legendsdb.Legend
	Total   int
}

// List returns a window of legends. Limit is clamped to 1..48 with a
// default of 12.
func (s *LegendsService) List(ctx context.Context, offset, limit int) (*LegendsPage, error) {
	if limit <= 0 {
		limit = 12
	}
	if limit > 48 {
		limit = 48
	}
	if offset < 0 {
		offset = 0
	}

	legends, err := s.repo.List(ctx, nil, offset, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &LegendsPage{Legends: legends, Total: total}, nil
}
