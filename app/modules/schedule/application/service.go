package scheduleservice

import (
	"context"
	"log/slog"

	scheduledb "github.com/dcb-athletics/sportsite/app/modules/schedule/infrastructure/repositories"
)

// ScheduleService serves games and events reads.
type ScheduleService struct {
	repo   scheduledb.Repository
	logger *slog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(repo scheduledb.Repository, logger *slog.Logger) *ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleService{repo: repo, logger: logger}
}

// HomePayload is the landing page data set.
type HomePayload struct {
	Events    []*scheduledb.Event
	Results   []*scheduledb.Game
	Upcomings []*scheduledb.Game
}

// Home returns the latest events, results and upcoming fixtures.
func (s *ScheduleService) Home(ctx context.Context) (*HomePayload, error) {
	events, err := s.repo.LatestEvents(ctx, nil, 4)
	if err != nil {
		return nil, err
	}
	results, err := s.repo.LatestResults(ctx, nil, 4)
	if err != nil {
		return nil, err
	}
	upcomings, err := s.repo.UpcomingGames(ctx, nil, 4)
	if err != nil {
		return nil, err
	}
	return &HomePayload{Events: events, Results: results, Upcomings: upcomings}, nil
}

// TeamResults returns a window of finished games for one team.
func (s *ScheduleService) TeamResults(ctx context.Context, teamName string, offset, limit int) ([]*scheduledb.Game, error) {
	if limit <= 0 || limit > 50 {
		limit = 4
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ResultsByTeamName(ctx, nil, teamName, offset, limit)
}

// TeamUpcomings returns a window of unfinished games for one team.
func (s *ScheduleService) TeamUpcomings(ctx context.Context, teamName string, offset, limit int) ([]*scheduledb.Game, error) {
	if limit <= 0 || limit > 50 {
		limit = 4
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.UpcomingByTeamName(ctx, nil, teamName, offset, limit)
}

// TeamSchedule returns the recent results and next fixtures shown on a
// roster page.
func (s *ScheduleService) TeamSchedule(ctx context.Context, teamName string) (results, upcomings []*scheduledb.Game, err error) {
	results, err = s.repo.ResultsByTeamName(ctx, nil, teamName, 0, 2)
	if err != nil {
		return nil, nil, err
	}
	upcomings, err = s.repo.UpcomingByTeamName(ctx, nil, teamName, 0, 2)
	if err != nil {
		return nil, nil, err
	}
	return results, upcomings, nil
}
