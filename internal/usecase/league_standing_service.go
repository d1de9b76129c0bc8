package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-data-api/internal/domain/leaguestanding"
)

type LeagueStandingService struct {
	standingRepo leaguestanding.Repository
}

func NewLeagueStandingService(standingRepo leaguestanding.Repository) *LeagueStandingService {
	return &LeagueStandingService{standingRepo: standingRepo}
}

// ListStandings reports ErrNotFound for a league season without a table.
func (s *LeagueStandingService) ListStandings(ctx context.Context, leagueID, season string) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.ListStandings")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	season = strings.TrimSpace(season)
	if leagueID == "" || season == "" {
		return nil, fmt.Errorf("%w: league id and season are required", ErrInvalidInput)
	}

	items, err := s.standingRepo.ListByLeagueSeason(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("list league standings: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: standings league=%s season=%s", ErrNotFound, leagueID, season)
	}

	return items, nil
}
