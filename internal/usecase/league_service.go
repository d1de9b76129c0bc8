package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	"github.com/riskibarqy/football-data-api/internal/domain/match"
)

type LeagueService struct {
	leagueRepo league.Repository
	matchRepo  match.Repository
}

func NewLeagueService(leagueRepo league.Repository, matchRepo match.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		matchRepo:  matchRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context, country string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx, league.Filter{Country: strings.TrimSpace(country)})
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

// ListSeasons returns the seasons that have at least one stored match.
// An unknown league yields an empty list.
func (s *LeagueService) ListSeasons(ctx context.Context, leagueID string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListSeasons")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	seasons, err := s.matchRepo.ListSeasons(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list seasons league=%s: %w", leagueID, err)
	}

	return seasons, nil
}
