package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	leaguemock "github.com/riskibarqy/football-data-api/internal/mocks/domain/league"
	matchmock "github.com/riskibarqy/football-data-api/internal/mocks/domain/match"
)

func TestLeagueService_ListLeagues_TrimsCountryUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-456")
	leagueRepo := leaguemock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	expected := []league.League{
		{ID: "brasileirao", Name: "Brasileirão Série A", Country: "brazil"},
		{ID: "carioca", Name: "Campeonato Carioca", Country: "brazil"},
	}
	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), league.Filter{Country: "brazil"}).
		Return(expected, nil).
		Once()

	got, err := NewLeagueService(leagueRepo, matchRepo).ListLeagues(ctx, "  brazil ")
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != len(expected) || got[1].ID != "carioca" {
		t.Fatalf("unexpected leagues: %+v", got)
	}
}

func TestLeagueService_ListSeasonsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewLeagueService(leagueRepo, matchRepo)

	matchRepo.
		On("ListSeasons", mock.Anything, "la_liga").
		Return([]string{"2024-2025", "2023-2024"}, nil).
		Once()

	got, err := service.ListSeasons(ctx, "la_liga")
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(got) != 2 || got[0] != "2024-2025" {
		t.Fatalf("unexpected seasons: %+v", got)
	}

	if _, err := service.ListSeasons(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeagueService_ListLeagues_PropagatesDependencyError(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.
		On("List", mock.Anything, league.Filter{}).
		Return(nil, ErrDependencyUnavailable).
		Once()

	_, err := NewLeagueService(leagueRepo, matchmock.NewRepository(t)).ListLeagues(context.Background(), "")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
