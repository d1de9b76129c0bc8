package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/domain/team"
	leaguemock "github.com/riskibarqy/football-data-api/internal/mocks/domain/league"
	matchmock "github.com/riskibarqy/football-data-api/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/football-data-api/internal/mocks/domain/team"
)

func TestSearchService_AllTypesKeepsEmptyGroups(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	teamRepo.On("List", mock.Anything, team.Filter{Search: "Palmeiras", Limit: SearchResultLimit}).
		Return([]team.Team{{ID: 1, Name: "Palmeiras", LeagueID: "brasileirao", Season: "2023"}}, nil).
		Once()
	leagueRepo.On("List", mock.Anything, league.Filter{Name: "Palmeiras", Limit: SearchResultLimit}).
		Return(nil, nil).
		Once()
	matchRepo.On("List", mock.Anything, match.Filter{Team: "Palmeiras", Limit: SearchResultLimit}).
		Return([]match.Match{}, nil).
		Once()

	got, err := NewSearchService(leagueRepo, teamRepo, matchRepo).Search(context.Background(), "Palmeiras", SearchAll)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got.Teams) != 1 {
		t.Fatalf("expected one team, got %+v", got.Teams)
	}
	if got.Leagues == nil || len(got.Leagues) != 0 {
		t.Fatalf("expected empty non-nil leagues, got %#v", got.Leagues)
	}
	if got.Matches == nil || len(got.Matches) != 0 {
		t.Fatalf("expected empty non-nil matches, got %#v", got.Matches)
	}
}

func TestSearchService_SingleTypeOnlyQueriesThatEntity(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	many := make([]league.League, 15)
	leagueRepo.On("List", mock.Anything, league.Filter{Name: "liga", Limit: SearchResultLimit}).Return(many, nil).Once()

	got, err := NewSearchService(leagueRepo, teamRepo, matchRepo).Search(context.Background(), " liga ", SearchLeagues)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got.Leagues) != SearchResultLimit {
		t.Fatalf("expected leagues capped at %d, got %d", SearchResultLimit, len(got.Leagues))
	}
	if got.Teams == nil || got.Matches == nil {
		t.Fatalf("unsearched groups must be empty slices: %#v", got)
	}
}

func TestSearchService_RequiresQuery(t *testing.T) {
	t.Parallel()

	service := NewSearchService(leaguemock.NewRepository(t), teammock.NewRepository(t), matchmock.NewRepository(t))
	if _, err := service.Search(context.Background(), "   ", SearchAll); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseSearchType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    SearchType
		wantErr bool
	}{
		{raw: "", want: SearchAll},
		{raw: "Teams", want: SearchTeams},
		{raw: "matches", want: SearchMatches},
		{raw: "players", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseSearchType(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("raw=%q expected ErrInvalidInput, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("raw=%q got=%q err=%v want=%q", tc.raw, got, err, tc.want)
		}
	}
}
