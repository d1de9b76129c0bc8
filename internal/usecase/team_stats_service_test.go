package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/domain/team"
	"github.com/riskibarqy/football-data-api/internal/domain/teamstats"
	matchmock "github.com/riskibarqy/football-data-api/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/football-data-api/internal/mocks/domain/team"
	teamstatsmock "github.com/riskibarqy/football-data-api/internal/mocks/domain/teamstats"
	"github.com/riskibarqy/football-data-api/internal/platform/logging"
)

type teamStatsFixture struct {
	teams   *teammock.Repository
	matches *matchmock.Repository
	stats   *teamstatsmock.Repository
	service *TeamStatsService
}

func newTeamStatsFixture(t *testing.T) teamStatsFixture {
	t.Helper()
	f := teamStatsFixture{
		teams:   teammock.NewRepository(t),
		matches: matchmock.NewRepository(t),
		stats:   teamstatsmock.NewRepository(t),
	}
	f.service = NewTeamStatsService(f.teams, f.matches, f.stats, logging.NewNop())
	return f
}

var teamA = team.Team{ID: 1, Name: "A", LeagueID: "L", Season: "2023"}

func matchesForA() []match.Match {
	return []match.Match{
		{ID: "M1", LeagueID: "L", Season: "2023", HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(2), AwayScore: intPtr(1), Status: "finished"},
		{ID: "M2", LeagueID: "L", Season: "2023", HomeTeam: "C", AwayTeam: "A"},
	}
}

func TestTeamStatsService_Recompute_StoresAggregate(t *testing.T) {
	t.Parallel()

	f := newTeamStatsFixture(t)
	f.teams.On("GetByID", mock.Anything, int64(1)).Return(teamA, true, nil).Once()
	f.matches.On("ListByTeam", mock.Anything, "L", "2023", "A").Return(matchesForA(), nil).Once()

	want := teamstats.Stats{
		TeamID:   1,
		LeagueID: "L",
		Season:   "2023",
		Totals: teamstats.Totals{
			TotalMatches:   1,
			Wins:           1,
			GoalsFor:       2,
			GoalsAgainst:   1,
			GoalDifference: 1,
			WinRate:        1.0,
			HomeWins:       1,
		},
	}
	f.stats.On("Upsert", mock.Anything, want).Return(nil).Once()

	got, err := f.service.Recompute(context.Background(), 1)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got.Totals != want.Totals {
		t.Fatalf("unexpected totals: got=%+v want=%+v", got.Totals, want.Totals)
	}
}

func TestTeamStatsService_GetTeamStats(t *testing.T) {
	t.Parallel()

	t.Run("cached rows win", func(t *testing.T) {
		f := newTeamStatsFixture(t)
		cached := []teamstats.Stats{{ID: 4, TeamID: 1, LeagueID: "L", Season: "2023", Totals: teamstats.Totals{TotalMatches: 38}}}
		f.teams.On("GetByID", mock.Anything, int64(1)).Return(teamA, true, nil).Once()
		f.stats.On("List", mock.Anything, teamstats.Filter{TeamID: 1, Season: "2023"}).Return(cached, nil).Once()

		got, err := f.service.GetTeamStats(context.Background(), 1, teamstats.Filter{Season: " 2023 "})
		if err != nil {
			t.Fatalf("get team stats: %v", err)
		}
		if len(got) != 1 || got[0].TotalMatches != 38 {
			t.Fatalf("unexpected stats: %+v", got)
		}
	})

	t.Run("empty cache derives from matches", func(t *testing.T) {
		f := newTeamStatsFixture(t)
		f.teams.On("GetByID", mock.Anything, int64(1)).Return(teamA, true, nil).Once()
		f.stats.On("List", mock.Anything, teamstats.Filter{TeamID: 1}).Return([]teamstats.Stats{}, nil).Once()
		f.matches.On("ListByTeam", mock.Anything, "L", "2023", "A").Return(matchesForA(), nil).Once()

		got, err := f.service.GetTeamStats(context.Background(), 1, teamstats.Filter{})
		if err != nil {
			t.Fatalf("get team stats: %v", err)
		}
		if len(got) != 1 || got[0].Wins != 1 || got[0].WinRate != 1.0 {
			t.Fatalf("unexpected derived stats: %+v", got)
		}
	})

	t.Run("filter for another season skips derivation", func(t *testing.T) {
		f := newTeamStatsFixture(t)
		f.teams.On("GetByID", mock.Anything, int64(1)).Return(teamA, true, nil).Once()
		f.stats.On("List", mock.Anything, teamstats.Filter{TeamID: 1, Season: "2019"}).Return([]teamstats.Stats{}, nil).Once()

		got, err := f.service.GetTeamStats(context.Background(), 1, teamstats.Filter{Season: "2019"})
		if err != nil {
			t.Fatalf("get team stats: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no stats, got %+v", got)
		}
	})

	t.Run("unknown team", func(t *testing.T) {
		f := newTeamStatsFixture(t)
		f.teams.On("GetByID", mock.Anything, int64(99)).Return(team.Team{}, false, nil).Once()

		_, err := f.service.GetTeamStats(context.Background(), 99, teamstats.Filter{})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("non positive id", func(t *testing.T) {
		f := newTeamStatsFixture(t)
		_, err := f.service.GetTeamStats(context.Background(), 0, teamstats.Filter{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestTeamStatsService_RebuildSeason_CountsFailures(t *testing.T) {
	t.Parallel()

	f := newTeamStatsFixture(t)
	teamB := team.Team{ID: 2, Name: "B", LeagueID: "L", Season: "2023"}
	f.teams.On("List", mock.Anything, team.Filter{LeagueID: "L", Season: "2023", Limit: team.MaxListLimit}).
		Return([]team.Team{teamA, teamB}, nil).
		Once()
	f.matches.On("ListByTeam", mock.Anything, "L", "2023", "A").Return(matchesForA(), nil).Once()
	f.matches.On("ListByTeam", mock.Anything, "L", "2023", "B").Return(nil, ErrDependencyUnavailable).Once()
	f.stats.On("Upsert", mock.Anything, mock.MatchedBy(func(v teamstats.Stats) bool { return v.TeamID == 1 })).Return(nil).Once()

	result, err := f.service.RebuildSeason(context.Background(), "L", "2023", 8)
	if err != nil {
		t.Fatalf("rebuild season: %v", err)
	}
	if result.Teams != 2 || result.Updated != 1 || result.Failed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestTeamStatsService_RebuildSeason_PagesThroughTeams(t *testing.T) {
	t.Parallel()

	f := newTeamStatsFixture(t)
	firstPage := make([]team.Team, team.MaxListLimit)
	for i := range firstPage {
		firstPage[i] = team.Team{ID: int64(i + 10), Name: "T", LeagueID: "L", Season: "2023"}
	}
	f.teams.On("List", mock.Anything, team.Filter{LeagueID: "L", Season: "2023", Limit: team.MaxListLimit}).
		Return(firstPage, nil).
		Once()
	f.teams.On("List", mock.Anything, team.Filter{LeagueID: "L", Season: "2023", Limit: team.MaxListLimit, Offset: team.MaxListLimit}).
		Return([]team.Team{}, nil).
		Once()
	f.matches.On("ListByTeam", mock.Anything, "L", "2023", "T").Return([]match.Match{}, nil)
	f.stats.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.RebuildSeason(context.Background(), "L", "2023", 0)
	if err != nil {
		t.Fatalf("rebuild season: %v", err)
	}
	if result.Teams != team.MaxListLimit || result.Updated != team.MaxListLimit {
		t.Fatalf("unexpected result: %+v", result)
	}
}
