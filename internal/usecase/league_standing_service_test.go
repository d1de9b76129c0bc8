package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-data-api/internal/domain/leaguestanding"
	leaguestandingmock "github.com/riskibarqy/football-data-api/internal/mocks/domain/leaguestanding"
)

func TestLeagueStandingService_ListStandings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		leagueID string
		season   string
		rows     []leaguestanding.Standing
		wantErr  error
		wantRows int
	}{
		{
			name:     "table present",
			leagueID: "premier_league",
			season:   "2023-2024",
			rows: []leaguestanding.Standing{
				{LeagueID: "premier_league", Season: "2023-2024", TeamName: "Manchester City", Position: 1, Points: 91},
				{LeagueID: "premier_league", Season: "2023-2024", TeamName: "Arsenal", Position: 2, Points: 89},
			},
			wantRows: 2,
		},
		{
			name:     "empty table is not found",
			leagueID: "premier_league",
			season:   "1999-2000",
			rows:     []leaguestanding.Standing{},
			wantErr:  ErrNotFound,
		},
		{
			name:     "missing season is invalid",
			leagueID: "premier_league",
			wantErr:  ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := leaguestandingmock.NewRepository(t)
			if tc.season != "" {
				repo.On("ListByLeagueSeason", mock.Anything, tc.leagueID, tc.season).Return(tc.rows, nil).Once()
			}

			got, err := NewLeagueStandingService(repo).ListStandings(context.Background(), tc.leagueID, tc.season)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("list standings: %v", err)
			}
			if len(got) != tc.wantRows {
				t.Fatalf("unexpected row count: got=%d want=%d", len(got), tc.wantRows)
			}
		})
	}
}
