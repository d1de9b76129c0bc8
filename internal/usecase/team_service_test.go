package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-data-api/internal/domain/team"
	teammock "github.com/riskibarqy/football-data-api/internal/mocks/domain/team"
)

func TestTeamService_ListTeams_AppliesDefaultLimit(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	normalized := team.Filter{LeagueID: "brasileirao", Search: "palm", Limit: team.DefaultListLimit}
	teamRepo.On("List", mock.Anything, normalized).
		Return([]team.Team{{ID: 9, Name: "Palmeiras", LeagueID: "brasileirao", Season: "2023"}}, nil).
		Once()
	teamRepo.On("Count", mock.Anything, normalized).Return(3, nil).Once()

	page, err := NewTeamService(teamRepo).ListTeams(context.Background(), team.Filter{LeagueID: "brasileirao", Search: " palm "})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if page.Limit != team.DefaultListLimit || page.Total != 3 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}
