package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data-api/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context, filter team.Filter) (Page[team.Team], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	filter = filter.Normalize()
	items, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return Page[team.Team]{}, fmt.Errorf("list teams: %w", err)
	}
	total, err := s.teamRepo.Count(ctx, filter)
	if err != nil {
		return Page[team.Team]{}, fmt.Errorf("count teams: %w", err)
	}

	return Page[team.Team]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
