package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
)

type MatchDetail struct {
	Match match.Match
	Stats []match.Stat
}

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.Filter) (Page[match.Match], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	filter = filter.Normalize()
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return Page[match.Match]{}, fmt.Errorf("%w: date_from must not be after date_to", ErrInvalidInput)
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return Page[match.Match]{}, fmt.Errorf("list matches: %w", err)
	}
	total, err := s.matchRepo.Count(ctx, filter)
	if err != nil {
		return Page[match.Match]{}, fmt.Errorf("count matches: %w", err)
	}

	return Page[match.Match]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchDetail{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	stats, err := s.matchRepo.ListStats(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match stats match=%s: %w", matchID, err)
	}

	return MatchDetail{Match: item, Stats: stats}, nil
}
