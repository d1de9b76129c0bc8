package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/domain/team"
	"github.com/riskibarqy/football-data-api/internal/domain/teamstats"
	"github.com/riskibarqy/football-data-api/internal/platform/logging"
)

const defaultStatsWorkers = 4

type RebuildResult struct {
	Teams   int
	Updated int
	Failed  int
}

type TeamStatsService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	statsRepo teamstats.Repository
	logger    *logging.Logger
}

func NewTeamStatsService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	statsRepo teamstats.Repository,
	logger *logging.Logger,
) *TeamStatsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamStatsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// GetTeamStats returns the cached rows for a team. When the cache has no row
// for the team's own league season, the totals are derived from matches
// without being stored.
func (s *TeamStatsService) GetTeamStats(ctx context.Context, teamID int64, filter teamstats.Filter) ([]teamstats.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.GetTeamStats")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	filter.TeamID = teamID
	filter.LeagueID = strings.TrimSpace(filter.LeagueID)
	filter.Season = strings.TrimSpace(filter.Season)

	rows, err := s.statsRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list team stats team=%d: %w", teamID, err)
	}
	if len(rows) > 0 {
		return rows, nil
	}

	if filter.LeagueID != "" && filter.LeagueID != item.LeagueID {
		return rows, nil
	}
	if filter.Season != "" && filter.Season != item.Season {
		return rows, nil
	}

	derived, err := s.derive(ctx, item)
	if err != nil {
		return nil, err
	}
	if derived.TotalMatches == 0 {
		return rows, nil
	}

	return []teamstats.Stats{derived}, nil
}

// Recompute rebuilds and stores the cached stats of one team.
func (s *TeamStatsService) Recompute(ctx context.Context, teamID int64) (teamstats.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.Recompute")
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return teamstats.Stats{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return teamstats.Stats{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return s.recompute(ctx, item)
}

// RebuildSeason recomputes every team of a league season on a bounded
// worker pool. Per-team failures are logged and counted, not returned.
func (s *TeamStatsService) RebuildSeason(ctx context.Context, leagueID, season string, workers int) (RebuildResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.RebuildSeason")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	season = strings.TrimSpace(season)
	if leagueID == "" || season == "" {
		return RebuildResult{}, fmt.Errorf("%w: league id and season are required", ErrInvalidInput)
	}

	teams, err := s.listSeasonTeams(ctx, leagueID, season)
	if err != nil {
		return RebuildResult{}, err
	}
	result := RebuildResult{Teams: len(teams)}
	if len(teams) == 0 {
		return result, nil
	}

	if workers <= 0 {
		workers = defaultStatsWorkers
	}
	if workers > len(teams) {
		workers = len(teams)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var updated atomic.Int32
	var failed atomic.Int32
	var wg sync.WaitGroup
	for _, item := range teams {
		item := item
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if _, err := s.recompute(ctx, item); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "recompute team stats failed",
					"team_id", item.ID,
					"team_name", item.Name,
					"league_id", leagueID,
					"season", season,
					"error", err,
				)
				return
			}
			updated.Add(1)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return RebuildResult{}, fmt.Errorf("submit team stats task: %w", err)
		}
	}
	wg.Wait()

	result.Updated = int(updated.Load())
	result.Failed = int(failed.Load())
	return result, nil
}

func (s *TeamStatsService) listSeasonTeams(ctx context.Context, leagueID, season string) ([]team.Team, error) {
	filter := team.Filter{LeagueID: leagueID, Season: season, Limit: team.MaxListLimit}
	var out []team.Team
	for {
		batch, err := s.teamRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list teams league=%s season=%s: %w", leagueID, season, err)
		}
		out = append(out, batch...)
		if len(batch) < filter.Limit {
			return out, nil
		}
		filter.Offset += len(batch)
	}
}

func (s *TeamStatsService) recompute(ctx context.Context, item team.Team) (teamstats.Stats, error) {
	stats, err := s.derive(ctx, item)
	if err != nil {
		return teamstats.Stats{}, err
	}
	if err := s.statsRepo.Upsert(ctx, stats); err != nil {
		return teamstats.Stats{}, fmt.Errorf("upsert team stats team=%d: %w", item.ID, err)
	}
	return stats, nil
}

func (s *TeamStatsService) derive(ctx context.Context, item team.Team) (teamstats.Stats, error) {
	matches, err := s.matchRepo.ListByTeam(ctx, item.LeagueID, item.Season, item.Name)
	if err != nil {
		return teamstats.Stats{}, fmt.Errorf("list matches for team=%d: %w", item.ID, err)
	}

	return teamstats.Stats{
		TeamID:   item.ID,
		LeagueID: item.LeagueID,
		Season:   item.Season,
		Totals:   teamstats.Aggregate(item.Name, matches),
	}, nil
}
