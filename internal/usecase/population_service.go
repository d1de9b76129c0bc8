package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/panics"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	"github.com/riskibarqy/football-data-api/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/domain/team"
	"github.com/riskibarqy/football-data-api/internal/platform/logging"
)

// MatchSource is the results provider scraped by the population job.
type MatchSource interface {
	FetchMatches(ctx context.Context, lg league.League, season string) ([]ExternalMatch, error)
	FetchTable(ctx context.Context, lg league.League, season string) ([]ExternalStanding, error)
}

type ExternalMatch struct {
	ID         string
	Date       *time.Time
	Time       string
	HomeTeam   string
	AwayTeam   string
	HomeScore  *int
	AwayScore  *int
	Status     string
	Round      string
	Stadium    string
	Referee    string
	Attendance *int
	Stats      []ExternalMatchStat
}

type ExternalMatchStat struct {
	Type      string
	HomeValue string
	AwayValue string
}

// ExternalStanding is one table row. Position 0 means the source did not
// report it and the row order is used instead.
type ExternalStanding struct {
	Position       int
	TeamName       string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

type PopulationConfig struct {
	Leagues      []league.CatalogEntry
	SeasonYears  []int
	RequestDelay time.Duration
	LeagueDelay  time.Duration
	RebuildStats bool
	StatsWorkers int
}

type PopulationSummary struct {
	Leagues        int
	Seasons        int
	FailedSeasons  int
	Matches        int
	SkippedMatches int
	Teams          int
	Standings      int
	StatsRebuilt   int
	Duration       time.Duration
}

type PopulationService struct {
	source       MatchSource
	leagueRepo   league.Repository
	teamRepo     team.Repository
	matchRepo    match.Repository
	standingRepo leaguestanding.Repository
	stats        *TeamStatsService
	cfg          PopulationConfig
	logger       *logging.Logger

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

func NewPopulationService(
	source MatchSource,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	standingRepo leaguestanding.Repository,
	stats *TeamStatsService,
	cfg PopulationConfig,
	logger *logging.Logger,
) *PopulationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PopulationService{
		source:       source,
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		standingRepo: standingRepo,
		stats:        stats,
		cfg:          cfg,
		logger:       logger,
		sleep:        sleepContext,
		now:          time.Now,
	}
}

// Run scrapes every configured league season and upserts the results. Each
// write commits on its own, so an interrupted run can simply be repeated.
// Failures inside one league season are logged and the run moves on; only
// cancellation aborts it.
func (s *PopulationService) Run(ctx context.Context) (PopulationSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopulationService.Run")
	defer span.End()

	var summary PopulationSummary
	if s.source == nil {
		return summary, fmt.Errorf("%w: match source is not configured", ErrDependencyUnavailable)
	}
	if len(s.cfg.Leagues) == 0 || len(s.cfg.SeasonYears) == 0 {
		return summary, fmt.Errorf("%w: at least one league and one season year are required", ErrInvalidInput)
	}

	start := s.now()
	first := true
	for _, entry := range s.cfg.Leagues {
		if err := s.leagueRepo.Upsert(ctx, entry.League); err != nil {
			s.logger.ErrorContext(ctx, "store league failed", "league_id", entry.ID, "error", err)
			summary.FailedSeasons += len(s.cfg.SeasonYears)
			continue
		}
		summary.Leagues++

		for _, year := range s.cfg.SeasonYears {
			if !first {
				if err := s.sleep(ctx, s.cfg.LeagueDelay); err != nil {
					return s.finish(ctx, summary, start), err
				}
			}
			first = false

			season := entry.SeasonFormat.Season(year)
			err := s.runSeason(ctx, entry.League, season, &summary)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s.finish(ctx, summary, start), ctxErr
			}
			if err != nil {
				summary.FailedSeasons++
				s.logger.ErrorContext(ctx, "populate season failed",
					"league_id", entry.ID,
					"season", season,
					"error", err,
				)
				continue
			}
			summary.Seasons++
		}
	}

	return s.finish(ctx, summary, start), nil
}

// runSeason isolates a panic in one league season from the rest of the run.
func (s *PopulationService) runSeason(ctx context.Context, lg league.League, season string, summary *PopulationSummary) error {
	var err error
	var catcher panics.Catcher
	catcher.Try(func() {
		err = s.populateSeason(ctx, lg, season, summary)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		return crerr.Wrapf(recovered.AsError(), "populate league=%s season=%s panicked", lg.ID, season)
	}
	if err != nil {
		return err
	}

	if s.cfg.RebuildStats && s.stats != nil {
		result, err := s.stats.RebuildSeason(ctx, lg.ID, season, s.cfg.StatsWorkers)
		if err != nil {
			s.logger.WarnContext(ctx, "rebuild team stats failed", "league_id", lg.ID, "season", season, "error", err)
			return nil
		}
		summary.StatsRebuilt += result.Updated
	}
	return nil
}

func (s *PopulationService) populateSeason(ctx context.Context, lg league.League, season string, summary *PopulationSummary) error {
	s.logger.InfoContext(ctx, "populate season", "league_id", lg.ID, "season", season)

	matches, err := s.source.FetchMatches(ctx, lg, season)
	if err != nil {
		return crerr.Wrapf(err, "fetch matches league=%s season=%s", lg.ID, season)
	}

	seenTeams := make(map[string]struct{})
	stored := 0
	for _, external := range matches {
		item := toMatch(lg.ID, season, external)
		if err := item.Validate(); err != nil {
			summary.SkippedMatches++
			s.logger.WarnContext(ctx, "skip scraped match", "league_id", lg.ID, "season", season, "error", err)
			continue
		}

		if err := s.storeMatch(ctx, lg.ID, season, item, external.Stats, seenTeams); err != nil {
			if abortsSeason(ctx, err) {
				return err
			}
			summary.SkippedMatches++
			s.logger.WarnContext(ctx, "store scraped match failed",
				"league_id", lg.ID,
				"season", season,
				"match_id", item.ID,
				"error", err,
			)
		} else {
			stored++
			summary.Matches++
		}

		if err := s.sleep(ctx, s.cfg.RequestDelay); err != nil {
			return err
		}
	}
	summary.Teams += len(seenTeams)

	// Cup competitions have no table page; the season still counts.
	standings, err := s.storeTable(ctx, lg, season)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.WarnContext(ctx, "standings not stored", "league_id", lg.ID, "season", season, "error", err)
	}
	summary.Standings += standings

	s.logger.InfoContext(ctx, "season stored",
		"league_id", lg.ID,
		"season", season,
		"matches", stored,
		"standings", standings,
	)
	return nil
}

func (s *PopulationService) storeMatch(ctx context.Context, leagueID, season string, item match.Match, external []ExternalMatchStat, seenTeams map[string]struct{}) error {
	if err := s.matchRepo.Upsert(ctx, item); err != nil {
		return crerr.Wrapf(err, "store match id=%s", item.ID)
	}
	if stats := toMatchStats(external); len(stats) > 0 {
		if err := s.matchRepo.UpsertStats(ctx, item.ID, stats); err != nil {
			return crerr.Wrapf(err, "store match stats id=%s", item.ID)
		}
	}
	for _, name := range []string{item.HomeTeam, item.AwayTeam} {
		if _, err := s.teamRepo.Upsert(ctx, team.Team{Name: name, LeagueID: leagueID, Season: season}); err != nil {
			return crerr.Wrapf(err, "store team name=%s", name)
		}
		seenTeams[name] = struct{}{}
	}
	return nil
}

func (s *PopulationService) storeTable(ctx context.Context, lg league.League, season string) (int, error) {
	table, err := s.source.FetchTable(ctx, lg, season)
	if err != nil {
		return 0, crerr.Wrapf(err, "fetch table league=%s season=%s", lg.ID, season)
	}
	standings := toStandings(lg.ID, season, table)
	if len(standings) == 0 {
		return 0, nil
	}
	if err := s.standingRepo.UpsertMany(ctx, standings); err != nil {
		return 0, crerr.Wrapf(err, "store standings league=%s season=%s", lg.ID, season)
	}
	return len(standings), nil
}

// abortsSeason reports whether a row failure should stop the season rather
// than skip the row.
func abortsSeason(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return crerr.Is(err, ErrDependencyUnavailable) ||
		crerr.Is(err, context.Canceled) ||
		crerr.Is(err, context.DeadlineExceeded)
}

func (s *PopulationService) finish(ctx context.Context, summary PopulationSummary, start time.Time) PopulationSummary {
	summary.Duration = s.now().Sub(start)
	s.logger.InfoContext(ctx, "population finished",
		"leagues", summary.Leagues,
		"seasons", summary.Seasons,
		"failed_seasons", summary.FailedSeasons,
		"matches", summary.Matches,
		"skipped_matches", summary.SkippedMatches,
		"teams", summary.Teams,
		"standings", summary.Standings,
		"stats_rebuilt", summary.StatsRebuilt,
		"duration", summary.Duration.String(),
	)
	return summary
}

func toMatch(leagueID, season string, in ExternalMatch) match.Match {
	out := match.Match{
		ID:         strings.TrimSpace(in.ID),
		LeagueID:   leagueID,
		Season:     season,
		Date:       in.Date,
		Time:       strings.TrimSpace(in.Time),
		HomeTeam:   strings.TrimSpace(in.HomeTeam),
		AwayTeam:   strings.TrimSpace(in.AwayTeam),
		HomeScore:  in.HomeScore,
		AwayScore:  in.AwayScore,
		Status:     strings.TrimSpace(in.Status),
		Round:      strings.TrimSpace(in.Round),
		Stadium:    strings.TrimSpace(in.Stadium),
		Referee:    strings.TrimSpace(in.Referee),
		Attendance: in.Attendance,
	}
	if out.ID == "" {
		out.ID = fallbackMatchID(leagueID, season, out)
	}
	return out
}

// fallbackMatchID derives a stable id from the fixture identity so
// re-running the job hits the same row.
func fallbackMatchID(leagueID, season string, m match.Match) string {
	var date string
	if m.Date != nil {
		date = m.Date.Format(match.DateLayout)
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(date + "|" + strings.ToLower(m.HomeTeam) + "|" + strings.ToLower(m.AwayTeam)))
	return fmt.Sprintf("%s_%s_%016x", leagueID, season, h.Sum64())
}

func toMatchStats(in []ExternalMatchStat) []match.Stat {
	if len(in) == 0 {
		return nil
	}
	out := make([]match.Stat, 0, len(in))
	for _, item := range in {
		out = append(out, match.Stat{
			Type:      strings.TrimSpace(item.Type),
			HomeValue: strings.TrimSpace(item.HomeValue),
			AwayValue: strings.TrimSpace(item.AwayValue),
		})
	}
	return out
}

func toStandings(leagueID, season string, in []ExternalStanding) []leaguestanding.Standing {
	out := make([]leaguestanding.Standing, 0, len(in))
	for i, row := range in {
		name := strings.TrimSpace(row.TeamName)
		if name == "" {
			continue
		}
		position := row.Position
		if position <= 0 {
			position = i + 1
		}
		goalDifference := row.GoalDifference
		if goalDifference == 0 {
			goalDifference = row.GoalsFor - row.GoalsAgainst
		}
		out = append(out, leaguestanding.Standing{
			LeagueID:       leagueID,
			Season:         season,
			TeamName:       name,
			Position:       position,
			Played:         row.Played,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: goalDifference,
			Points:         row.Points,
		})
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
