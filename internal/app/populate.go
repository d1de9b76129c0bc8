package app

import (
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-data-api/external/scraper"
	"github.com/riskibarqy/football-data-api/internal/config"
	"github.com/riskibarqy/football-data-api/internal/domain/league"
	"github.com/riskibarqy/football-data-api/internal/platform/logging"
	"github.com/riskibarqy/football-data-api/internal/platform/resilience"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

// NewPopulator wires the results-site scraper to the Postgres repositories.
func NewPopulator(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*usecase.PopulationService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	leagues, err := league.SelectCatalog(cfg.Populate.Leagues)
	if err != nil {
		return nil, err
	}

	repos := newRepositories(db)
	source := newScraper(cfg.Scraper, logger)
	stats := usecase.NewTeamStatsService(repos.teams, repos.matches, repos.teamStats, logger.Named("teamstats"))

	return usecase.NewPopulationService(
		source,
		repos.leagues,
		repos.teams,
		repos.matches,
		repos.standings,
		stats,
		usecase.PopulationConfig{
			Leagues:      leagues,
			SeasonYears:  cfg.Populate.SeasonYears,
			RequestDelay: cfg.Populate.RequestDelay,
			LeagueDelay:  cfg.Populate.LeagueDelay,
			RebuildStats: cfg.Populate.RebuildStats,
			StatsWorkers: cfg.Populate.StatsWorkers,
		},
		logger.Named("populate"),
	), nil
}

func newScraper(cfg config.ScraperConfig, logger *logging.Logger) *scraper.Client {
	return scraper.NewClient(scraper.ClientConfig{
		BaseURL:        cfg.BaseURL,
		UserAgent:      cfg.UserAgent,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		MinInterval:    cfg.MinInterval,
		CircuitEnabled: cfg.CircuitEnabled,
		CircuitBreaker: resilience.BreakerConfig{
			FailureThreshold: cfg.CircuitFailureCount,
			OpenTimeout:      cfg.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})
}
