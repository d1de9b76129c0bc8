package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-data-api/internal/config"
	"github.com/riskibarqy/football-data-api/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-data-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-data-api/internal/platform/logging"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

// repositories groups the Postgres-backed stores shared by the API and the
// population job.
type repositories struct {
	leagues   *postgres.LeagueRepository
	teams     *postgres.TeamRepository
	matches   *postgres.MatchRepository
	standings *postgres.LeagueStandingRepository
	teamStats *postgres.TeamStatsRepository
	health    *postgres.HealthRepository
}

func newRepositories(db *sqlx.DB) repositories {
	return repositories{
		leagues:   postgres.NewLeagueRepository(db),
		teams:     postgres.NewTeamRepository(db),
		matches:   postgres.NewMatchRepository(db),
		standings: postgres.NewLeagueStandingRepository(db),
		teamStats: postgres.NewTeamStatsRepository(db),
		health:    postgres.NewHealthRepository(db),
	}
}

func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	repos := newRepositories(db)
	handler := httpapi.NewHandler(
		usecase.NewLeagueService(repos.leagues, repos.matches),
		usecase.NewMatchService(repos.matches),
		usecase.NewLeagueStandingService(repos.standings),
		usecase.NewTeamService(repos.teams),
		usecase.NewTeamStatsService(repos.teams, repos.matches, repos.teamStats, logger.Named("teamstats")),
		usecase.NewSearchService(repos.leagues, repos.teams, repos.matches),
		usecase.NewHealthService(repos.health),
		httpapi.ServiceInfo{Name: cfg.ServiceName, Version: cfg.ServiceVersion},
		logger.Named("httpapi"),
	)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger.Named("http"), cfg.SwaggerEnabled, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
