package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-data-api/internal/platform/logging"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

type ServiceInfo struct {
	Name    string
	Version string
}

type Handler struct {
	leagueService    *usecase.LeagueService
	matchService     *usecase.MatchService
	standingService  *usecase.LeagueStandingService
	teamService      *usecase.TeamService
	teamStatsService *usecase.TeamStatsService
	searchService    *usecase.SearchService
	healthService    *usecase.HealthService
	info             ServiceInfo
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	matchService *usecase.MatchService,
	standingService *usecase.LeagueStandingService,
	teamService *usecase.TeamService,
	teamStatsService *usecase.TeamStatsService,
	searchService *usecase.SearchService,
	healthService *usecase.HealthService,
	info ServiceInfo,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(queryTagName)

	return &Handler{
		leagueService:    leagueService,
		matchService:     matchService,
		standingService:  standingService,
		teamService:      teamService,
		teamStatsService: teamStatsService,
		searchService:    searchService,
		healthService:    healthService,
		info:             info,
		logger:           logger,
		validator:        validate,
	}
}

// fail logs err at a level matching its status and writes the envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
