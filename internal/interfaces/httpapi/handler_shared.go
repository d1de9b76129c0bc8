package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/domain/team"
	"github.com/riskibarqy/football-data-api/internal/domain/teamstats"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, validationMessage(err))
	}

	return nil
}

// validationMessage phrases the first failed rule in terms of the query
// parameter, never the Go field.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request parameters"
	}

	fe := fieldErrs[0]
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be <= %s", name, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return name + " is invalid"
	}
}

// queryTagName makes validator report fields by their query parameter name.
func queryTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("query"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

type listMatchesRequest struct {
	LeagueID string `query:"league_id" validate:"omitempty,max=100"`
	Season   string `query:"season" validate:"omitempty,max=20"`
	Team     string `query:"team" validate:"omitempty,max=200"`
	DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Limit    int    `query:"limit" validate:"gte=1"`
	Offset   int    `query:"offset" validate:"gte=0"`
}

type listTeamsRequest struct {
	LeagueID string `query:"league_id" validate:"omitempty,max=100"`
	Season   string `query:"season" validate:"omitempty,max=20"`
	Search   string `query:"search" validate:"omitempty,max=200"`
	Limit    int    `query:"limit" validate:"gte=1"`
	Offset   int    `query:"offset" validate:"gte=0"`
}

type teamStatsRequest struct {
	TeamID   int64  `query:"team_id" validate:"gt=0"`
	LeagueID string `query:"league_id" validate:"omitempty,max=100"`
	Season   string `query:"season" validate:"omitempty,max=20"`
}

type searchRequest struct {
	Query string `query:"q" validate:"required,max=200"`
	Type  string `query:"type" validate:"omitempty,oneof=all teams leagues matches"`
}

func (h *Handler) parseListMatches(ctx context.Context, query url.Values) (match.Filter, error) {
	limit, err := intParam(query, "limit", match.DefaultListLimit)
	if err != nil {
		return match.Filter{}, err
	}
	offset, err := intParam(query, "offset", 0)
	if err != nil {
		return match.Filter{}, err
	}

	req := listMatchesRequest{
		LeagueID: strings.TrimSpace(query.Get("league_id")),
		Season:   strings.TrimSpace(query.Get("season")),
		Team:     strings.TrimSpace(query.Get("team")),
		DateFrom: strings.TrimSpace(query.Get("date_from")),
		DateTo:   strings.TrimSpace(query.Get("date_to")),
		Limit:    limit,
		Offset:   offset,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return match.Filter{}, err
	}

	filter := match.Filter{
		LeagueID: req.LeagueID,
		Season:   req.Season,
		Team:     req.Team,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if filter.DateFrom, err = dateParam(req.DateFrom); err != nil {
		return match.Filter{}, err
	}
	if filter.DateTo, err = dateParam(req.DateTo); err != nil {
		return match.Filter{}, err
	}
	return filter, nil
}

func (h *Handler) parseListTeams(ctx context.Context, query url.Values) (team.Filter, error) {
	limit, err := intParam(query, "limit", team.DefaultListLimit)
	if err != nil {
		return team.Filter{}, err
	}
	offset, err := intParam(query, "offset", 0)
	if err != nil {
		return team.Filter{}, err
	}

	req := listTeamsRequest{
		LeagueID: strings.TrimSpace(query.Get("league_id")),
		Season:   strings.TrimSpace(query.Get("season")),
		Search:   strings.TrimSpace(query.Get("search")),
		Limit:    limit,
		Offset:   offset,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return team.Filter{}, err
	}

	return team.Filter{
		LeagueID: req.LeagueID,
		Season:   req.Season,
		Search:   req.Search,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}, nil
}

func (h *Handler) parseTeamStats(ctx context.Context, rawTeamID string, query url.Values) (int64, teamstats.Filter, error) {
	teamID, err := strconv.ParseInt(strings.TrimSpace(rawTeamID), 10, 64)
	if err != nil {
		return 0, teamstats.Filter{}, fmt.Errorf("%w: team_id must be an integer", usecase.ErrInvalidInput)
	}

	req := teamStatsRequest{
		TeamID:   teamID,
		LeagueID: strings.TrimSpace(query.Get("league_id")),
		Season:   strings.TrimSpace(query.Get("season")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return 0, teamstats.Filter{}, err
	}

	return req.TeamID, teamstats.Filter{LeagueID: req.LeagueID, Season: req.Season}, nil
}

func (h *Handler) parseSearch(ctx context.Context, query url.Values) (string, usecase.SearchType, error) {
	req := searchRequest{
		Query: strings.TrimSpace(query.Get("q")),
		Type:  strings.ToLower(strings.TrimSpace(query.Get("type"))),
	}
	if req.Query == "" {
		return "", "", fmt.Errorf("%w: query parameter q is required", usecase.ErrInvalidInput)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return "", "", err
	}

	searchType, err := usecase.ParseSearchType(req.Type)
	if err != nil {
		return "", "", err
	}
	return req.Query, searchType, nil
}

// intParam returns def when the parameter is absent and rejects anything
// that is not an integer.
func intParam(query url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func dateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(match.DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", usecase.ErrInvalidInput, raw)
	}
	return &v, nil
}
