package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/domain/team"
)

// SearchResultLimit caps every entity group of a search response.
const SearchResultLimit = 10

type SearchType string

const (
	SearchAll     SearchType = "all"
	SearchTeams   SearchType = "teams"
	SearchLeagues SearchType = "leagues"
	SearchMatches SearchType = "matches"
)

func ParseSearchType(raw string) (SearchType, error) {
	switch v := SearchType(strings.ToLower(strings.TrimSpace(raw))); v {
	case "":
		return SearchAll, nil
	case SearchAll, SearchTeams, SearchLeagues, SearchMatches:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unsupported search type %q", ErrInvalidInput, raw)
	}
}

func (t SearchType) includes(target SearchType) bool {
	return t == SearchAll || t == target
}

// SearchResults always carries non-nil slices so every group is rendered.
type SearchResults struct {
	Teams   []team.Team
	Leagues []league.League
	Matches []match.Match
}

type SearchService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
}

func NewSearchService(leagueRepo league.Repository, teamRepo team.Repository, matchRepo match.Repository) *SearchService {
	return &SearchService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
	}
}

func (s *SearchService) Search(ctx context.Context, query string, searchType SearchType) (SearchResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.Search")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResults{}, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	if searchType == "" {
		searchType = SearchAll
	}

	out := SearchResults{
		Teams:   []team.Team{},
		Leagues: []league.League{},
		Matches: []match.Match{},
	}

	if searchType.includes(SearchTeams) {
		items, err := s.teamRepo.List(ctx, team.Filter{Search: query, Limit: SearchResultLimit})
		if err != nil {
			return SearchResults{}, fmt.Errorf("search teams: %w", err)
		}
		out.Teams = append(out.Teams, capSlice(items, SearchResultLimit)...)
	}
	if searchType.includes(SearchLeagues) {
		items, err := s.leagueRepo.List(ctx, league.Filter{Name: query, Limit: SearchResultLimit})
		if err != nil {
			return SearchResults{}, fmt.Errorf("search leagues: %w", err)
		}
		out.Leagues = append(out.Leagues, capSlice(items, SearchResultLimit)...)
	}
	if searchType.includes(SearchMatches) {
		items, err := s.matchRepo.List(ctx, match.Filter{Team: query, Limit: SearchResultLimit})
		if err != nil {
			return SearchResults{}, fmt.Errorf("search matches: %w", err)
		}
		out.Matches = append(out.Matches, capSlice(items, SearchResultLimit)...)
	}

	return out, nil
}

func capSlice[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
