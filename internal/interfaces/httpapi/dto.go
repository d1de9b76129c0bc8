package httpapi

import (
	"time"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	"github.com/riskibarqy/football-data-api/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/domain/team"
	"github.com/riskibarqy/football-data-api/internal/domain/teamstats"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

type leagueDTO struct {
	LeagueID   string    `json:"league_id"`
	LeagueName string    `json:"league_name"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"created_at"`
}

type seasonDTO struct {
	Season string `json:"season"`
}

type teamDTO struct {
	TeamID    int64     `json:"team_id"`
	TeamName  string    `json:"team_name"`
	LeagueID  string    `json:"league_id"`
	Season    string    `json:"season"`
	CreatedAt time.Time `json:"created_at"`
}

// matchDTO renders unset optional columns as null.
type matchDTO struct {
	MatchID    string    `json:"match_id"`
	LeagueID   string    `json:"league_id"`
	Season     string    `json:"season"`
	MatchDate  *string   `json:"match_date"`
	MatchTime  *string   `json:"match_time"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
	Status     *string   `json:"status"`
	Round      *string   `json:"round"`
	Stadium    *string   `json:"stadium"`
	Referee    *string   `json:"referee"`
	Attendance *int      `json:"attendance"`
	CreatedAt  time.Time `json:"created_at"`
}

type matchStatDTO struct {
	ID        int64     `json:"id"`
	MatchID   string    `json:"match_id"`
	StatType  string    `json:"stat_type"`
	HomeValue *string   `json:"home_value"`
	AwayValue *string   `json:"away_value"`
	CreatedAt time.Time `json:"created_at"`
}

type matchDetailDTO struct {
	Match matchDTO       `json:"match"`
	Stats []matchStatDTO `json:"stats"`
}

type standingDTO struct {
	ID             int64     `json:"id"`
	LeagueID       string    `json:"league_id"`
	Season         string    `json:"season"`
	TeamName       string    `json:"team_name"`
	Position       int       `json:"position"`
	Played         int       `json:"played"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	Points         int       `json:"points"`
	CreatedAt      time.Time `json:"created_at"`
}

// teamStatsDTO leaves the cache bookkeeping fields out for rows derived on
// the fly.
type teamStatsDTO struct {
	ID             int64      `json:"id,omitempty"`
	TeamID         int64      `json:"team_id"`
	LeagueID       string     `json:"league_id"`
	Season         string     `json:"season"`
	TotalMatches   int        `json:"total_matches"`
	Wins           int        `json:"wins"`
	Draws          int        `json:"draws"`
	Losses         int        `json:"losses"`
	GoalsFor       int        `json:"goals_for"`
	GoalsAgainst   int        `json:"goals_against"`
	GoalDifference int        `json:"goal_difference"`
	WinRate        float64    `json:"win_rate"`
	HomeWins       int        `json:"home_wins"`
	AwayWins       int        `json:"away_wins"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type searchResultsDTO struct {
	Teams   []teamDTO   `json:"teams"`
	Leagues []leagueDTO `json:"leagues"`
	Matches []matchDTO  `json:"matches"`
}

func leagueToDTO(item league.League) leagueDTO {
	return leagueDTO{
		LeagueID:   item.ID,
		LeagueName: item.Name,
		Country:    item.Country,
		CreatedAt:  item.CreatedAt,
	}
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		TeamID:    item.ID,
		TeamName:  item.Name,
		LeagueID:  item.LeagueID,
		Season:    item.Season,
		CreatedAt: item.CreatedAt,
	}
}

func matchToDTO(item match.Match) matchDTO {
	out := matchDTO{
		MatchID:    item.ID,
		LeagueID:   item.LeagueID,
		Season:     item.Season,
		MatchTime:  optionalString(item.Time),
		HomeTeam:   item.HomeTeam,
		AwayTeam:   item.AwayTeam,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		Status:     optionalString(item.Status),
		Round:      optionalString(item.Round),
		Stadium:    optionalString(item.Stadium),
		Referee:    optionalString(item.Referee),
		Attendance: item.Attendance,
		CreatedAt:  item.CreatedAt,
	}
	if item.Date != nil {
		date := item.Date.Format(match.DateLayout)
		out.MatchDate = &date
	}
	return out
}

func matchStatToDTO(item match.Stat) matchStatDTO {
	return matchStatDTO{
		ID:        item.ID,
		MatchID:   item.MatchID,
		StatType:  item.Type,
		HomeValue: optionalString(item.HomeValue),
		AwayValue: optionalString(item.AwayValue),
		CreatedAt: item.CreatedAt,
	}
}

func matchDetailToDTO(detail usecase.MatchDetail) matchDetailDTO {
	return matchDetailDTO{
		Match: matchToDTO(detail.Match),
		Stats: mapSlice(detail.Stats, matchStatToDTO),
	}
}

func standingToDTO(item leaguestanding.Standing) standingDTO {
	return standingDTO{
		ID:             item.ID,
		LeagueID:       item.LeagueID,
		Season:         item.Season,
		TeamName:       item.TeamName,
		Position:       item.Position,
		Played:         item.Played,
		Wins:           item.Wins,
		Draws:          item.Draws,
		Losses:         item.Losses,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		Points:         item.Points,
		CreatedAt:      item.CreatedAt,
	}
}

func teamStatsToDTO(item teamstats.Stats) teamStatsDTO {
	out := teamStatsDTO{
		ID:             item.ID,
		TeamID:         item.TeamID,
		LeagueID:       item.LeagueID,
		Season:         item.Season,
		TotalMatches:   item.TotalMatches,
		Wins:           item.Wins,
		Draws:          item.Draws,
		Losses:         item.Losses,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		WinRate:        item.WinRate,
		HomeWins:       item.HomeWins,
		AwayWins:       item.AwayWins,
	}
	if !item.UpdatedAt.IsZero() {
		updated := item.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

func searchResultsToDTO(results usecase.SearchResults) searchResultsDTO {
	return searchResultsDTO{
		Teams:   mapSlice(results.Teams, teamToDTO),
		Leagues: mapSlice(results.Leagues, leagueToDTO),
		Matches: mapSlice(results.Matches, matchToDTO),
	}
}

// mapSlice never returns nil so empty groups encode as [].
func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
