package leaguestanding

import (
	"fmt"
	"strings"
	"time"
)

// Standing represents a league table row for one team in one season.
type Standing struct {
	ID             int64
	LeagueID       string
	Season         string
	TeamName       string
	Position       int
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	CreatedAt      time.Time
}

func (s Standing) Validate() error {
	if strings.TrimSpace(s.LeagueID) == "" {
		return fmt.Errorf("standing league id is required")
	}
	if strings.TrimSpace(s.Season) == "" {
		return fmt.Errorf("standing season is required")
	}
	if strings.TrimSpace(s.TeamName) == "" {
		return fmt.Errorf("standing team name is required")
	}
	if s.Position < 1 {
		return fmt.Errorf("standing position must be >= 1")
	}

	return nil
}
