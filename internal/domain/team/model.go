package team

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Team is a club as registered for one league season. The same club playing
// two seasons is stored as two teams.
type Team struct {
	ID        int64
	Name      string
	LeagueID  string
	Season    string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.LeagueID) == "" {
		return fmt.Errorf("team league id is required")
	}
	if strings.TrimSpace(t.Season) == "" {
		return fmt.Errorf("team season is required")
	}

	return nil
}

// Filter narrows team listings. Search is a case-insensitive substring of
// the team name.
type Filter struct {
	LeagueID string
	Season   string
	Search   string
	Limit    int
	Offset   int
}

// Normalize applies the default page size and caps it at MaxListLimit.
func (f Filter) Normalize() Filter {
	f.LeagueID = strings.TrimSpace(f.LeagueID)
	f.Season = strings.TrimSpace(f.Season)
	f.Search = strings.TrimSpace(f.Search)
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
