package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 100
	DateLayout       = "2006-01-02"
)

const (
	StatusFinished  = "finished"
	StatusPostponed = "postponed"
	StatusScheduled = "scheduled"
)

// Match is a single fixture. Team names are free text and are not tied to
// team rows. Nil scores mean the match has not been played.
type Match struct {
	ID         string
	LeagueID   string
	Season     string
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
	CreatedAt  time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.LeagueID) == "" {
		return fmt.Errorf("match league id is required")
	}
	if strings.TrimSpace(m.Season) == "" {
		return fmt.Errorf("match season is required")
	}
	if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
		return fmt.Errorf("match teams are required")
	}

	return nil
}

// Played reports whether the match produced a result. A postponed or
// abandoned match may carry a partial score and still does not count.
func (m Match) Played() bool {
	if m.Status == StatusPostponed {
		return false
	}
	return m.HomeScore != nil && m.AwayScore != nil
}

// Stat is one labelled home/away value pair for a match, e.g. possession.
type Stat struct {
	ID        int64
	MatchID   string
	Type      string
	HomeValue string
	AwayValue string
	CreatedAt time.Time
}

// Filter narrows match listings. Team matches either side as a
// case-insensitive substring; DateFrom and DateTo are inclusive.
type Filter struct {
	LeagueID string
	Season   string
	Team     string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// Normalize applies the default page size and caps it at MaxListLimit.
func (f Filter) Normalize() Filter {
	f.LeagueID = strings.TrimSpace(f.LeagueID)
	f.Season = strings.TrimSpace(f.Season)
	f.Team = strings.TrimSpace(f.Team)
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
