package league

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// League is a competition such as a national division or a continental cup.
type League struct {
	ID        string
	Name      string
	Country   string
	CreatedAt time.Time
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.TrimSpace(l.Country) == "" {
		return fmt.Errorf("league country is required")
	}

	return nil
}

// Filter narrows league listings. Empty fields add no constraint.
type Filter struct {
	Country string
	Name    string
	Limit   int
}

// SeasonFormat describes how a competition labels its seasons.
type SeasonFormat int

const (
	// SeasonCalendarYear labels a season by a single year, e.g. "2023".
	SeasonCalendarYear SeasonFormat = iota
	// SeasonSplitYear labels a season that spans two years, e.g. "2023-2024".
	SeasonSplitYear
)

// Season returns the season label for the year the season starts in.
func (f SeasonFormat) Season(year int) string {
	if f == SeasonCalendarYear {
		return strconv.Itoa(year)
	}
	return strconv.Itoa(year) + "-" + strconv.Itoa(year+1)
}

// CatalogEntry is a competition the population job knows how to collect.
type CatalogEntry struct {
	League
	SeasonFormat SeasonFormat
}

var catalog = []CatalogEntry{
	{League: League{ID: "brasileirao", Name: "Brasileirão Série A", Country: "brazil"}, SeasonFormat: SeasonCalendarYear},
	{League: League{ID: "copa_brasil", Name: "Copa do Brasil", Country: "brazil"}, SeasonFormat: SeasonCalendarYear},
	{League: League{ID: "paulista", Name: "Campeonato Paulista", Country: "brazil"}, SeasonFormat: SeasonCalendarYear},
	{League: League{ID: "carioca", Name: "Campeonato Carioca", Country: "brazil"}, SeasonFormat: SeasonCalendarYear},
	{League: League{ID: "premier_league", Name: "Premier League", Country: "england"}, SeasonFormat: SeasonSplitYear},
	{League: League{ID: "la_liga", Name: "La Liga", Country: "spain"}, SeasonFormat: SeasonSplitYear},
	{League: League{ID: "serie_a", Name: "Serie A", Country: "italy"}, SeasonFormat: SeasonSplitYear},
	{League: League{ID: "bundesliga", Name: "Bundesliga", Country: "germany"}, SeasonFormat: SeasonSplitYear},
	{League: League{ID: "ligue_1", Name: "Ligue 1", Country: "france"}, SeasonFormat: SeasonSplitYear},
	{League: League{ID: "champions_league", Name: "UEFA Champions League", Country: "europe"}, SeasonFormat: SeasonSplitYear},
	{League: League{ID: "europa_league", Name: "UEFA Europa League", Country: "europe"}, SeasonFormat: SeasonSplitYear},
}

// Catalog returns the supported competitions in collection order.
func Catalog() []CatalogEntry {
	return append([]CatalogEntry(nil), catalog...)
}

// SelectCatalog returns the catalog entries whose ids are listed, preserving
// catalog order. An empty list selects everything.
func SelectCatalog(ids []string) ([]CatalogEntry, error) {
	if len(ids) == 0 {
		return Catalog(), nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[strings.TrimSpace(id)] = struct{}{}
	}

	out := make([]CatalogEntry, 0, len(wanted))
	for _, entry := range catalog {
		if _, ok := wanted[entry.ID]; ok {
			out = append(out, entry)
			delete(wanted, entry.ID)
		}
	}
	for id := range wanted {
		return nil, fmt.Errorf("unknown league %q", id)
	}

	return out, nil
}
