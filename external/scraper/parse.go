package scraper

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

const (
	kickoffLayout = "02.01.2006 15:04"
	matchIDPrefix = "g_1_"

	statusFinished  = match.StatusFinished
	statusPostponed = match.StatusPostponed
	statusScheduled = match.StatusScheduled
)

// parseResults reads the fixture list of a season results page. Round
// headers apply to every match row that follows them.
func parseResults(body []byte) ([]usecase.ExternalMatch, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, crerr.Wrap(err, "parse results page")
	}

	out := make([]usecase.ExternalMatch, 0, 64)
	round := ""
	doc.Find("div.event__round, div.event__match").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("event__round") {
			round = cleanText(s.Text())
			return
		}

		item := usecase.ExternalMatch{
			ID:       strings.TrimPrefix(s.AttrOr("id", ""), matchIDPrefix),
			HomeTeam: cleanText(s.Find(".event__participant--home").First().Text()),
			AwayTeam: cleanText(s.Find(".event__participant--away").First().Text()),
			Round:    round,
		}
		if item.HomeTeam == "" || item.AwayTeam == "" {
			return
		}

		if kickoff, err := time.Parse(kickoffLayout, cleanText(s.Find(".event__time").First().Text())); err == nil {
			date := time.Date(kickoff.Year(), kickoff.Month(), kickoff.Day(), 0, 0, 0, 0, time.UTC)
			item.Date = &date
			item.Time = kickoff.Format("15:04")
		}

		item.HomeScore = parseScore(s.Find(".event__score--home").First().Text())
		item.AwayScore = parseScore(s.Find(".event__score--away").First().Text())
		item.Status = matchStatus(cleanText(s.Find(".event__stage").First().Text()), item.HomeScore, item.AwayScore)
		if item.Status == statusPostponed {
			// abandoned matches keep the score at the moment play stopped
			item.HomeScore, item.AwayScore = nil, nil
		}

		out = append(out, item)
	})

	return out, nil
}

// parseMatchDetail fills venue info and the statistics grid of a match page.
func parseMatchDetail(body []byte, item *usecase.ExternalMatch) error {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return crerr.Wrap(err, "parse match page")
	}

	doc.Find("div.mi__item").Each(func(_ int, s *goquery.Selection) {
		label := strings.ToLower(strings.TrimSuffix(cleanText(s.Find(".mi__item__name").Text()), ":"))
		value := cleanText(s.Find(".mi__item__val").Text())
		if value == "" {
			return
		}
		switch label {
		case "venue", "stadium":
			item.Stadium = value
		case "referee":
			item.Referee = value
		case "attendance":
			if n, ok := parseInt(value); ok {
				item.Attendance = &n
			}
		}
	})

	doc.Find("div.stat__row").Each(func(_ int, s *goquery.Selection) {
		statType := cleanText(s.Find(".stat__categoryName").Text())
		if statType == "" {
			return
		}
		item.Stats = append(item.Stats, usecase.ExternalMatchStat{
			Type:      statType,
			HomeValue: cleanText(s.Find(".stat__homeValue").Text()),
			AwayValue: cleanText(s.Find(".stat__awayValue").Text()),
		})
	})

	return nil
}

// parseStandings reads the overall table. Value cells are ordered played,
// wins, draws, losses, goals "for:against", goal difference, points.
func parseStandings(body []byte) ([]usecase.ExternalStanding, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, crerr.Wrap(err, "parse standings page")
	}

	out := make([]usecase.ExternalStanding, 0, 20)
	doc.Find("div.ui-table__row").Each(func(_ int, s *goquery.Selection) {
		name := cleanText(s.Find(".tableCellParticipant__name").First().Text())
		values := s.Find(".table__cell--value")
		if name == "" || values.Length() < 7 {
			return
		}

		cell := func(i int) int {
			n, _ := parseInt(values.Eq(i).Text())
			return n
		}
		row := usecase.ExternalStanding{
			TeamName:       name,
			Played:         cell(0),
			Wins:           cell(1),
			Draws:          cell(2),
			Losses:         cell(3),
			GoalDifference: cell(5),
			Points:         cell(6),
		}
		row.Position, _ = parseInt(strings.TrimSuffix(cleanText(s.Find(".table__cell--rank").Text()), "."))

		if goalsFor, goalsAgainst, ok := strings.Cut(cleanText(values.Eq(4).Text()), ":"); ok {
			row.GoalsFor, _ = parseInt(goalsFor)
			row.GoalsAgainst, _ = parseInt(goalsAgainst)
		}

		out = append(out, row)
	})

	return out, nil
}

func matchStatus(stage string, home, away *int) string {
	stage = strings.ToLower(stage)
	switch {
	case strings.Contains(stage, "postp"), strings.Contains(stage, "cancel"), strings.Contains(stage, "abandon"):
		return statusPostponed
	case home != nil && away != nil:
		return statusFinished
	default:
		return statusScheduled
	}
}

func parseScore(raw string) *int {
	n, ok := parseInt(raw)
	if !ok {
		return nil
	}
	return &n
}

// parseInt accepts thousands separators such as "45,123" or "45 123".
func parseInt(raw string) (int, bool) {
	raw = strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', ' ', '\u00a0':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if raw == "" || raw == "-" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func cleanText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
