package team

import "testing"

func TestFilterNormalize(t *testing.T) {
	got := Filter{}.Normalize()
	if got.Limit != DefaultListLimit || got.Offset != 0 {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	got = Filter{Limit: 101, Offset: -1, Search: "  flu "}.Normalize()
	if got.Limit != MaxListLimit || got.Offset != 0 || got.Search != "flu" {
		t.Fatalf("unexpected normalized filter: %+v", got)
	}
}

func TestTeamValidate(t *testing.T) {
	if err := (Team{Name: "Palmeiras", LeagueID: "brasileirao", Season: "2023"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Team{Name: "Palmeiras", LeagueID: "brasileirao"}).Validate(); err == nil {
		t.Fatalf("expected error for missing season")
	}
}
