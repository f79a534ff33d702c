package model

import "testing"

func TestResolveTeamName(t *testing.T) {
	tests := []struct {
		input      string
		confidence MatchConfidence
		teamID     string
	}{
		// league code + name, in assorted formatting
		{input: "NA Cloud9", confidence: MatchHigh, teamID: "NACloud9"},
		{input: "na cloud9", confidence: MatchHigh, teamID: "NACloud9"},
		{input: "NA-Cloud9", confidence: MatchHigh, teamID: "NACloud9"},
		{input: "KR T1", confidence: MatchHigh, teamID: "KRT1"},
		{input: "kr gen g", confidence: MatchHigh, teamID: "KRGenG"},
		{input: "EU SK Gaming", confidence: MatchHigh, teamID: "EUSKGaming"},
		{input: "CN Top Esports", confidence: MatchHigh, teamID: "CNTopEsports"},
		{input: "BR Red Canids!", confidence: MatchHigh, teamID: "BRRedCanids"},
		{input: "NA Team Liquid", confidence: MatchHigh, teamID: "NATeamLiquid"},
		{input: "NA 100 Thieves", confidence: MatchHigh, teamID: "NA100Thieves"},

		// bare names fall back to a catalog-wide lookup
		{input: "Cloud9", confidence: MatchLow, teamID: "NACloud9"},
		{input: "Fnatic", confidence: MatchLow, teamID: "EUFnatic"},
		{input: "t1", confidence: MatchLow, teamID: "KRT1"},
		{input: "Vivo Keyd", confidence: MatchLow, teamID: "BRVivoKeyd"},

		// no match
		{input: "", confidence: MatchNone},
		{input: "   ", confidence: MatchNone},
		{input: "NA Nonexistent", confidence: MatchNone},
		{input: "Chaos EC", confidence: MatchNone},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			res := ResolveTeamName(tc.input)
			if res.Confidence != tc.confidence {
				t.Fatalf("confidence for %q: expected %s, got %s", tc.input, tc.confidence, res.Confidence)
			}
			if tc.confidence == MatchNone {
				if res.Team != nil {
					t.Errorf("expected no team for %q, got %s", tc.input, res.Team.ID)
				}
				return
			}
			if res.Team == nil {
				t.Fatalf("expected team %s for %q, got nil", tc.teamID, tc.input)
			}
			if res.Team.ID != tc.teamID {
				t.Errorf("expected team %s for %q, got %s", tc.teamID, tc.input, res.Team.ID)
			}
		})
	}
}

func TestLookupTeam(t *testing.T) {
	if team := LookupTeam("KRT1"); team == nil || team.Name != "T1" {
		t.Errorf("expected to find T1, got %v", team)
	}
	if team := LookupTeam("XXNothing"); team != nil {
		t.Errorf("expected nil for unknown id, got %v", team)
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, team := range proTeams {
		if seen[team.ID] {
			t.Errorf("duplicate canonical id: %s", team.ID)
		}
		seen[team.ID] = true

		res := ResolveTeamName(team.League + " " + team.Name)
		if res.Confidence != MatchHigh || res.Team == nil || res.Team.ID != team.ID {
			t.Errorf("%s %s did not round-trip through ResolveTeamName: %+v", team.League, team.Name, res)
		}
	}
}
