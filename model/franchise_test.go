package model

import "testing"

func TestDeriveShortCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "The Flying Dutchmen", expected: "TFD"},
		{input: "Sunday Scaries", expected: "SSC"},
		{input: "Juggernauts", expected: "JUG"},
		{input: "Ox", expected: "OXX"},
		{input: "A", expected: "AXX"},
		{input: "four word team name", expected: "FWT"},
		{input: "  padded   spacing  ", expected: "PSP"},
		{input: "100 Thieves Fans", expected: "1TF"},
		{input: "don't@me", expected: "DON"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if code := DeriveShortCode(tc.input); code != tc.expected {
				t.Errorf("DeriveShortCode(%q) = %q, expected %q", tc.input, code, tc.expected)
			}
		})
	}
}

func TestOverallPick(t *testing.T) {
	tests := []struct {
		round, pickInRound, count, expected int
	}{
		{round: 1, pickInRound: 1, count: 12, expected: 1},
		{round: 1, pickInRound: 12, count: 12, expected: 12},
		{round: 2, pickInRound: 1, count: 12, expected: 13},
		{round: 8, pickInRound: 12, count: 12, expected: 96},
		{round: 3, pickInRound: 4, count: 10, expected: 24},
	}

	for _, tc := range tests {
		if got := OverallPick(tc.round, tc.pickInRound, tc.count); got != tc.expected {
			t.Errorf("OverallPick(%d, %d, %d) = %d, expected %d",
				tc.round, tc.pickInRound, tc.count, got, tc.expected)
		}
	}
}
