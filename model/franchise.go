package model

import (
	"strings"
	"time"
	"unicode"
)

type Account struct {
	ID          int32
	ExternalID  string
	DisplayName string
}

// Franchise is a participant's team within one league. Exactly one franchise
// exists per (league, account) pair. FAABBalance and WaiverPriority are
// mutually exclusive; which one is set depends on the league's waiver mode.
type Franchise struct {
	ID             int32
	LeagueID       int32
	AccountID      int32
	Name           string
	ShortCode      string
	DraftPosition  int
	FAABBalance    *int
	WaiverPriority *int
	Created        time.Time
	Updated        time.Time
}

const shortCodeFiller = 'X'

// DeriveShortCode builds the 3-character display code for a franchise name.
// Three or more words use the first letter of each of the first three words,
// two words use the first letter of the first plus the first two of the
// second, and a single word uses its first three characters, padded with a
// filler if the word is shorter.
func DeriveShortCode(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, name)

	words := strings.Fields(cleaned)
	var code []rune
	switch {
	case len(words) >= 3:
		code = []rune{firstRune(words[0]), firstRune(words[1]), firstRune(words[2])}
	case len(words) == 2:
		code = append([]rune{firstRune(words[0])}, firstRunes(words[1], 2)...)
	case len(words) == 1:
		code = firstRunes(words[0], 3)
	}

	for len(code) < 3 {
		code = append(code, shortCodeFiller)
	}
	return strings.ToUpper(string(code))
}

func firstRune(s string) rune {
	return []rune(s)[0]
}

func firstRunes(s string, n int) []rune {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return r
}
