package model

import (
	"strings"
	"time"
)

// RegularSeasonWeeks is the fixed length of a regular season. The schedule
// generator and the standings calculation both assume this value.
const RegularSeasonWeeks = 8

// PlayoffPoolSize is the number of franchises seeded into the playoff bracket.
const PlayoffPoolSize = 8

// DraftRounds is the number of rounds on a full draft board.
const DraftRounds = 8

type DraftMode string

const (
	DraftSnake  DraftMode = "snake"
	DraftLinear DraftMode = "linear"
)

func ParseDraftMode(s string) DraftMode {
	if strings.ToLower(s) == string(DraftLinear) {
		return DraftLinear
	}
	return DraftSnake
}

type WaiverMode string

const (
	WaiverFAAB     WaiverMode = "faab"
	WaiverPriority WaiverMode = "priority"
)

func ParseWaiverMode(s string) WaiverMode {
	if strings.ToLower(s) == string(WaiverPriority) {
		return WaiverPriority
	}
	return WaiverFAAB
}

type BoardState string

const (
	BoardNotStarted BoardState = "not_started"
	BoardInProgress BoardState = "in_progress"
	BoardPaused     BoardState = "paused"
	BoardCompleted  BoardState = "completed"
)

// RosterTemplate is the number of roster slots per category. The categories
// are filled in a fixed order during an import: duo, trio, flex, bench.
type RosterTemplate struct {
	Duo   int
	Trio  int
	Flex  int
	Bench int
}

func (t RosterTemplate) Total() int {
	return t.Duo + t.Trio + t.Flex + t.Bench
}

type League struct {
	ID           int32
	Name         string
	Year         string
	Capacity     int
	DraftMode    DraftMode
	WaiverMode   WaiverMode
	FAABBudget   int
	BoardState   BoardState
	Weeks        int
	Template     RosterTemplate
	PickDeadline *time.Time
	Archived     bool
}

type Matchup struct {
	ID              int32
	LeagueID        int32
	Week            int
	HomeFranchiseID int32
	AwayFranchiseID int32
	Playoff         bool
	HomeScore       *int32
	AwayScore       *int32
}

// Played reports whether both scores have been recorded.
func (m *Matchup) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Standing is derived from matchup results and never stored, so the numbers
// cannot drift from the recorded scores.
type Standing struct {
	FranchiseID   int32
	FranchiseName string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     int32
	PointsAgainst int32
}
