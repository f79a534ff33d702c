package model

import "time"

// DraftPick is one cell on a league's draft board. A board is either entirely
// absent or holds the complete set of DraftRounds * franchiseCount picks.
type DraftPick struct {
	ID          int32
	LeagueID    int32
	Round       int
	PickInRound int
	OverallPick int
	FranchiseID int32
	TeamID      string // empty until a team has been selected
	PickedAt    *time.Time
}

// OverallPick computes the 1-based board-wide pick number from a round, a
// 1-based pick number within the round, and the franchise count.
func OverallPick(round, pickInRound, franchiseCount int) int {
	return (round-1)*franchiseCount + pickInRound
}

type SlotCategory string

const (
	SlotDuo   SlotCategory = "duo"
	SlotTrio  SlotCategory = "trio"
	SlotFlex  SlotCategory = "flex"
	SlotBench SlotCategory = "bench"
)

// SlotCategoryOrder is the order roster categories are filled when picks are
// distributed onto a roster.
var SlotCategoryOrder = []SlotCategory{SlotDuo, SlotTrio, SlotFlex, SlotBench}

// Slots returns the slot count in the template for the given category.
func (t RosterTemplate) Slots(c SlotCategory) int {
	switch c {
	case SlotDuo:
		return t.Duo
	case SlotTrio:
		return t.Trio
	case SlotFlex:
		return t.Flex
	case SlotBench:
		return t.Bench
	default:
		return 0
	}
}

type RosterSlot struct {
	ID          int32
	FranchiseID int32
	Week        int
	Category    SlotCategory
	SlotIndex   int
	TeamID      string
	Locked      bool
}
