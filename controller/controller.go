package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/itbasis/go-clock"
	"github.com/mheath/league_manager/db"
	"github.com/mheath/league_manager/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	AddLeague(ctx context.Context, name, year string, capacity int, draftMode, waiverMode string) (*model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error
	GetFranchises(ctx context.Context, leagueID int32) ([]model.Franchise, error)

	// ParseSheet turns a raw draft-sheet export into structured per-team
	// columns. Structural problems come back as issues in the result, never
	// as a Go error.
	ParseSheet(r io.Reader) *model.SheetParseResult

	// PlanImport validates parsed columns against current league state
	// without mutating anything. Callers should only run ExecuteImport when
	// the plan comes back valid.
	PlanImport(ctx context.Context, leagueID int32, columns []model.SheetColumn) (*model.ImportPlan, error)

	// ExecuteImport applies a draft sheet inside one transaction: accounts
	// and franchises are upserted, the draft board is rebuilt, and roster
	// slots are optionally distributed. Either everything commits or
	// nothing does.
	ExecuteImport(ctx context.Context, leagueID int32, columns []model.SheetColumn, generateRosterSlots bool) (*model.ImportResult, error)

	// GenerateSchedule replaces the league's regular-season matchups with a
	// fresh round-robin pairing. Shuffling the franchise order is explicit;
	// with shuffle false the schedule is deterministic in draft order.
	GenerateSchedule(ctx context.Context, leagueID int32, shuffle bool) ([]model.Matchup, error)

	GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error)
	RecordResult(ctx context.Context, matchupID int32, homeScore, awayScore int32) error

	// GetStandings recomputes standings from recorded regular-season
	// results, sorted by wins and then points-for.
	GetStandings(ctx context.Context, leagueID int32) ([]model.Standing, error)

	// SeedPlayoffs writes the first playoff week from the top-8 standings
	// cut: 1v8, 2v7, 3v6, 4v5.
	SeedPlayoffs(ctx context.Context, leagueID int32) ([]model.Matchup, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
}

func New(clock clock.Clock, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}

func (c *controller) AddLeague(ctx context.Context, name, year string, capacity int, draftMode, waiverMode string) (*model.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("league name must be provided")
	}
	if capacity <= 0 || capacity%2 != 0 {
		return nil, fmt.Errorf("league capacity must be a positive even number, got %d", capacity)
	}

	l := &model.League{
		Name:       name,
		Year:       year,
		Capacity:   capacity,
		DraftMode:  model.ParseDraftMode(draftMode),
		WaiverMode: model.ParseWaiverMode(waiverMode),
		FAABBudget: 100,
		BoardState: model.BoardNotStarted,
		Weeks:      model.RegularSeasonWeeks,
		Template:   model.RosterTemplate{Duo: 3, Trio: 2, Flex: 1, Bench: 2},
	}

	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}
	return l, nil
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) ArchiveLeague(ctx context.Context, id int32) error {
	return c.db.ArchiveLeague(ctx, id)
}

func (c *controller) GetFranchises(ctx context.Context, leagueID int32) ([]model.Franchise, error) {
	return c.db.GetFranchises(ctx, leagueID)
}

func (c *controller) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	return c.db.GetMatchups(ctx, leagueID, week, week)
}

func (c *controller) RecordResult(ctx context.Context, matchupID int32, homeScore, awayScore int32) error {
	if homeScore < 0 || awayScore < 0 {
		return errors.New("scores must not be negative")
	}
	return c.db.RecordResult(ctx, matchupID, homeScore, awayScore)
}
