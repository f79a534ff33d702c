package mockcontroller

import (
	"context"
	"io"

	"github.com/mheath/league_manager/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) AddLeague(ctx context.Context, name, year string, capacity int, draftMode, waiverMode string) (*model.League, error) {
	args := c.Called(ctx, name, year, capacity, draftMode, waiverMode)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}
	return res, args.Error(1)
}

func (c *C) ArchiveLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) GetFranchises(ctx context.Context, leagueID int32) ([]model.Franchise, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Franchise
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Franchise)
	}
	return res, args.Error(1)
}

func (c *C) ParseSheet(r io.Reader) *model.SheetParseResult {
	args := c.Called(r)
	return args.Get(0).(*model.SheetParseResult)
}

func (c *C) PlanImport(ctx context.Context, leagueID int32, columns []model.SheetColumn) (*model.ImportPlan, error) {
	args := c.Called(ctx, leagueID, columns)

	var p *model.ImportPlan
	if args.Get(0) != nil {
		p = args.Get(0).(*model.ImportPlan)
	}
	return p, args.Error(1)
}

func (c *C) ExecuteImport(ctx context.Context, leagueID int32, columns []model.SheetColumn, generateRosterSlots bool) (*model.ImportResult, error) {
	args := c.Called(ctx, leagueID, columns, generateRosterSlots)

	var r *model.ImportResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ImportResult)
	}
	return r, args.Error(1)
}

func (c *C) GenerateSchedule(ctx context.Context, leagueID int32, shuffle bool) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID, shuffle)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}
	return res, args.Error(1)
}

func (c *C) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}
	return res, args.Error(1)
}

func (c *C) RecordResult(ctx context.Context, matchupID int32, homeScore, awayScore int32) error {
	args := c.Called(ctx, matchupID, homeScore, awayScore)
	return args.Error(0)
}

func (c *C) GetStandings(ctx context.Context, leagueID int32) ([]model.Standing, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Standing
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Standing)
	}
	return res, args.Error(1)
}

func (c *C) SeedPlayoffs(ctx context.Context, leagueID int32) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}
	return res, args.Error(1)
}