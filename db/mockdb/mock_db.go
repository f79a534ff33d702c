package mockdb

import (
	"context"

	"github.com/mheath/league_manager/db"
	"github.com/mheath/league_manager/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (d *DB) AddLeague(ctx context.Context, l *model.League) error {
	args := d.Called(ctx, l)
	return args.Error(0)
}

func (d *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := d.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (d *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := d.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}
	return res, args.Error(1)
}

func (d *DB) ArchiveLeague(ctx context.Context, id int32) error {
	args := d.Called(ctx, id)
	return args.Error(0)
}

func (d *DB) GetFranchises(ctx context.Context, leagueID int32) ([]model.Franchise, error) {
	args := d.Called(ctx, leagueID)

	var res []model.Franchise
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Franchise)
	}
	return res, args.Error(1)
}

func (d *DB) GetAccountByExternalID(ctx context.Context, externalID string) (*model.Account, error) {
	args := d.Called(ctx, externalID)

	var a *model.Account
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Account)
	}
	return a, args.Error(1)
}

func (d *DB) GetDraftBoard(ctx context.Context, leagueID int32) ([]model.DraftPick, error) {
	args := d.Called(ctx, leagueID)

	var res []model.DraftPick
	if args.Get(0) != nil {
		res = args.Get(0).([]model.DraftPick)
	}
	return res, args.Error(1)
}

func (d *DB) GetRosterSlots(ctx context.Context, franchiseID int32, week int) ([]model.RosterSlot, error) {
	args := d.Called(ctx, franchiseID, week)

	var res []model.RosterSlot
	if args.Get(0) != nil {
		res = args.Get(0).([]model.RosterSlot)
	}
	return res, args.Error(1)
}

func (d *DB) ReplaceMatchups(ctx context.Context, leagueID int32, fromWeek, toWeek int, matchups []model.Matchup) error {
	args := d.Called(ctx, leagueID, fromWeek, toWeek, matchups)
	return args.Error(0)
}

func (d *DB) GetMatchups(ctx context.Context, leagueID int32, fromWeek, toWeek int) ([]model.Matchup, error) {
	args := d.Called(ctx, leagueID, fromWeek, toWeek)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}
	return res, args.Error(1)
}

func (d *DB) RecordResult(ctx context.Context, matchupID int32, homeScore, awayScore int32) error {
	args := d.Called(ctx, matchupID, homeScore, awayScore)
	return args.Error(0)
}

func (d *DB) BeginImport(ctx context.Context, leagueID int32) (db.ImportTx, error) {
	args := d.Called(ctx, leagueID)

	var tx db.ImportTx
	if args.Get(0) != nil {
		tx = args.Get(0).(db.ImportTx)
	}
	return tx, args.Error(1)
}

type ImportTx struct {
	mock.Mock
}

func (t *ImportTx) UpsertAccount(ctx context.Context, externalID, displayName string) (*model.Account, bool, error) {
	args := t.Called(ctx, externalID, displayName)

	var a *model.Account
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Account)
	}
	return a, args.Bool(1), args.Error(2)
}

func (t *ImportTx) GetFranchise(ctx context.Context, leagueID, accountID int32) (*model.Franchise, error) {
	args := t.Called(ctx, leagueID, accountID)

	var f *model.Franchise
	if args.Get(0) != nil {
		f = args.Get(0).(*model.Franchise)
	}
	return f, args.Error(1)
}

func (t *ImportTx) InsertFranchise(ctx context.Context, f *model.Franchise) error {
	args := t.Called(ctx, f)
	return args.Error(0)
}

func (t *ImportTx) UpdateFranchise(ctx context.Context, f *model.Franchise) error {
	args := t.Called(ctx, f)
	return args.Error(0)
}

func (t *ImportTx) DeleteDraftBoard(ctx context.Context, leagueID int32) error {
	args := t.Called(ctx, leagueID)
	return args.Error(0)
}

func (t *ImportTx) InsertDraftPicks(ctx context.Context, picks []model.DraftPick) error {
	args := t.Called(ctx, picks)
	return args.Error(0)
}

func (t *ImportTx) DeleteRosterSlots(ctx context.Context, franchiseID int32, week int) error {
	args := t.Called(ctx, franchiseID, week)
	return args.Error(0)
}

func (t *ImportTx) InsertRosterSlots(ctx context.Context, slots []model.RosterSlot) error {
	args := t.Called(ctx, slots)
	return args.Error(0)
}

func (t *ImportTx) CompleteBoard(ctx context.Context, leagueID int32) error {
	args := t.Called(ctx, leagueID)
	return args.Error(0)
}

func (t *ImportTx) Commit(ctx context.Context) error {
	args := t.Called(ctx)
	return args.Error(0)
}

func (t *ImportTx) Rollback(ctx context.Context) error {
	args := t.Called(ctx)
	return args.Error(0)
}