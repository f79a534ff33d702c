package db

import (
	"context"

	"github.com/mheath/league_manager/model"
)

type DB interface {
	AddLeague(ctx context.Context, l *model.League) error
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error

	// Franchises are returned ordered by draft position.
	GetFranchises(ctx context.Context, leagueID int32) ([]model.Franchise, error)
	GetAccountByExternalID(ctx context.Context, externalID string) (*model.Account, error)

	// The full board ordered by overall pick. An empty slice means the league
	// has no board.
	GetDraftBoard(ctx context.Context, leagueID int32) ([]model.DraftPick, error)
	GetRosterSlots(ctx context.Context, franchiseID int32, week int) ([]model.RosterSlot, error)

	// ReplaceMatchups deletes every matchup in [fromWeek, toWeek] for the
	// league and inserts the given ones in a single transaction.
	ReplaceMatchups(ctx context.Context, leagueID int32, fromWeek, toWeek int, matchups []model.Matchup) error
	GetMatchups(ctx context.Context, leagueID int32, fromWeek, toWeek int) ([]model.Matchup, error)
	RecordResult(ctx context.Context, matchupID int32, homeScore, awayScore int32) error

	// BeginImport opens the transactional unit of work a draft import runs
	// in. It takes an advisory lock keyed by the league id with a bounded
	// wait, so two imports for the same league cannot interleave.
	BeginImport(ctx context.Context, leagueID int32) (ImportTx, error)
}

// ImportTx is the set of writes a draft import performs. Everything either
// commits together or not at all.
type ImportTx interface {
	// UpsertAccount finds or creates an account by external identifier and
	// reports whether it was created.
	UpsertAccount(ctx context.Context, externalID, displayName string) (*model.Account, bool, error)

	// GetFranchise returns ErrFranchiseNotFound when no franchise exists for
	// the (league, account) pair.
	GetFranchise(ctx context.Context, leagueID, accountID int32) (*model.Franchise, error)
	InsertFranchise(ctx context.Context, f *model.Franchise) error
	UpdateFranchise(ctx context.Context, f *model.Franchise) error

	DeleteDraftBoard(ctx context.Context, leagueID int32) error
	InsertDraftPicks(ctx context.Context, picks []model.DraftPick) error

	DeleteRosterSlots(ctx context.Context, franchiseID int32, week int) error
	InsertRosterSlots(ctx context.Context, slots []model.RosterSlot) error

	// CompleteBoard marks the league's board state completed and clears any
	// pending pick deadline.
	CompleteBoard(ctx context.Context, leagueID int32) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
