package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mheath/league_manager/model"
)

// importLockClass namespaces the advisory locks used to serialize imports so
// they cannot collide with other advisory lock users on the same database.
const importLockClass = 0x11A6

func (db *postgresDB) BeginImport(ctx context.Context, leagueID int32) (ImportTx, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting import transaction: %w", err)
	}

	// Bound the advisory-lock wait so a stuck import surfaces as a
	// retryable timeout instead of hanging the caller.
	if _, err := tx.Exec(ctx, `SET LOCAL lock_timeout = '5s'`); err != nil {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("error setting lock timeout: %w", err)
	}

	const lock = `SELECT pg_advisory_xact_lock(@class, @leagueID)`
	args := pgx.NamedArgs{"class": importLockClass, "leagueID": leagueID}
	if _, err := tx.Exec(ctx, lock, args); err != nil {
		tx.Rollback(ctx)
		return nil, wrapLockErr(err, leagueID)
	}

	return &importTx{tx: tx, clock: db.clock}, nil
}

type importTx struct {
	tx    pgx.Tx
	clock clock.Clock
}

func (t *importTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing import: %w", err)
	}
	return nil
}

func (t *importTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *importTx) UpsertAccount(ctx context.Context, externalID, displayName string) (*model.Account, bool, error) {
	const find = `SELECT id, external_id, display_name FROM accounts WHERE external_id=@externalID`
	const insert = `INSERT INTO accounts (external_id, display_name)
			VALUES (@externalID, @displayName) RETURNING id`

	var a model.Account
	row := t.tx.QueryRow(ctx, find, pgx.NamedArgs{"externalID": externalID})
	err := row.Scan(&a.ID, &a.ExternalID, &a.DisplayName)
	if err == nil {
		return &a, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("error looking up account %s: %w", externalID, err)
	}

	a.ExternalID = externalID
	a.DisplayName = displayName
	args := pgx.NamedArgs{"externalID": externalID, "displayName": displayName}
	if err := t.tx.QueryRow(ctx, insert, args).Scan(&a.ID); err != nil {
		return nil, false, fmt.Errorf("error inserting account %s: %w", externalID, err)
	}
	return &a, true, nil
}

func (t *importTx) GetFranchise(ctx context.Context, leagueID, accountID int32) (*model.Franchise, error) {
	query := `SELECT ` + franchiseColumns + ` FROM franchises
				WHERE league_id=@leagueID AND account_id=@accountID`

	args := pgx.NamedArgs{"leagueID": leagueID, "accountID": accountID}
	f, err := scanFranchise(t.tx.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFranchiseNotFound
		}
		return nil, fmt.Errorf("error scanning franchise for league %d account %d: %w", leagueID, accountID, err)
	}
	return f, nil
}

func (t *importTx) InsertFranchise(ctx context.Context, f *model.Franchise) error {
	const insert = `INSERT INTO franchises (
			league_id, account_id, name, short_code, draft_position,
			faab_balance, waiver_priority
		) VALUES (
			@leagueID, @accountID, @name, @shortCode, @draftPosition,
			@faabBalance, @waiverPriority
		) RETURNING id`

	args := pgx.NamedArgs{
		"leagueID":       f.LeagueID,
		"accountID":      f.AccountID,
		"name":           f.Name,
		"shortCode":      f.ShortCode,
		"draftPosition":  f.DraftPosition,
		"faabBalance":    nullableInt(f.FAABBalance),
		"waiverPriority": nullableInt(f.WaiverPriority),
	}
	if err := t.tx.QueryRow(ctx, insert, args).Scan(&f.ID); err != nil {
		return fmt.Errorf("error inserting franchise %s: %w", f.Name, err)
	}
	return nil
}

// UpdateFranchise overwrites name, short code, and draft position only.
// Waiver state belongs to the franchise once created and is never touched on
// re-import.
func (t *importTx) UpdateFranchise(ctx context.Context, f *model.Franchise) error {
	const update = `UPDATE franchises
			SET name=@name, short_code=@shortCode, draft_position=@draftPosition, updated=@updated
			WHERE id=@id`

	args := pgx.NamedArgs{
		"id":            f.ID,
		"name":          f.Name,
		"shortCode":     f.ShortCode,
		"draftPosition": f.DraftPosition,
		"updated": pgtype.Timestamptz{
			Time:  t.clock.Now().UTC(),
			Valid: true,
		},
	}
	if _, err := t.tx.Exec(ctx, update, args); err != nil {
		return fmt.Errorf("error updating franchise %d: %w", f.ID, err)
	}
	return nil
}

func (t *importTx) DeleteDraftBoard(ctx context.Context, leagueID int32) error {
	const del = `DELETE FROM draft_picks WHERE league_id=@leagueID`

	if _, err := t.tx.Exec(ctx, del, pgx.NamedArgs{"leagueID": leagueID}); err != nil {
		return fmt.Errorf("error deleting draft board for league %d: %w", leagueID, err)
	}
	return nil
}

func (t *importTx) InsertDraftPicks(ctx context.Context, picks []model.DraftPick) error {
	const insert = `INSERT INTO draft_picks (
			league_id, round, pick_in_round, overall_pick, franchise_id, team_id, picked_at
		) VALUES (
			@leagueID, @round, @pickInRound, @overallPick, @franchiseID, @teamID, @pickedAt
		)`

	for i := range picks {
		p := &picks[i]
		pickedAt := pgtype.Timestamptz{}
		if p.PickedAt != nil {
			pickedAt = pgtype.Timestamptz{Time: p.PickedAt.UTC(), Valid: true}
		}
		args := pgx.NamedArgs{
			"leagueID":    p.LeagueID,
			"round":       p.Round,
			"pickInRound": p.PickInRound,
			"overallPick": p.OverallPick,
			"franchiseID": p.FranchiseID,
			"teamID": sql.NullString{
				String: p.TeamID,
				Valid:  p.TeamID != "",
			},
			"pickedAt": pickedAt,
		}
		if _, err := t.tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting draft pick %d: %w", p.OverallPick, err)
		}
	}
	return nil
}

func (t *importTx) DeleteRosterSlots(ctx context.Context, franchiseID int32, week int) error {
	const del = `DELETE FROM roster_slots WHERE franchise_id=@franchiseID AND week=@week`

	args := pgx.NamedArgs{"franchiseID": franchiseID, "week": week}
	if _, err := t.tx.Exec(ctx, del, args); err != nil {
		return fmt.Errorf("error deleting roster slots for franchise %d week %d: %w", franchiseID, week, err)
	}
	return nil
}

func (t *importTx) InsertRosterSlots(ctx context.Context, slots []model.RosterSlot) error {
	const insert = `INSERT INTO roster_slots (
			franchise_id, week, category, slot_index, team_id, locked
		) VALUES (
			@franchiseID, @week, @category, @slotIndex, @teamID, @locked
		)`

	for i := range slots {
		s := &slots[i]
		args := pgx.NamedArgs{
			"franchiseID": s.FranchiseID,
			"week":        s.Week,
			"category":    string(s.Category),
			"slotIndex":   s.SlotIndex,
			"teamID": sql.NullString{
				String: s.TeamID,
				Valid:  s.TeamID != "",
			},
			"locked": s.Locked,
		}
		if _, err := t.tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting roster slot for franchise %d: %w", s.FranchiseID, err)
		}
	}
	return nil
}

func (t *importTx) CompleteBoard(ctx context.Context, leagueID int32) error {
	const update = `UPDATE leagues SET board_state=@state, pick_deadline=NULL WHERE id=@id`

	args := pgx.NamedArgs{"id": leagueID, "state": string(model.BoardCompleted)}
	tag, err := t.tx.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error marking board completed for league %d: %w", leagueID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func nullableInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
