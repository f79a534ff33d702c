package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mheath/league_manager/model"
)

const leagueColumns = `id, name, year, capacity, draft_mode, waiver_mode, faab_budget,
		board_state, weeks, duo_slots, trio_slots, flex_slots, bench_slots,
		pick_deadline, archived`

func (db *postgresDB) AddLeague(ctx context.Context, l *model.League) error {
	const query = `INSERT INTO leagues (
			name, year, capacity, draft_mode, waiver_mode, faab_budget,
			board_state, weeks, duo_slots, trio_slots, flex_slots, bench_slots
		) VALUES (
			@name, @year, @capacity, @draftMode, @waiverMode, @faabBudget,
			@boardState, @weeks, @duoSlots, @trioSlots, @flexSlots, @benchSlots
		) RETURNING id`

	if l.Capacity <= 0 {
		return errors.New("league capacity must be positive")
	}
	if l.Weeks <= 0 {
		l.Weeks = model.RegularSeasonWeeks
	}
	if l.BoardState == "" {
		l.BoardState = model.BoardNotStarted
	}

	args := pgx.NamedArgs{
		"name":       l.Name,
		"year":       l.Year,
		"capacity":   l.Capacity,
		"draftMode":  string(l.DraftMode),
		"waiverMode": string(l.WaiverMode),
		"faabBudget": l.FAABBudget,
		"boardState": string(l.BoardState),
		"weeks":      l.Weeks,
		"duoSlots":   l.Template.Duo,
		"trioSlots":  l.Template.Trio,
		"flexSlots":  l.Template.Flex,
		"benchSlots": l.Template.Bench,
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&l.ID); err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}
	return nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	l, err := scanLeague(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}
	return l, nil
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues WHERE archived=false ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	results := make([]model.League, 0, 8)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}
	return results, rows.Err()
}

func (db *postgresDB) ArchiveLeague(ctx context.Context, id int32) error {
	const query = `UPDATE leagues SET archived=true WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error archiving league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var l model.League
	var draftMode, waiverMode, boardState string
	var deadline pgtype.Timestamptz
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Year,
		&l.Capacity,
		&draftMode,
		&waiverMode,
		&l.FAABBudget,
		&boardState,
		&l.Weeks,
		&l.Template.Duo,
		&l.Template.Trio,
		&l.Template.Flex,
		&l.Template.Bench,
		&deadline,
		&l.Archived)
	if err != nil {
		return nil, err
	}

	l.DraftMode = model.ParseDraftMode(draftMode)
	l.WaiverMode = model.ParseWaiverMode(waiverMode)
	l.BoardState = model.BoardState(boardState)
	if deadline.Valid {
		t := deadline.Time
		l.PickDeadline = &t
	}
	return &l, nil
}

const franchiseColumns = `id, league_id, account_id, name, short_code, draft_position,
		faab_balance, waiver_priority, created, updated`

func (db *postgresDB) GetFranchises(ctx context.Context, leagueID int32) ([]model.Franchise, error) {
	query := `SELECT ` + franchiseColumns + ` FROM franchises
				WHERE league_id=@leagueID ORDER BY draft_position`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying franchises for league %d: %w", leagueID, err)
	}

	results := make([]model.Franchise, 0, 12)
	for rows.Next() {
		f, err := scanFranchise(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *f)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetAccountByExternalID(ctx context.Context, externalID string) (*model.Account, error) {
	const query = `SELECT id, external_id, display_name FROM accounts WHERE external_id=@externalID`

	var a model.Account
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"externalID": externalID})
	if err := row.Scan(&a.ID, &a.ExternalID, &a.DisplayName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("error scanning account %s: %w", externalID, err)
	}
	return &a, nil
}

func (db *postgresDB) GetDraftBoard(ctx context.Context, leagueID int32) ([]model.DraftPick, error) {
	const query = `SELECT id, league_id, round, pick_in_round, overall_pick, franchise_id, team_id, picked_at
					FROM draft_picks WHERE league_id=@leagueID ORDER BY overall_pick`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying draft board for league %d: %w", leagueID, err)
	}

	picks := make([]model.DraftPick, 0, 96)
	for rows.Next() {
		var p model.DraftPick
		var teamID pgtype.Text
		var pickedAt pgtype.Timestamptz
		err := rows.Scan(&p.ID, &p.LeagueID, &p.Round, &p.PickInRound, &p.OverallPick,
			&p.FranchiseID, &teamID, &pickedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning draft pick: %w", err)
		}
		p.TeamID = teamID.String
		if pickedAt.Valid {
			t := pickedAt.Time
			p.PickedAt = &t
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

func (db *postgresDB) GetRosterSlots(ctx context.Context, franchiseID int32, week int) ([]model.RosterSlot, error) {
	const query = `SELECT id, franchise_id, week, category, slot_index, team_id, locked
					FROM roster_slots WHERE franchise_id=@franchiseID AND week=@week
					ORDER BY category, slot_index`

	args := pgx.NamedArgs{"franchiseID": franchiseID, "week": week}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying roster slots for franchise %d: %w", franchiseID, err)
	}

	slots := make([]model.RosterSlot, 0, 8)
	for rows.Next() {
		var s model.RosterSlot
		var category string
		var teamID pgtype.Text
		err := rows.Scan(&s.ID, &s.FranchiseID, &s.Week, &category, &s.SlotIndex, &teamID, &s.Locked)
		if err != nil {
			return nil, fmt.Errorf("error scanning roster slot: %w", err)
		}
		s.Category = model.SlotCategory(category)
		s.TeamID = teamID.String
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func scanFranchise(row pgx.Row) (*model.Franchise, error) {
	var f model.Franchise
	var faab, priority pgtype.Int4
	var updated pgtype.Timestamptz
	err := row.Scan(&f.ID, &f.LeagueID, &f.AccountID, &f.Name, &f.ShortCode,
		&f.DraftPosition, &faab, &priority, &f.Created, &updated)
	if err != nil {
		return nil, err
	}
	if faab.Valid {
		v := int(faab.Int32)
		f.FAABBalance = &v
	}
	if priority.Valid {
		v := int(priority.Int32)
		f.WaiverPriority = &v
	}
	if updated.Valid {
		f.Updated = updated.Time
	}
	return &f, nil
}
