package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mheath/league_manager/model"
)

func (db *postgresDB) ReplaceMatchups(ctx context.Context, leagueID int32, fromWeek, toWeek int, matchups []model.Matchup) error {
	const del = `DELETE FROM matchups WHERE league_id=@leagueID AND week BETWEEN @fromWeek AND @toWeek`
	const insert = `INSERT INTO matchups (league_id, week, home_franchise_id, away_franchise_id, playoff)
			VALUES (@leagueID, @week, @homeID, @awayID, @playoff) RETURNING id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	delArgs := pgx.NamedArgs{"leagueID": leagueID, "fromWeek": fromWeek, "toWeek": toWeek}
	if _, err := tx.Exec(ctx, del, delArgs); err != nil {
		return fmt.Errorf("error deleting matchups for league %d weeks %d-%d: %w", leagueID, fromWeek, toWeek, err)
	}

	for i := range matchups {
		m := &matchups[i]
		args := pgx.NamedArgs{
			"leagueID": leagueID,
			"week":     m.Week,
			"homeID":   m.HomeFranchiseID,
			"awayID":   m.AwayFranchiseID,
			"playoff":  m.Playoff,
		}
		if err := tx.QueryRow(ctx, insert, args).Scan(&m.ID); err != nil {
			return fmt.Errorf("error inserting matchup for week %d: %w", m.Week, err)
		}
		m.LeagueID = leagueID
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing matchups: %w", err)
	}
	return nil
}

func (db *postgresDB) GetMatchups(ctx context.Context, leagueID int32, fromWeek, toWeek int) ([]model.Matchup, error) {
	const query = `SELECT id, league_id, week, home_franchise_id, away_franchise_id, playoff, home_score, away_score
					FROM matchups WHERE league_id=@leagueID AND week BETWEEN @fromWeek AND @toWeek
					ORDER BY week, id`

	args := pgx.NamedArgs{"leagueID": leagueID, "fromWeek": fromWeek, "toWeek": toWeek}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying matchups for league %d: %w", leagueID, err)
	}

	results := make([]model.Matchup, 0, 48)
	for rows.Next() {
		var m model.Matchup
		var home, away pgtype.Int4
		err := rows.Scan(&m.ID, &m.LeagueID, &m.Week, &m.HomeFranchiseID,
			&m.AwayFranchiseID, &m.Playoff, &home, &away)
		if err != nil {
			return nil, fmt.Errorf("error scanning matchup: %w", err)
		}
		if home.Valid {
			v := home.Int32
			m.HomeScore = &v
		}
		if away.Valid {
			v := away.Int32
			m.AwayScore = &v
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

func (db *postgresDB) RecordResult(ctx context.Context, matchupID int32, homeScore, awayScore int32) error {
	const query = `UPDATE matchups SET home_score=@homeScore, away_score=@awayScore WHERE id=@id`

	args := pgx.NamedArgs{"id": matchupID, "homeScore": homeScore, "awayScore": awayScore}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error recording result for matchup %d: %w", matchupID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMatchupNotFound
	}
	return nil
}
