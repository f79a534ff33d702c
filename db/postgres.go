package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLeagueNotFound    = errors.New("league not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrFranchiseNotFound = errors.New("franchise not found")
	ErrMatchupNotFound   = errors.New("matchup not found")

	// ErrImportLockTimeout means another import for the same league held the
	// lock past the bounded wait. The operation is safe to retry.
	ErrImportLockTimeout = errors.New("timed out waiting for league import lock")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// Postgres raises 55P03 when lock_timeout expires before a lock is granted.
const lockNotAvailableCode = "55P03"

func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == lockNotAvailableCode
}

func wrapLockErr(err error, leagueID int32) error {
	if isLockTimeout(err) {
		return fmt.Errorf("league %d: %w", leagueID, ErrImportLockTimeout)
	}
	return err
}
