package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mheath/league_manager/db"
	"github.com/mheath/league_manager/model"
)

// importTimeout bounds a whole import run. A full league is hundreds of rows,
// so tens of seconds is generous; hitting it means something is stuck.
const importTimeout = 30 * time.Second

// ErrImportTimeout means the import hit its overall deadline and was rolled
// back. Nothing was written; the operation is safe to retry.
var ErrImportTimeout = errors.New("import timed out")

// ExecuteImport applies parsed sheet columns to a league inside a single
// transaction. Accounts and franchises are upserted, the draft board is
// deleted and rebuilt in draft order, and roster slots are optionally
// redistributed. Re-running the same sheet yields the same final state.
//
// Callers are expected to have run PlanImport first and to only call this
// when the plan was valid; known errors are not re-validated here.
func (c *controller) ExecuteImport(ctx context.Context, leagueID int32, columns []model.SheetColumn, generateRosterSlots bool) (*model.ImportResult, error) {
	runID := uuid.New()
	log.Printf("import %s: starting for league %d with %d columns", runID, leagueID, len(columns))

	ctx, cancel := context.WithTimeout(ctx, importTimeout)
	defer cancel()

	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading league %d: %w", leagueID, err)
	}

	tx, err := c.db.BeginImport(ctx, leagueID)
	if err != nil {
		return nil, deadlineErr(ctx, err)
	}
	defer tx.Rollback(ctx)

	result := &model.ImportResult{}

	franchises, err := c.upsertTeams(ctx, tx, league, columns, result)
	if err != nil {
		return nil, deadlineErr(ctx, err)
	}

	if err := c.rebuildDraftBoard(ctx, tx, league, columns, franchises, result); err != nil {
		return nil, deadlineErr(ctx, err)
	}

	if generateRosterSlots {
		if err := c.distributeRosters(ctx, tx, league, columns, franchises, result); err != nil {
			return nil, deadlineErr(ctx, err)
		}
	}

	if err := tx.CompleteBoard(ctx, leagueID); err != nil {
		return nil, deadlineErr(ctx, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, deadlineErr(ctx, err)
	}

	log.Printf("import %s: committed - accounts %d new / %d found, franchises %d new / %d updated, %d picks, %d roster slots",
		runID, result.AccountsCreated, result.AccountsFound,
		result.FranchisesCreated, result.FranchisesUpdated,
		result.DraftPicksCreated, result.RosterSlotsCreated)
	return result, nil
}

// upsertTeams finds or creates the account and franchise for every column
// and returns the franchises in column order. Waiver state is seeded only on
// create; re-imports never touch an existing franchise's balance or
// priority.
func (c *controller) upsertTeams(ctx context.Context, tx db.ImportTx, league *model.League, columns []model.SheetColumn, result *model.ImportResult) ([]model.Franchise, error) {
	franchises := make([]model.Franchise, 0, len(columns))

	for _, col := range columns {
		account, created, err := tx.UpsertAccount(ctx, col.ExternalID, col.Name)
		if err != nil {
			return nil, err
		}
		if created {
			result.AccountsCreated++
		} else {
			result.AccountsFound++
		}

		draftPosition := col.Position + 1
		f, err := tx.GetFranchise(ctx, league.ID, account.ID)
		switch {
		case errors.Is(err, db.ErrFranchiseNotFound):
			f = &model.Franchise{
				LeagueID:      league.ID,
				AccountID:     account.ID,
				Name:          col.Name,
				ShortCode:     model.DeriveShortCode(col.Name),
				DraftPosition: draftPosition,
			}
			if league.WaiverMode == model.WaiverFAAB {
				balance := league.FAABBudget
				f.FAABBalance = &balance
			} else {
				priority := draftPosition
				f.WaiverPriority = &priority
			}
			if err := tx.InsertFranchise(ctx, f); err != nil {
				return nil, err
			}
			result.FranchisesCreated++
		case err != nil:
			return nil, err
		default:
			f.Name = col.Name
			f.ShortCode = model.DeriveShortCode(col.Name)
			f.DraftPosition = draftPosition
			if err := tx.UpdateFranchise(ctx, f); err != nil {
				return nil, err
			}
			result.FranchisesUpdated++
		}

		franchises = append(franchises, *f)
	}

	return franchises, nil
}

// rebuildDraftBoard deletes the league's board and regenerates the complete
// set of round x franchise picks. In snake mode even rounds run through the
// franchises in reverse column order; the overall pick number increments
// monotonically across the whole board either way.
func (c *controller) rebuildDraftBoard(ctx context.Context, tx db.ImportTx, league *model.League, columns []model.SheetColumn, franchises []model.Franchise, result *model.ImportResult) error {
	if err := tx.DeleteDraftBoard(ctx, league.ID); err != nil {
		return err
	}

	now := c.clock.Now().UTC()
	picks := make([]model.DraftPick, 0, model.DraftRounds*len(franchises))

	for round := 1; round <= model.DraftRounds; round++ {
		for i := 0; i < len(franchises); i++ {
			idx := i
			if league.DraftMode == model.DraftSnake && round%2 == 0 {
				idx = len(franchises) - 1 - i
			}

			pick := model.DraftPick{
				LeagueID:    league.ID,
				Round:       round,
				PickInRound: i + 1,
				OverallPick: model.OverallPick(round, i+1, len(franchises)),
				FranchiseID: franchises[idx].ID,
			}

			// The pick's team comes from the owning franchise's own column,
			// regardless of where snake ordering put it this round.
			if raw := columns[idx].Picks[round-1]; raw != "" {
				if res := model.ResolveTeamName(raw); res.Confidence != model.MatchNone {
					pick.TeamID = res.Team.ID
					pickedAt := now
					pick.PickedAt = &pickedAt
				}
			}

			picks = append(picks, pick)
		}
	}

	if err := tx.InsertDraftPicks(ctx, picks); err != nil {
		return err
	}
	result.DraftPicksCreated = len(picks)
	return nil
}

// distributeRosters rebuilds week-1 roster slots per franchise by walking the
// template categories in their fixed order and filling slot indices with the
// franchise's resolved picks until the picks run out. Picks that resolve to
// a team missing from the catalog are skipped quietly; resolution already
// warned about those during planning.
func (c *controller) distributeRosters(ctx context.Context, tx db.ImportTx, league *model.League, columns []model.SheetColumn, franchises []model.Franchise, result *model.ImportResult) error {
	const week = 1

	for i := range franchises {
		if err := tx.DeleteRosterSlots(ctx, franchises[i].ID, week); err != nil {
			return err
		}

		teamIDs := resolvedTeamIDs(columns[i].Picks)
		slots := make([]model.RosterSlot, 0, len(teamIDs))
		next := 0

	categories:
		for _, category := range model.SlotCategoryOrder {
			for slot := 0; slot < league.Template.Slots(category); slot++ {
				if next >= len(teamIDs) {
					break categories
				}
				slots = append(slots, model.RosterSlot{
					FranchiseID: franchises[i].ID,
					Week:        week,
					Category:    category,
					SlotIndex:   slot,
					TeamID:      teamIDs[next],
				})
				next++
			}
		}

		if err := tx.InsertRosterSlots(ctx, slots); err != nil {
			return err
		}
		result.RosterSlotsCreated += len(slots)
	}

	return nil
}

func resolvedTeamIDs(picks []string) []string {
	ids := make([]string, 0, len(picks))
	for _, raw := range picks {
		if raw == "" {
			continue
		}
		res := model.ResolveTeamName(raw)
		if res.Confidence == model.MatchNone {
			continue
		}
		if model.LookupTeam(res.Team.ID) == nil {
			continue
		}
		ids = append(ids, res.Team.ID)
	}
	return ids
}

// deadlineErr converts a failure caused by the overall import deadline into
// the distinct retryable timeout error.
func deadlineErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrImportTimeout, err)
	}
	return err
}
