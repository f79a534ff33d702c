package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mheath/league_manager/db"
	"github.com/mheath/league_manager/model"
)

// PlanImport is the dry run for a draft import. It performs only reads and
// reports every blocking error and advisory warning at once, so an operator
// sees the whole picture before committing anything.
func (c *controller) PlanImport(ctx context.Context, leagueID int32, columns []model.SheetColumn) (*model.ImportPlan, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading league %d: %w", leagueID, err)
	}

	franchises, err := c.db.GetFranchises(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading franchises for league %d: %w", leagueID, err)
	}

	board, err := c.db.GetDraftBoard(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading draft board for league %d: %w", leagueID, err)
	}

	plan := &model.ImportPlan{
		Errors:   []model.ValidationIssue{},
		Warnings: []model.ValidationIssue{},
	}

	if len(columns) > league.Capacity {
		plan.Errors = append(plan.Errors, model.ErrorIssue(-1, -1, "",
			fmt.Sprintf("sheet has %d teams but the league capacity is %d", len(columns), league.Capacity)))
	}
	if league.BoardState == model.BoardInProgress {
		plan.Errors = append(plan.Errors, model.ErrorIssue(-1, -1, "",
			"the draft is in progress; importing now would corrupt the live board"))
	}
	if len(board) > 0 {
		plan.Warnings = append(plan.Warnings, model.WarningIssue(-1, -1, "",
			fmt.Sprintf("league already has a draft board of %d picks; it will be replaced", len(board))))
	}

	franchisesByAccount := make(map[int32]*model.Franchise, len(franchises))
	for i := range franchises {
		franchisesByAccount[franchises[i].AccountID] = &franchises[i]
	}

	plan.Preview.PerTeam = make([]model.TeamPreview, 0, len(columns))
	for _, col := range columns {
		preview := model.TeamPreview{
			Column:     col.Position,
			ExternalID: col.ExternalID,
			Name:       col.Name,
		}

		account, err := c.db.GetAccountByExternalID(ctx, col.ExternalID)
		if err != nil && !errors.Is(err, db.ErrAccountNotFound) {
			return nil, fmt.Errorf("error looking up account %s: %w", col.ExternalID, err)
		}
		if account != nil {
			preview.AccountExists = true
			if _, found := franchisesByAccount[account.ID]; found {
				preview.FranchiseExists = true
			}
		}
		if !preview.AccountExists {
			plan.Warnings = append(plan.Warnings, model.WarningIssue(col.Position, rowExternalID, "externalId",
				fmt.Sprintf("no account exists for %s; one will be created", col.ExternalID)))
		}
		if preview.FranchiseExists {
			plan.Warnings = append(plan.Warnings, model.WarningIssue(col.Position, rowName, "name",
				fmt.Sprintf("franchise %q already exists and will be updated", col.Name)))
		}

		for round, raw := range col.Picks {
			if raw == "" {
				continue
			}
			res := model.ResolveTeamName(raw)
			switch res.Confidence {
			case model.MatchNone:
				preview.UnresolvedPicks++
				plan.Errors = append(plan.Errors, model.ErrorIssue(col.Position, rowFirstPick+round, "pick",
					fmt.Sprintf("cannot resolve pick %q for round %d", raw, round+1)))
			case model.MatchLow:
				preview.ResolvedPicks++
				plan.Warnings = append(plan.Warnings, model.WarningIssue(col.Position, rowFirstPick+round, "pick",
					fmt.Sprintf("pick %q matched %s with low confidence; no league code given", raw, res.Team.ID)))
			default:
				preview.ResolvedPicks++
			}
		}

		plan.Preview.PerTeam = append(plan.Preview.PerTeam, preview)
		plan.Preview.TotalPicks += col.NonBlankPicks()
	}
	plan.Preview.TotalTeams = len(columns)

	plan.Warnings = append(plan.Warnings, duplicateNameWarnings(columns)...)

	plan.Valid = len(plan.Errors) == 0
	return plan, nil
}

// duplicateNameWarnings flags display names shared by multiple columns.
// Duplicate names are legal, just unusual enough to be worth a look.
func duplicateNameWarnings(columns []model.SheetColumn) []model.ValidationIssue {
	byName := make(map[string][]int)
	for _, c := range columns {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if key == "" {
			continue
		}
		byName[key] = append(byName[key], c.Position)
	}

	warnings := make([]model.ValidationIssue, 0)
	for _, c := range columns {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		cols := byName[key]
		if len(cols) > 1 && cols[0] == c.Position {
			warnings = append(warnings, model.WarningIssue(cols[0], rowName, "name",
				fmt.Sprintf("franchise name %q appears in columns %s", c.Name, joinInts(cols))))
		}
	}
	return warnings
}
