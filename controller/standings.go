package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/mheath/league_manager/model"
)

// GetStandings recomputes standings from the recorded regular-season
// results. Standings are never persisted; deriving them from matchups every
// time means they cannot drift from the scores.
func (c *controller) GetStandings(ctx context.Context, leagueID int32) ([]model.Standing, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading league %d: %w", leagueID, err)
	}

	franchises, err := c.db.GetFranchises(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading franchises for league %d: %w", leagueID, err)
	}

	matchups, err := c.db.GetMatchups(ctx, leagueID, 1, league.Weeks)
	if err != nil {
		return nil, fmt.Errorf("error loading matchups for league %d: %w", leagueID, err)
	}

	return computeStandings(franchises, matchups), nil
}

// computeStandings tallies wins, losses, ties, and points over the given
// matchups. Matchups missing either score are ignored, as are playoff
// matchups. Sorting is wins descending with points-for as the tie-break.
func computeStandings(franchises []model.Franchise, matchups []model.Matchup) []model.Standing {
	byID := make(map[int32]*model.Standing, len(franchises))
	standings := make([]model.Standing, len(franchises))
	for i, f := range franchises {
		standings[i] = model.Standing{FranchiseID: f.ID, FranchiseName: f.Name}
		byID[f.ID] = &standings[i]
	}

	for _, m := range matchups {
		if m.Playoff || !m.Played() {
			continue
		}
		home, away := byID[m.HomeFranchiseID], byID[m.AwayFranchiseID]
		if home == nil || away == nil {
			continue
		}

		home.PointsFor += *m.HomeScore
		home.PointsAgainst += *m.AwayScore
		away.PointsFor += *m.AwayScore
		away.PointsAgainst += *m.HomeScore

		switch {
		case *m.HomeScore > *m.AwayScore:
			home.Wins++
			away.Losses++
		case *m.AwayScore > *m.HomeScore:
			away.Wins++
			home.Losses++
		default:
			home.Ties++
			away.Ties++
		}
	}

	slices.SortStableFunc(standings, func(a, b model.Standing) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return int(b.PointsFor - a.PointsFor)
	})
	return standings
}

// SeedPlayoffs builds the first playoff week from the top-8 standings cut
// and persists it one week past the regular season: 1v8, 2v7, 3v6, 4v5.
func (c *controller) SeedPlayoffs(ctx context.Context, leagueID int32) ([]model.Matchup, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading league %d: %w", leagueID, err)
	}

	standings, err := c.GetStandings(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if len(standings) < model.PlayoffPoolSize {
		return nil, fmt.Errorf("playoff seeding needs %d franchises, league %d has %d",
			model.PlayoffPoolSize, leagueID, len(standings))
	}

	week := league.Weeks + 1
	matchups := make([]model.Matchup, 0, model.PlayoffPoolSize/2)
	for seed := 0; seed < model.PlayoffPoolSize/2; seed++ {
		matchups = append(matchups, model.Matchup{
			Week:            week,
			HomeFranchiseID: standings[seed].FranchiseID,
			AwayFranchiseID: standings[model.PlayoffPoolSize-1-seed].FranchiseID,
			Playoff:         true,
		})
	}

	if err := c.db.ReplaceMatchups(ctx, leagueID, week, week, matchups); err != nil {
		return nil, err
	}
	return matchups, nil
}
