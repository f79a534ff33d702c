package controller

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mheath/league_manager/model"
)

// GenerateSchedule replaces the league's regular-season matchups with a
// fresh round-robin schedule over the franchises in draft order. Shuffle
// randomizes the order first; the pairing itself is deterministic for a
// given order.
func (c *controller) GenerateSchedule(ctx context.Context, leagueID int32, shuffle bool) ([]model.Matchup, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading league %d: %w", leagueID, err)
	}

	franchises, err := c.db.GetFranchises(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading franchises for league %d: %w", leagueID, err)
	}

	ids := make([]int32, len(franchises))
	for i, f := range franchises {
		ids[i] = f.ID
	}
	if shuffle {
		rand.Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
	}

	matchups, err := buildRoundRobin(ids, league.Weeks)
	if err != nil {
		return nil, err
	}

	if err := c.db.ReplaceMatchups(ctx, leagueID, 1, league.Weeks, matchups); err != nil {
		return nil, err
	}
	return matchups, nil
}

// buildRoundRobin pairs franchises with the circle method: the first id
// stays fixed while the rest rotate one step between weeks, moving the last
// rotating id to the slot right after the fixed one. For up to n-1 weeks no
// unordered pair ever repeats and every franchise plays exactly once per
// week.
func buildRoundRobin(franchiseIDs []int32, weeks int) ([]model.Matchup, error) {
	n := len(franchiseIDs)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 franchises to schedule, got %d", n)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("cannot schedule an odd number of franchises (%d)", n)
	}
	if weeks > n-1 {
		return nil, fmt.Errorf("%d weeks exceed the %d non-repeating weeks possible with %d franchises", weeks, n-1, n)
	}

	rotating := make([]int32, n-1)
	copy(rotating, franchiseIDs[1:])

	matchups := make([]model.Matchup, 0, weeks*n/2)
	for week := 1; week <= weeks; week++ {
		arrangement := append([]int32{franchiseIDs[0]}, rotating...)
		for i := 0; i < n/2; i++ {
			matchups = append(matchups, model.Matchup{
				Week:            week,
				HomeFranchiseID: arrangement[i],
				AwayFranchiseID: arrangement[n-1-i],
			})
		}

		// Rotate: last element moves to the front of the rotating list.
		last := rotating[len(rotating)-1]
		copy(rotating[1:], rotating[:len(rotating)-1])
		rotating[0] = last
	}

	return matchups, nil
}
