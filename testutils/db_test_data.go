package testutils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mheath/league_manager/containers"
	"github.com/mheath/league_manager/db"
	"github.com/mheath/league_manager/model"
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// NewLeague inserts a 12-team snake/FAAB league with the default roster
// template and returns it.
func (t *TestDB) NewLeague(name string) *model.League {
	l := &model.League{
		Name:       name,
		Year:       "2026",
		Capacity:   12,
		DraftMode:  model.DraftSnake,
		WaiverMode: model.WaiverFAAB,
		FAABBudget: 100,
		BoardState: model.BoardNotStarted,
		Weeks:      model.RegularSeasonWeeks,
		Template:   model.RosterTemplate{Duo: 3, Trio: 2, Flex: 1, Bench: 2},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.DB.AddLeague(ctx, l); err != nil {
		log.Fatalf("error inserting test league: %v", err)
	}
	return l
}

// DraftableTeams lists canonical sheet pick strings that all resolve with
// high confidence, e.g. "NA Cloud9".
var DraftableTeams = []string{
	"NA Cloud9", "NA Team Liquid", "NA 100 Thieves", "NA FlyQuest",
	"EU Fnatic", "EU G2", "EU MAD Lions", "EU Rogue",
	"KR T1", "KR Gen G", "KR DRX", "KR KT Rolster",
	"CN JDG", "CN RNG", "CN EDG", "CN Top Esports",
	"BR LOUD", "BR Pain", "BR Furia", "BR Red Canids",
}

// ExternalID returns a distinct, valid 19-digit account identifier. Tests
// pass disjoint ranges of n so their accounts never collide.
func ExternalID(n int) string {
	return fmt.Sprintf("900000000000000%04d", n)
}

// SheetText renders columns into the CSV layout a draft sheet export uses:
// row 0 identifiers, row 1 names, rows 2-9 picks.
func SheetText(columns []model.SheetColumn) string {
	rows := make([][]string, 2+model.DraftRounds)
	for i := range rows {
		rows[i] = make([]string, len(columns))
	}
	for i, c := range columns {
		rows[0][i] = c.ExternalID
		rows[1][i] = c.Name
		for p := 0; p < model.DraftRounds && p < len(c.Picks); p++ {
			rows[2+p][i] = c.Picks[p]
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// FullSheetColumns builds n complete columns with distinct identifiers
// starting at offset and 8 resolvable picks each, cycling through
// DraftableTeams.
func FullSheetColumns(n, offset int) []model.SheetColumn {
	columns := make([]model.SheetColumn, n)
	for i := 0; i < n; i++ {
		picks := make([]string, model.DraftRounds)
		for p := 0; p < model.DraftRounds; p++ {
			picks[p] = DraftableTeams[(i*model.DraftRounds+p)%len(DraftableTeams)]
		}
		columns[i] = model.SheetColumn{
			ExternalID: ExternalID(offset + i),
			Name:       fmt.Sprintf("Team %c", 'A'+i),
			Picks:      picks,
			Position:   i,
		}
	}
	return columns
}
