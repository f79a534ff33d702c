package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/mheath/league_manager/db"
	"github.com/mheath/league_manager/db/mockdb"
	"github.com/mheath/league_manager/model"
	"github.com/mheath/league_manager/testutils"
	"github.com/stretchr/testify/mock"
)

func mockLeague(waiverMode model.WaiverMode) *model.League {
	return &model.League{
		ID:         7,
		Name:       "mock league",
		Capacity:   12,
		DraftMode:  model.DraftSnake,
		WaiverMode: waiverMode,
		FAABBudget: 100,
		Weeks:      model.RegularSeasonWeeks,
		Template:   model.RosterTemplate{Duo: 3, Trio: 2, Flex: 1, Bench: 2},
	}
}

func TestExecuteImport_lockTimeoutPassesThrough(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockDB.On("GetLeague", mock.Anything, int32(7)).Return(mockLeague(model.WaiverFAAB), nil)
	mockDB.On("BeginImport", mock.Anything, int32(7)).Return(nil, db.ErrImportLockTimeout)

	ctrl, err := New(clock.New(), mockDB)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	_, err = ctrl.ExecuteImport(context.Background(), 7, testutils.FullSheetColumns(2, 0), false)
	if !errors.Is(err, db.ErrImportLockTimeout) {
		t.Errorf("expected a lock timeout error, got: %v", err)
	}
}

func TestExecuteImport_rollsBackOnFailure(t *testing.T) {
	boom := errors.New("insert failed")

	tx := &mockdb.ImportTx{}
	tx.On("UpsertAccount", mock.Anything, mock.Anything, mock.Anything).Return(nil, false, boom)
	tx.On("Rollback", mock.Anything).Return(nil)

	mockDB := &mockdb.DB{}
	mockDB.On("GetLeague", mock.Anything, int32(7)).Return(mockLeague(model.WaiverFAAB), nil)
	mockDB.On("BeginImport", mock.Anything, int32(7)).Return(tx, nil)

	ctrl, err := New(clock.New(), mockDB)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	_, err = ctrl.ExecuteImport(context.Background(), 7, testutils.FullSheetColumns(2, 0), false)
	if !errors.Is(err, boom) {
		t.Errorf("expected the insert error, got: %v", err)
	}

	tx.AssertCalled(t, "Rollback", mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestExecuteImport_prioritySeedingOnCreate(t *testing.T) {
	columns := testutils.FullSheetColumns(2, 0)

	var inserted []*model.Franchise
	tx := &mockdb.ImportTx{}
	tx.On("UpsertAccount", mock.Anything, columns[0].ExternalID, columns[0].Name).
		Return(&model.Account{ID: 1, ExternalID: columns[0].ExternalID}, true, nil)
	tx.On("UpsertAccount", mock.Anything, columns[1].ExternalID, columns[1].Name).
		Return(&model.Account{ID: 2, ExternalID: columns[1].ExternalID}, true, nil)
	tx.On("GetFranchise", mock.Anything, int32(7), mock.Anything).Return(nil, db.ErrFranchiseNotFound)
	tx.On("InsertFranchise", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = append(inserted, args.Get(1).(*model.Franchise))
	}).Return(nil)
	tx.On("DeleteDraftBoard", mock.Anything, int32(7)).Return(nil)
	tx.On("InsertDraftPicks", mock.Anything, mock.Anything).Return(nil)
	tx.On("CompleteBoard", mock.Anything, int32(7)).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	mockDB := &mockdb.DB{}
	mockDB.On("GetLeague", mock.Anything, int32(7)).Return(mockLeague(model.WaiverPriority), nil)
	mockDB.On("BeginImport", mock.Anything, int32(7)).Return(tx, nil)

	ctrl, err := New(clock.New(), mockDB)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	result, err := ctrl.ExecuteImport(context.Background(), 7, columns, false)
	if err != nil {
		t.Fatalf("error executing import: %v", err)
	}

	if result.AccountsCreated != 2 || result.FranchisesCreated != 2 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.DraftPicksCreated != 2*model.DraftRounds {
		t.Errorf("expected %d picks, got %d", 2*model.DraftRounds, result.DraftPicksCreated)
	}

	if len(inserted) != 2 {
		t.Fatalf("expected 2 inserted franchises, got %d", len(inserted))
	}
	for i, f := range inserted {
		if f.FAABBalance != nil {
			t.Errorf("priority league franchise %d should have no FAAB balance", i)
		}
		if f.WaiverPriority == nil || *f.WaiverPriority != i+1 {
			t.Errorf("franchise %d should get waiver priority %d: %+v", i, i+1, f.WaiverPriority)
		}
	}
}
