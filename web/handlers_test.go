package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mheath/league_manager/controller"
	"github.com/mheath/league_manager/controller/mockcontroller"
	"github.com/mheath/league_manager/db"
	"github.com/mheath/league_manager/model"
	"github.com/stretchr/testify/mock"
)

func runRequest(ctrl *mockcontroller.C, req *http.Request) *http.Response {
	router := getRouter(ctrl, newRender())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Result()
}

func TestGetLeagueHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	league := &model.League{ID: 12, Name: "summer split", Capacity: 12}
	ctrl.On("GetLeague", mock.Anything, int32(12)).Return(league, nil)
	ctrl.On("GetLeague", mock.Anything, int32(99)).Return(nil, db.ErrLeagueNotFound)

	resp := runRequest(ctrl, httptest.NewRequest(http.MethodGet, "/leagues/12", nil))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var got model.League
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if got.Name != "summer split" {
		t.Errorf("unexpected league in response: %+v", got)
	}

	resp404 := runRequest(ctrl, httptest.NewRequest(http.MethodGet, "/leagues/99", nil))
	defer resp404.Body.Close()
	if resp404.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status code for missing league. Got: %d", resp404.StatusCode)
	}
}

func TestAddLeagueHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	league := &model.League{ID: 3, Name: "spring split", Capacity: 10}
	ctrl.On("AddLeague", mock.Anything, "spring split", "2026", 10, "snake", "faab").
		Return(league, nil)

	body := `{"name":"spring split","year":"2026","capacity":10,"draftMode":"snake","waiverMode":"faab"}`
	resp := runRequest(ctrl, httptest.NewRequest(http.MethodPost, "/leagues", strings.NewReader(body)))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var got model.League
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("unexpected league in response: %+v", got)
	}
}

func TestAddLeagueHandler_badBody(t *testing.T) {
	ctrl := &mockcontroller.C{}

	resp := runRequest(ctrl, httptest.NewRequest(http.MethodPost, "/leagues", strings.NewReader("not json")))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	ctrl.AssertNotCalled(t, "AddLeague",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanImportHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	parsed := &model.SheetParseResult{
		Columns: []model.SheetColumn{{ExternalID: "90000000000000000001", Name: "Team A"}},
	}
	plan := &model.ImportPlan{
		Valid:   true,
		Preview: model.ImportPreview{TotalTeams: 1, TotalPicks: 8},
	}
	ctrl.On("ParseSheet", mock.Anything).Return(parsed)
	ctrl.On("PlanImport", mock.Anything, int32(5), parsed.Columns).Return(plan, nil)

	req := httptest.NewRequest(http.MethodPost, "/leagues/5/import/plan", strings.NewReader("sheet body"))
	resp := runRequest(ctrl, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var got model.ImportPlan
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !got.Valid || got.Preview.TotalTeams != 1 {
		t.Errorf("unexpected plan in response: %+v", got)
	}
}

func TestPlanImportHandler_malformedSheet(t *testing.T) {
	ctrl := &mockcontroller.C{}
	parsed := &model.SheetParseResult{
		Issues: []model.ValidationIssue{
			model.ErrorIssue(0, 0, "externalId", "identifier must be 17 to 20 digits"),
		},
	}
	ctrl.On("ParseSheet", mock.Anything).Return(parsed)

	req := httptest.NewRequest(http.MethodPost, "/leagues/5/import/plan", strings.NewReader("bad sheet"))
	resp := runRequest(ctrl, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	ctrl.AssertNotCalled(t, "PlanImport", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteImportHandler_timeouts(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedStatus int
	}{
		"lock timeout":    {err: db.ErrImportLockTimeout, expectedStatus: http.StatusConflict},
		"overall timeout": {err: controller.ErrImportTimeout, expectedStatus: http.StatusGatewayTimeout},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			parsed := &model.SheetParseResult{
				Columns: []model.SheetColumn{{ExternalID: "90000000000000000001", Name: "Team A"}},
			}
			ctrl.On("ParseSheet", mock.Anything).Return(parsed)
			ctrl.On("ExecuteImport", mock.Anything, int32(5), parsed.Columns, false).
				Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/leagues/5/import", strings.NewReader("sheet body"))
			resp := runRequest(ctrl, req)
			defer resp.Body.Close()

			if resp.StatusCode != tc.expectedStatus {
				t.Errorf("unexpected status code. Got: %d, wanted: %d", resp.StatusCode, tc.expectedStatus)
			}
		})
	}
}

func TestExecuteImportHandler_rostersQueryParam(t *testing.T) {
	ctrl := &mockcontroller.C{}
	parsed := &model.SheetParseResult{
		Columns: []model.SheetColumn{{ExternalID: "90000000000000000001", Name: "Team A"}},
	}
	result := &model.ImportResult{AccountsCreated: 1, FranchisesCreated: 1, DraftPicksCreated: 8}
	ctrl.On("ParseSheet", mock.Anything).Return(parsed)
	ctrl.On("ExecuteImport", mock.Anything, int32(5), parsed.Columns, true).Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/leagues/5/import?rosters=true", strings.NewReader("sheet body"))
	resp := runRequest(ctrl, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	ctrl.AssertCalled(t, "ExecuteImport", mock.Anything, int32(5), parsed.Columns, true)
}

func TestGenerateScheduleHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	matchups := []model.Matchup{{ID: 1, Week: 1, HomeFranchiseID: 1, AwayFranchiseID: 2}}
	ctrl.On("GenerateSchedule", mock.Anything, int32(7), true).Return(matchups, nil)

	req := httptest.NewRequest(http.MethodPost, "/leagues/7/schedule?shuffle=true", nil)
	resp := runRequest(ctrl, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var got []model.Matchup
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(got) != 1 || got[0].Week != 1 {
		t.Errorf("unexpected matchups in response: %+v", got)
	}
}

func TestGetResultsHandler_badWeek(t *testing.T) {
	ctrl := &mockcontroller.C{}

	resp := runRequest(ctrl, httptest.NewRequest(http.MethodGet, "/leagues/7/results?week=zero", nil))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	ctrl.AssertNotCalled(t, "GetResults", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordResultHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RecordResult", mock.Anything, int32(42), int32(3), int32(1)).Return(nil)
	ctrl.On("RecordResult", mock.Anything, int32(43), int32(3), int32(1)).Return(db.ErrMatchupNotFound)

	body := `{"homeScore":3,"awayScore":1}`
	resp := runRequest(ctrl, httptest.NewRequest(http.MethodPost, "/matchups/42/result", strings.NewReader(body)))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	resp404 := runRequest(ctrl, httptest.NewRequest(http.MethodPost, "/matchups/43/result", strings.NewReader(body)))
	defer resp404.Body.Close()
	if resp404.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status code for missing matchup. Got: %d", resp404.StatusCode)
	}
}

func TestStandingsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	standings := []model.Standing{
		{FranchiseID: 1, FranchiseName: "Alpha", Wins: 8},
		{FranchiseID: 2, FranchiseName: "Beta", Wins: 6},
	}
	ctrl.On("GetStandings", mock.Anything, int32(7)).Return(standings, nil)

	resp := runRequest(ctrl, httptest.NewRequest(http.MethodGet, "/leagues/7/standings", nil))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var got []model.Standing
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(got) != 2 || got[0].FranchiseName != "Alpha" {
		t.Errorf("unexpected standings in response: %+v", got)
	}
}
