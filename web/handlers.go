package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mheath/league_manager/controller"
	"github.com/mheath/league_manager/db"
	"github.com/unrolled/render"
)

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "league manager")
	}
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func addLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		Name       string `json:"name"`
		Year       string `json:"year"`
		Capacity   int    `json:"capacity"`
		DraftMode  string `json:"draftMode"`
		WaiverMode string `json:"waiverMode"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing request: %v", err))
			return
		}

		l, err := ctrl.AddLeague(r.Context(), req.Name, req.Year, req.Capacity, req.DraftMode, req.WaiverMode)
		if err != nil {
			jsonError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		render.JSON(w, http.StatusCreated, l)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				jsonError(render, w, http.StatusNotFound, "league not found")
			} else {
				jsonError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func archiveLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		if err := ctrl.ArchiveLeague(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				jsonError(render, w, http.StatusNotFound, "league not found")
			} else {
				jsonError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getFranchisesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		franchises, err := ctrl.GetFranchises(r.Context(), id)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, franchises)
	}
}

// planImportHandler parses the sheet in the request body and runs the
// dry-run validation. Nothing is written no matter what the plan says.
func planImportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		parsed := ctrl.ParseSheet(r.Body)
		if !parsed.OK() {
			render.JSON(w, http.StatusBadRequest, parsed)
			return
		}

		plan, err := ctrl.PlanImport(r.Context(), id, parsed.Columns)
		if err != nil {
			importError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, plan)
	}
}

func executeImportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		parsed := ctrl.ParseSheet(r.Body)
		if !parsed.OK() {
			render.JSON(w, http.StatusBadRequest, parsed)
			return
		}

		rosters := r.URL.Query().Get("rosters") == "true"
		result, err := ctrl.ExecuteImport(r.Context(), id, parsed.Columns, rosters)
		if err != nil {
			importError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, result)
	}
}

func generateScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		shuffle := r.URL.Query().Get("shuffle") == "true"
		matchups, err := ctrl.GenerateSchedule(r.Context(), id, shuffle)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				jsonError(render, w, http.StatusNotFound, "league not found")
			} else {
				jsonError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, matchups)
	}
}

func getResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		week, err := strconv.Atoi(r.URL.Query().Get("week"))
		if err != nil || week < 1 {
			jsonError(render, w, http.StatusBadRequest, "week must be a positive number")
			return
		}

		matchups, err := ctrl.GetResults(r.Context(), id, week)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, matchups)
	}
}

func recordResultHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type request struct {
		HomeScore int32 `json:"homeScore"`
		AwayScore int32 `json:"awayScore"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		matchupID, err := strconv.Atoi(chi.URLParam(r, "matchupID"))
		if err != nil {
			jsonError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing matchup id: %v", err))
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing request: %v", err))
			return
		}

		err = ctrl.RecordResult(r.Context(), int32(matchupID), req.HomeScore, req.AwayScore)
		if err != nil {
			if errors.Is(err, db.ErrMatchupNotFound) {
				jsonError(render, w, http.StatusNotFound, "matchup not found")
			} else {
				jsonError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		standings, err := ctrl.GetStandings(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				jsonError(render, w, http.StatusNotFound, "league not found")
			} else {
				jsonError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func seedPlayoffsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		bracket, err := ctrl.SeedPlayoffs(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				jsonError(render, w, http.StatusNotFound, "league not found")
			} else {
				jsonError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, bracket)
	}
}

func leagueID(render *render.Render, w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
	if err != nil {
		jsonError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing league id: %v", err))
		return 0, false
	}
	return int32(id), true
}

// importError maps the two distinct import timeout errors to statuses a
// client can retry on, and everything else to the usual buckets.
func importError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrLeagueNotFound):
		jsonError(render, w, http.StatusNotFound, "league not found")
	case errors.Is(err, db.ErrImportLockTimeout):
		jsonError(render, w, http.StatusConflict, "another import for this league is running")
	case errors.Is(err, controller.ErrImportTimeout):
		jsonError(render, w, http.StatusGatewayTimeout, "import timed out, retry the request")
	default:
		jsonError(render, w, http.StatusInternalServerError, err.Error())
	}
}

func jsonError(render *render.Render, w http.ResponseWriter, status int, msg string) {
	render.JSON(w, status, map[string]string{"error": msg})
}
