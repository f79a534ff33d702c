package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mheath/league_manager/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", listLeaguesHandler(ctrl, render))
		r.Post("/", addLeagueHandler(ctrl, render))

		r.Route("/{leagueID:\\d+}", func(r chi.Router) {
			r.Get("/", getLeagueHandler(ctrl, render))
			r.Delete("/", archiveLeagueHandler(ctrl, render))
			r.Get("/franchises", getFranchisesHandler(ctrl, render))
			r.Get("/standings", getStandingsHandler(ctrl, render))
			r.Get("/results", getResultsHandler(ctrl, render))

			r.Post("/schedule", generateScheduleHandler(ctrl, render))
			r.Post("/playoffs", seedPlayoffsHandler(ctrl, render))

			// Imports re-run the full sheet, so give them a longer timeout
			// than the rest of the API.
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(60 * time.Second))
				r.Post("/import/plan", planImportHandler(ctrl, render))
				r.Post("/import", executeImportHandler(ctrl, render))
			})
		})
	})

	r.Post("/matchups/{matchupID:\\d+}/result", recordResultHandler(ctrl, render))

	return r
}
