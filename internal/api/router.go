package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(apiHandler.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(apiHandler.JWTAuthMiddleware)

		r.Post("/generate", apiHandler.GenerateHandler)
		r.Get("/timeline/{userID}", apiHandler.TimelineHandler)

		r.Route("/logs", func(r chi.Router) {
			r.Post("/", apiHandler.CreateLogHandler)
			r.Get("/", apiHandler.ListLogsHandler)
			r.Get("/{id}", apiHandler.GetLogHandler)
			r.Patch("/{id}", apiHandler.UpdateLogHandler)
			r.Delete("/{id}", apiHandler.DeleteLogHandler)
		})
		r.Route("/alarms", func(r chi.Router) {
			r.Post("/", apiHandler.CreateAlarmHandler)
			r.Get("/", apiHandler.ListAlarmsHandler)
			r.Get("/{id}", apiHandler.GetAlarmHandler)
			r.Patch("/{id}", apiHandler.UpdateAlarmHandler)
			r.Delete("/{id}", apiHandler.DeleteAlarmHandler)
		})
		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", apiHandler.CreateContactHandler)
			r.Get("/", apiHandler.ListContactsHandler)
			r.Get("/{id}", apiHandler.GetContactHandler)
			r.Patch("/{id}", apiHandler.UpdateContactHandler)
			r.Delete("/{id}", apiHandler.DeleteContactHandler)
		})
		r.Route("/safety-plans", func(r chi.Router) {
			r.Post("/", apiHandler.CreateSafetyPlanHandler)
			r.Get("/", apiHandler.ListSafetyPlansHandler)
			r.Get("/{id}", apiHandler.GetSafetyPlanHandler)
			r.Patch("/{id}", apiHandler.UpdateSafetyPlanHandler)
			r.Delete("/{id}", apiHandler.DeleteSafetyPlanHandler)
		})
		r.Route("/wellness-items", func(r chi.Router) {
			r.Post("/", apiHandler.CreateWellnessItemHandler)
			r.Get("/", apiHandler.ListWellnessItemsHandler)
			r.Get("/{id}", apiHandler.GetWellnessItemHandler)
			r.Patch("/{id}", apiHandler.UpdateWellnessItemHandler)
			r.Delete("/{id}", apiHandler.DeleteWellnessItemHandler)
		})
	})

	return r
}
