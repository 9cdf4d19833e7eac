package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unitip/unitip-api/internal/api"
	apiMiddleware "github.com/unitip/unitip-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
//
// The mutating endpoints (offer creation, profile update, job
// application) are registered outside the authentication group: their
// contract runs body validation before the bearer token is checked, so
// the handlers verify the token themselves.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	offerHandler := api.NewOfferHandler(app.offerService, app.sessionVerifier)
	profileHandler := api.NewProfileHandler(app.profileService, app.sessionVerifier)
	jobHandler := api.NewJobHandler(app.jobService, app.sessionVerifier)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.sessionVerifier)

	r.Route("/api/v1", func(r chi.Router) {
		// Mutating endpoints verify the token in the handler.
		r.Post("/offers", offerHandler.CreateOffer)
		r.Patch("/accounts/profile", profileHandler.UpdateProfile)
		r.Post("/jobs/{job_id}/apply", jobHandler.ApplyJob)

		// Read endpoints authenticate up front.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/offers", offerHandler.ListOffers)
			r.Get("/accounts/profile", profileHandler.GetProfile)
		})

		r.Get("/docs", app.docsHandler)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
