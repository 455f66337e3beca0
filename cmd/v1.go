package main

import (
	"github.com/bighasbula/ITEENS/middleware"
	"github.com/go-chi/chi/v5"
)

func NewV1Router() *chi.Mux {
	v1 := chi.NewRouter()

	// configure all endpoints
	v1.Get("/healthz", apiConfig.HandlerReadiness)

	// catalog layer
	v1.Get("/problems", apiConfig.HandlerGetProblems)

	// judging layer
	v1.Post("/run", middleware.JWTMiddleware(apiConfig.HandlerRunCode))

	// submissions layer
	v1.Post("/submissions", middleware.JWTMiddleware(apiConfig.HandlerSubmit))
	v1.Get("/submissions", middleware.JWTMiddleware(apiConfig.HandlerGetSubmissions))
	v1.Get("/submissions/stats", middleware.JWTMiddleware(apiConfig.HandlerGetSubmissionStats))

	// profile layer
	v1.Get("/me", middleware.JWTMiddleware(apiConfig.HandlerGetMe))
	v1.Get("/users", apiConfig.HandlerGetUser)

	// leaderboard
	v1.Get("/leaderboard", apiConfig.HandlerGetLeaderboard)

	return v1
}
