package rest

import (
	"net/http"

	"github.com/heartmarshall/facts-mng/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Health       *HealthHandler
	SharkAttacks *SharkAttackHandler
	Subscription *SubscriptionHandler
	// API wraps every /api route, typically auth and rate limiting.
	API middleware.Middleware
	// Global wraps the whole mux.
	Global middleware.Middleware
}

// NewRouter builds the HTTP routing table.
func NewRouter(d RouterDeps) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/shark-attacks", d.SharkAttacks.List)
	api.HandleFunc("POST /api/shark-attacks", d.SharkAttacks.Create)
	api.HandleFunc("GET /api/shark-attacks/stats", d.SharkAttacks.Stats)
	api.HandleFunc("GET /api/shark-attacks/by-country/{country}", d.SharkAttacks.ByCountry)
	api.HandleFunc("POST /api/shark-attacks/delete", d.SharkAttacks.Delete)
	api.HandleFunc("POST /api/shark-attacks/import", d.SharkAttacks.Import)
	api.HandleFunc("GET /api/shark-attacks/{id}", d.SharkAttacks.Get)
	api.HandleFunc("PUT /api/shark-attacks/{id}", d.SharkAttacks.Update)
	api.HandleFunc("GET /api/subscriptions/shark-attacks", d.Subscription.SharkAttacks)

	var apiHandler http.Handler = api
	if d.API != nil {
		apiHandler = d.API(api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("/api/", apiHandler)

	if d.Global != nil {
		return d.Global(mux)
	}
	return mux
}
