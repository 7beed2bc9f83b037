package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wordhoard-backend/infrastructure/di"
	"wordhoard-backend/interfaces/http/rest/handlers"
	"wordhoard-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{container: container}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	c := rt.container
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(c.Logger))
	if c.Config.EnableMetrics {
		router.Use(middleware.Metrics(c.Metrics))
	}

	if c.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Admin-Token"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if c.Config.EnableMetrics {
		router.Handle("/metrics", c.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		// Account endpoints
		r.Route("/accounts", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(c.AccountHandler, c.GetAccountHandler, c.Logger)
			r.Post("/", accountHandler.CreateAccount)
			r.Get("/{accountID}", accountHandler.GetAccount)
			r.Put("/{accountID}/profile", accountHandler.UpdateProfile)
			r.Post("/{accountID}/letters", accountHandler.AppendLetters)
			r.Post("/{accountID}/bookmarks", accountHandler.AddBookmark)
			r.Delete("/{accountID}/bookmarks", accountHandler.RemoveBookmark)
		})

		// Location endpoints
		r.Route("/locations", func(r chi.Router) {
			locationHandler := handlers.NewLocationHandler(
				c.LocationHandler, c.ClaimHandler, c.BoastHandler, c.GetLocationHandler, c.Logger)
			r.Post("/", locationHandler.CreateLocation)
			r.Get("/", locationHandler.ListLocations)
			r.Get("/{locationID}", locationHandler.GetLocation)
			r.Put("/{locationID}/active", locationHandler.SetActive)
			r.Post("/{locationID}/claims", locationHandler.Claim)
			r.Post("/{locationID}/boasts", locationHandler.Boast)
			r.Delete("/{locationID}/boasts", locationHandler.Unboast)
		})

		// Asset endpoints
		r.Route("/assets", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(c.MintHandler, c.TransferHandler, c.GetAssetHandler, c.Logger)
			r.Post("/", assetHandler.MintAsset)
			r.Get("/{assetID}", assetHandler.GetAsset)
			r.Post("/{assetID}/transfer", assetHandler.TransferAsset)
		})

		// Exchange endpoints
		r.Route("/exchanges", func(r chi.Router) {
			exchangeHandler := handlers.NewExchangeHandler(
				c.ExchangeAdminHandler, c.ListingHandler, c.PurchaseHandler, c.GetExchangeHandler, c.Logger)
			r.Post("/", exchangeHandler.CreateExchange)
			r.Get("/{exchangeID}", exchangeHandler.GetExchange)
			r.Put("/{exchangeID}/fee-rate", exchangeHandler.SetFeeRate)
			r.Post("/{exchangeID}/withdrawals", exchangeHandler.WithdrawFees)
			r.Post("/{exchangeID}/listings", exchangeHandler.ListAsset)
			r.Get("/{exchangeID}/listings", exchangeHandler.ListListings)
			r.Get("/{exchangeID}/listings/{assetID}", exchangeHandler.GetListing)
			r.Delete("/{exchangeID}/listings/{assetID}", exchangeHandler.DelistAsset)
			r.Post("/{exchangeID}/listings/{assetID}/purchase", exchangeHandler.Purchase)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
