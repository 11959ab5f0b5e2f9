package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dixitshiv/Roomate-Meal/internal/auth"
	"github.com/dixitshiv/Roomate-Meal/internal/cache"
	"github.com/dixitshiv/Roomate-Meal/internal/handler"
	"github.com/dixitshiv/Roomate-Meal/internal/middleware"
	"github.com/dixitshiv/Roomate-Meal/internal/remote"
	"github.com/dixitshiv/Roomate-Meal/internal/store"
)

type Server struct {
	db        *sql.DB
	tokens    *auth.TokenManager
	provider  *auth.Provider
	authH     *handler.AuthHandler
	houseH    *handler.HouseholdHandler
	mealH     *handler.MealHandler
	groceryH  *handler.GroceryHandler
	logger    *slog.Logger
}

func New(db *sql.DB, c *cache.Cache, tokens *auth.TokenManager, logger *slog.Logger) *Server {
	remoteStore := remote.New(db)
	provider := auth.NewProvider(remoteStore, tokens)

	mealStore := store.NewMealStore(c, logger.With("component", "meal"))
	groceryStore := store.NewGroceryStore(c, logger.With("component", "grocery"))
	householdStore := store.NewHouseholdStore(remoteStore, provider)

	// Signing out wipes every store before the session clears.
	provider.SetResetter(store.NewCoordinator(mealStore, groceryStore, householdStore))

	return &Server{
		db:       db,
		tokens:   tokens,
		provider: provider,
		authH:    handler.NewAuthHandler(provider, logger.With("component", "auth")),
		houseH:   handler.NewHouseholdHandler(householdStore, logger.With("component", "household")),
		mealH:    handler.NewMealHandler(mealStore),
		groceryH: handler.NewGroceryHandler(groceryStore),
		logger:   logger,
	}
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/signup", s.authH.SignUp)
	outerMux.HandleFunc("POST /api/auth/signin", s.authH.SignIn)
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.tokens)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signout", s.authH.SignOut)

	// Household
	mux.HandleFunc("GET /api/household", s.houseH.Get)
	mux.HandleFunc("POST /api/household", s.houseH.Create)
	mux.HandleFunc("POST /api/household/join", s.houseH.Join)
	mux.HandleFunc("POST /api/household/leave", s.houseH.Leave)
	mux.HandleFunc("POST /api/household/invite-code", s.houseH.RegenerateInviteCode)
	mux.HandleFunc("POST /api/household/transfer-admin", s.houseH.TransferAdmin)
	mux.HandleFunc("POST /api/household/members", s.houseH.AddMember)
	mux.HandleFunc("PATCH /api/household/members/{id}", s.houseH.UpdateMember)
	mux.HandleFunc("DELETE /api/household/members/{id}", s.houseH.RemoveMember)

	// Meals
	mux.HandleFunc("GET /api/meals", s.mealH.List)
	mux.HandleFunc("POST /api/meals", s.mealH.Create)
	mux.HandleFunc("PATCH /api/meals/{id}", s.mealH.Update)
	mux.HandleFunc("DELETE /api/meals/{id}", s.mealH.Delete)

	// Grocery
	mux.HandleFunc("GET /api/grocery/stores", s.groceryH.ListStores)
	mux.HandleFunc("POST /api/grocery/stores", s.groceryH.AddStore)
	mux.HandleFunc("GET /api/grocery/stores/{store_id}/items", s.groceryH.ItemsByStore)
	mux.HandleFunc("POST /api/grocery/items", s.groceryH.CreateItem)
	mux.HandleFunc("PATCH /api/grocery/items/{id}", s.groceryH.UpdateItem)
	mux.HandleFunc("DELETE /api/grocery/items/{id}", s.groceryH.DeleteItem)
	mux.HandleFunc("POST /api/grocery/items/{id}/toggle", s.groceryH.ToggleItem)
	mux.HandleFunc("POST /api/grocery/week", s.groceryH.SelectWeek)
	mux.HandleFunc("POST /api/grocery/week/advance", s.groceryH.AdvanceWeek)
}
