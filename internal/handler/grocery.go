package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dixitshiv/Roomate-Meal/internal/model"
	"github.com/dixitshiv/Roomate-Meal/internal/store"
	"github.com/dixitshiv/Roomate-Meal/internal/week"
)

type GroceryHandler struct {
	store *store.GroceryStore
}

func NewGroceryHandler(gs *store.GroceryStore) *GroceryHandler {
	return &GroceryHandler{store: gs}
}

func (h *GroceryHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Stores())
}

type addStoreRequest struct {
	Name string `json:"name"`
}

func (h *GroceryHandler) AddStore(w http.ResponseWriter, r *http.Request) {
	var req addStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddStore(req.Name))
}

// ItemsByStore serves the selected-week list for one store.
func (h *GroceryHandler) ItemsByStore(w http.ResponseWriter, r *http.Request) {
	items := h.store.ItemsByStore(r.PathValue("store_id"))
	if items == nil {
		items = []model.GroceryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

type groceryItemRequest struct {
	Name     string      `json:"name"`
	Quantity string      `json:"quantity"`
	Store    model.Store `json:"store"`
	Brand    string      `json:"brand"`
	Type     string      `json:"type"`
	AddedBy  string      `json:"added_by"`
	Priority bool        `json:"priority"`
	Notes    string      `json:"notes"`
}

func (h *GroceryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req groceryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.Store.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "store is required"})
		return
	}

	item := h.store.AddItem(model.GroceryItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		Store:    req.Store,
		Brand:    req.Brand,
		Type:     req.Type,
		AddedBy:  req.AddedBy,
		Priority: req.Priority,
		Notes:    req.Notes,
	})
	writeJSON(w, http.StatusCreated, item)
}

type groceryItemUpdateRequest struct {
	Name      *string      `json:"name"`
	Quantity  *string      `json:"quantity"`
	Store     *model.Store `json:"store"`
	Brand     *string      `json:"brand"`
	Type      *string      `json:"type"`
	Completed *bool        `json:"completed"`
	Priority  *bool        `json:"priority"`
	Notes     *string      `json:"notes"`
}

func (h *GroceryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req groceryItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	h.store.UpdateItem(r.PathValue("id"), store.GroceryItemUpdate{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Store:     req.Store,
		Brand:     req.Brand,
		Type:      req.Type,
		Completed: req.Completed,
		Priority:  req.Priority,
		Notes:     req.Notes,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroceryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteItem(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroceryHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleItemComplete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

type selectWeekRequest struct {
	Week string `json:"week"`
}

// SelectWeek changes the viewing week without moving any items.
func (h *GroceryHandler) SelectWeek(w http.ResponseWriter, r *http.Request) {
	var req selectWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	t, err := time.Parse(week.KeyFormat, req.Week)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "week must be formatted YYYY-MM-DD"})
		return
	}

	h.store.SetSelectedWeek(t)
	writeJSON(w, http.StatusOK, map[string]string{"week": week.Key(t)})
}

// AdvanceWeek rolls uncompleted items of the selected week forward, then
// moves the view to the next week.
func (h *GroceryHandler) AdvanceWeek(w http.ResponseWriter, r *http.Request) {
	h.store.TransferUncompletedItems()
	next := week.Next(h.store.SelectedWeek())
	h.store.SetSelectedWeek(next)
	writeJSON(w, http.StatusOK, map[string]string{"week": week.Key(next)})
}
