package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dixitshiv/Roomate-Meal/internal/model"
	"github.com/dixitshiv/Roomate-Meal/internal/store"
)

type MealHandler struct {
	store *store.MealStore
}

func NewMealHandler(ms *store.MealStore) *MealHandler {
	return &MealHandler{store: ms}
}

// List returns all meals, or the meals for an exact date when the date
// query parameter is present.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	var meals []model.Meal
	if date := r.URL.Query().Get("date"); date != "" {
		meals = h.store.MealsByDate(date)
	} else {
		meals = h.store.Meals()
	}
	if meals == nil {
		meals = []model.Meal{}
	}
	writeJSON(w, http.StatusOK, meals)
}

type mealRequest struct {
	Type            model.MealType `json:"type"`
	Date            string         `json:"date"`
	Name            string         `json:"name"`
	AdditionalItems string         `json:"additional_items"`
	RecipeURL       string         `json:"recipe_url"`
	Notes           string         `json:"notes"`
}

func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	switch req.Type {
	case model.MealBreakfast, model.MealLunch, model.MealDinner:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type must be breakfast, lunch, or dinner"})
		return
	}
	if req.Date == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date is required"})
		return
	}

	meal := h.store.AddMeal(model.Meal{
		Type:            req.Type,
		Date:            req.Date,
		Name:            req.Name,
		AdditionalItems: req.AdditionalItems,
		RecipeURL:       req.RecipeURL,
		Notes:           req.Notes,
	})
	writeJSON(w, http.StatusCreated, meal)
}

type mealUpdateRequest struct {
	Type            *model.MealType `json:"type"`
	Date            *string         `json:"date"`
	Name            *string         `json:"name"`
	AdditionalItems *string         `json:"additional_items"`
	RecipeURL       *string         `json:"recipe_url"`
	Notes           *string         `json:"notes"`
}

func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req mealUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	h.store.UpdateMeal(r.PathValue("id"), store.MealUpdate{
		Type:            req.Type,
		Date:            req.Date,
		Name:            req.Name,
		AdditionalItems: req.AdditionalItems,
		RecipeURL:       req.RecipeURL,
		Notes:           req.Notes,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteMeal(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
