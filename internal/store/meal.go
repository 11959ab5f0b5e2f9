package store

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dixitshiv/Roomate-Meal/internal/cache"
	"github.com/dixitshiv/Roomate-Meal/internal/model"
)

const mealSnapshot = "meal-store"

// MealStore owns the planned-meal collection. It is purely local: every
// mutation is mirrored to the snapshot cache and the collection is
// rehydrated at construction. Meals are kept in insertion order with unique
// ids; date views are recomputed on read.
type MealStore struct {
	cache  *cache.Cache
	logger *slog.Logger

	mu    sync.Mutex
	meals []model.Meal
}

func NewMealStore(c *cache.Cache, logger *slog.Logger) *MealStore {
	s := &MealStore{cache: c, logger: logger}

	var meals []model.Meal
	ok, err := c.Get(mealSnapshot, &meals)
	if err != nil {
		logger.Warn("rehydrate meal snapshot", "error", err)
	} else if ok {
		s.meals = meals
	}
	return s
}

// persist mirrors the collection to the cache. Failures are logged and
// otherwise ignored; the in-memory mutation stands. Callers hold s.mu.
func (s *MealStore) persist() {
	if err := s.cache.Put(mealSnapshot, s.meals); err != nil {
		s.logger.Warn("persist meal snapshot", "error", err)
	}
}

// AddMeal assigns a fresh id and appends the meal. Duplicate (date, type)
// pairs are accepted; rejecting them is the caller's policy.
func (s *MealStore) AddMeal(m model.Meal) model.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	s.meals = append(s.meals, m)
	s.persist()
	return m
}

// MealUpdate carries a partial meal; nil fields are left untouched.
type MealUpdate struct {
	Type            *model.MealType
	Date            *string
	Name            *string
	AdditionalItems *string
	RecipeURL       *string
	Notes           *string
}

// UpdateMeal merges the update into the meal with the given id. A missing
// id is a silent no-op, not an error.
func (s *MealStore) UpdateMeal(id string, upd MealUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meals {
		if s.meals[i].ID != id {
			continue
		}
		m := &s.meals[i]
		if upd.Type != nil {
			m.Type = *upd.Type
		}
		if upd.Date != nil {
			m.Date = *upd.Date
		}
		if upd.Name != nil {
			m.Name = *upd.Name
		}
		if upd.AdditionalItems != nil {
			m.AdditionalItems = *upd.AdditionalItems
		}
		if upd.RecipeURL != nil {
			m.RecipeURL = *upd.RecipeURL
		}
		if upd.Notes != nil {
			m.Notes = *upd.Notes
		}
		s.persist()
		return
	}
}

// DeleteMeal removes the meal with the given id; no-op if absent.
func (s *MealStore) DeleteMeal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meals {
		if s.meals[i].ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			s.persist()
			return
		}
	}
}

// MealsByDate returns every meal whose date matches exactly.
func (s *MealStore) MealsByDate(date string) []model.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Meal
	for _, m := range s.meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

// Meals returns a copy of the full collection in insertion order.
func (s *MealStore) Meals() []model.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Meal{}, s.meals...)
}

func (s *MealStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meals = nil
	s.persist()
}
