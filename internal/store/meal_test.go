package store

import (
	"testing"

	"github.com/dixitshiv/Roomate-Meal/internal/cache"
	"github.com/dixitshiv/Roomate-Meal/internal/model"
)

func setupMealTest(t *testing.T) (*MealStore, *cache.Cache) {
	t.Helper()
	c, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return NewMealStore(c, testLogger()), c
}

func TestAddMealAssignsID(t *testing.T) {
	ms, _ := setupMealTest(t)

	meal := ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-03", Name: "Tacos"})
	if meal.ID == "" {
		t.Fatal("expected generated meal id")
	}
	if got := len(ms.Meals()); got != 1 {
		t.Errorf("meal count = %d, want 1", got)
	}
}

func TestUpdateMealMergesPartial(t *testing.T) {
	ms, _ := setupMealTest(t)
	meal := ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-03", Name: "Tacos", Notes: "spicy"})

	name := "Fish Tacos"
	recipe := "https://example.com/fish-tacos"
	ms.UpdateMeal(meal.ID, MealUpdate{Name: &name, RecipeURL: &recipe})

	got := ms.Meals()[0]
	if got.Name != "Fish Tacos" {
		t.Errorf("name = %q, want updated", got.Name)
	}
	if got.RecipeURL != recipe {
		t.Errorf("recipe url = %q, want updated", got.RecipeURL)
	}
	if got.Notes != "spicy" || got.Date != "2025-03-03" || got.Type != model.MealDinner {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateAndDeleteMissingIDAreNoops(t *testing.T) {
	ms, _ := setupMealTest(t)
	ms.AddMeal(model.Meal{Type: model.MealLunch, Date: "2025-03-03", Name: "Soup"})

	name := "Salad"
	ms.UpdateMeal("missing", MealUpdate{Name: &name})
	ms.DeleteMeal("missing")

	meals := ms.Meals()
	if len(meals) != 1 || meals[0].Name != "Soup" {
		t.Errorf("collection changed by no-op mutations: %+v", meals)
	}
}

func TestDeleteMeal(t *testing.T) {
	ms, _ := setupMealTest(t)
	meal := ms.AddMeal(model.Meal{Type: model.MealBreakfast, Date: "2025-03-03", Name: "Oats"})
	keep := ms.AddMeal(model.Meal{Type: model.MealLunch, Date: "2025-03-03", Name: "Soup"})

	ms.DeleteMeal(meal.ID)

	meals := ms.Meals()
	if len(meals) != 1 || meals[0].ID != keep.ID {
		t.Errorf("meals after delete = %+v, want only %q", meals, keep.Name)
	}
}

func TestMealsByDateExactMatch(t *testing.T) {
	ms, _ := setupMealTest(t)
	ms.AddMeal(model.Meal{Type: model.MealBreakfast, Date: "2025-03-03", Name: "Oats"})
	ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-03", Name: "Tacos"})
	ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-04", Name: "Pizza"})

	got := ms.MealsByDate("2025-03-03")
	if len(got) != 2 {
		t.Fatalf("meals on 2025-03-03 = %d, want 2", len(got))
	}
	if len(ms.MealsByDate("2025-03-05")) != 0 {
		t.Error("empty date should yield no meals")
	}
}

// The store accepts a second meal of the same type on the same date;
// offering "edit" instead of "add" is the caller's lookup-first policy.
func TestDuplicateDateTypePairAccepted(t *testing.T) {
	ms, _ := setupMealTest(t)
	ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-03", Name: "Tacos"})
	ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-03", Name: "Pizza"})

	got := ms.MealsByDate("2025-03-03")
	if len(got) != 2 {
		t.Fatalf("duplicate (date, type) records = %d, want both kept", len(got))
	}
}

func TestSnapshotRehydration(t *testing.T) {
	ms, c := setupMealTest(t)
	ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-03", Name: "Tacos", AdditionalItems: "guacamole"})
	ms.AddMeal(model.Meal{Type: model.MealBreakfast, Date: "2025-03-04", Name: "Oats"})

	rehydrated := NewMealStore(c, testLogger())
	meals := rehydrated.Meals()
	if len(meals) != 2 {
		t.Fatalf("rehydrated meals = %d, want 2", len(meals))
	}
	// Insertion order survives the round trip.
	if meals[0].Name != "Tacos" || meals[1].Name != "Oats" {
		t.Errorf("order lost: %+v", meals)
	}
	if meals[0].AdditionalItems != "guacamole" {
		t.Errorf("additional items lost: %+v", meals[0])
	}
}

func TestResetPersistsEmptyCollection(t *testing.T) {
	ms, c := setupMealTest(t)
	ms.AddMeal(model.Meal{Type: model.MealDinner, Date: "2025-03-03", Name: "Tacos"})

	ms.Reset()

	if got := len(ms.Meals()); got != 0 {
		t.Fatalf("meals after reset = %d, want 0", got)
	}
	rehydrated := NewMealStore(c, testLogger())
	if got := len(rehydrated.Meals()); got != 0 {
		t.Errorf("reset did not persist: rehydrated %d meals", got)
	}
}
