package model

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// Meal is a planned meal on a single calendar day. Date is a plain
// YYYY-MM-DD string so meals compare and sort by exact key.
type Meal struct {
	ID              string   `json:"id"`
	Type            MealType `json:"type"`
	Date            string   `json:"date"`
	Name            string   `json:"name"`
	AdditionalItems string   `json:"additional_items,omitempty"`
	RecipeURL       string   `json:"recipe_url,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}
