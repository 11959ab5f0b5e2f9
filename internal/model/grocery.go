package model

// Store is a shopping destination. The fixed retailer seed list carries
// IsCustom=false; user-added stores carry IsCustom=true and only accumulate.
type Store struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsCustom bool   `json:"is_custom"`
}

// GroceryItem belongs to exactly one week, identified by Week: the canonical
// Monday-start date of the week the item was added to (or rolled over into).
type GroceryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Store     Store  `json:"store"`
	Brand     string `json:"brand,omitempty"`
	Type      string `json:"type,omitempty"`
	Completed bool   `json:"completed"`
	AddedBy   string `json:"added_by"`
	Priority  bool   `json:"priority"`
	Notes     string `json:"notes,omitempty"`
	Week      string `json:"week"`
}
