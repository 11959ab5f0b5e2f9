// Package grocery infers the aisle category of a grocery item from its
// name. Used to fill in the item type when the member adding the item
// leaves it blank.
package grocery

import (
	"sort"
	"strings"
)

const fallbackCategory = "Other"

// keywords lists, per category, names and name fragments that identify
// it. Matching is case-insensitive: an exact name match wins, otherwise
// the longest keyword contained in the name decides.
var keywords = map[string][]string{
	"Produce": {
		"apple", "banana", "orange", "lemon", "lime", "avocado", "tomato",
		"potato", "sweet potato", "onion", "green onion", "garlic", "ginger",
		"lettuce", "romaine", "arugula", "spinach", "kale", "cabbage",
		"broccoli", "cauliflower", "carrot", "celery", "cucumber", "pepper",
		"bell pepper", "mushroom", "corn", "zucchini", "squash", "asparagus",
		"green beans", "grape", "berry", "berries", "strawberries",
		"blueberries", "melon", "watermelon", "pineapple", "mango", "peach",
		"pear", "fruit", "herb", "cilantro", "basil", "parsley",
	},
	"Dairy": {
		"milk", "almond milk", "oat milk", "egg", "butter", "cheese",
		"cream", "cream cheese", "sour cream", "heavy cream",
		"cottage cheese", "half and half", "yogurt", "greek yogurt",
	},
	"Meat & Seafood": {
		"chicken", "chicken breast", "chicken thigh", "beef", "ground beef",
		"pork", "pork chop", "turkey", "ground turkey", "bacon", "sausage",
		"ham", "steak", "lamb", "hot dog", "deli meat", "salmon", "shrimp",
		"tuna", "tilapia", "fish", "crab", "lobster",
	},
	"Bakery": {
		"bread", "sourdough", "whole wheat", "bagel", "tortilla", "roll",
		"bun", "muffin", "croissant", "pita",
	},
	"Pantry": {
		"rice", "pasta", "spaghetti", "noodle", "flour", "sugar", "salt",
		"oil", "olive oil", "coconut oil", "vinegar", "soy sauce",
		"hot sauce", "pasta sauce", "tomato sauce", "sauce", "ketchup",
		"mustard", "mayonnaise", "honey", "maple syrup", "peanut butter",
		"jelly", "jam", "salsa", "cereal", "oatmeal", "granola", "canned",
		"soup", "broth", "stock", "bean", "lentil", "nut", "almonds",
		"spice", "seasoning",
	},
	"Frozen": {
		"frozen", "ice cream", "popsicle",
	},
	"Beverages": {
		"water", "sparkling water", "juice", "orange juice", "coffee",
		"tea", "soda", "lemonade", "kombucha", "beer", "wine", "drink",
	},
	"Snacks": {
		"chip", "cracker", "cookie", "popcorn", "pretzel", "granola bar",
		"trail mix", "fruit snack", "candy", "chocolate", "snack",
	},
	"Household": {
		"paper towel", "toilet paper", "trash bag", "garbage bag",
		"dish soap", "laundry", "detergent", "cleaner", "cleaning",
		"sponge", "foil", "plastic wrap", "ziplock", "napkin", "battery",
		"light bulb", "bleach",
	},
	"Personal Care": {
		"shampoo", "conditioner", "soap", "body wash", "toothpaste",
		"toothbrush", "deodorant", "lotion", "sunscreen", "floss", "razor",
		"tissue", "band-aid",
	},
}

type keywordEntry struct {
	keyword  string
	category string
}

var (
	exact    = map[string]string{}
	contains []keywordEntry
)

func init() {
	categories := make([]string, 0, len(keywords))
	for category := range keywords {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, w := range keywords[category] {
			exact[w] = category
			contains = append(contains, keywordEntry{keyword: w, category: category})
		}
	}
	// Longest keyword first so "peanut butter" beats "butter".
	sort.SliceStable(contains, func(i, j int) bool {
		return len(contains[i].keyword) > len(contains[j].keyword)
	})
}

// Categorize returns the aisle category for the given item name, or
// "Other" when nothing matches.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return fallbackCategory
	}
	if cat, ok := exact[name]; ok {
		return cat
	}
	if cat, ok := exact[strings.TrimSuffix(name, "s")]; ok {
		return cat
	}
	for _, entry := range contains {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}
	return fallbackCategory
}
