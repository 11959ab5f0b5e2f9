package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dixitshiv/Roomate-Meal/internal/cache"
	"github.com/dixitshiv/Roomate-Meal/internal/grocery"
	"github.com/dixitshiv/Roomate-Meal/internal/model"
	"github.com/dixitshiv/Roomate-Meal/internal/week"
)

const grocerySnapshot = "grocery-store"

// Fixed retailer seed list. Custom stores append after these and only
// accumulate; no store deletion exists.
var defaultStores = []model.Store{
	{ID: "1", Name: "Walmart"},
	{ID: "2", Name: "Target"},
	{ID: "3", Name: "Whole Foods"},
	{ID: "4", Name: "Costco"},
	{ID: "5", Name: "Trader Joe's"},
	{ID: "6", Name: "Kroger"},
	{ID: "7", Name: "Safeway"},
	{ID: "8", Name: "Publix"},
	{ID: "9", Name: "Aldi"},
	{ID: "10", Name: "Meijer"},
}

type grocerySnapshotState struct {
	Items  []model.GroceryItem `json:"items"`
	Stores []model.Store       `json:"stores"`
}

// GroceryStore owns grocery items, shopping destinations, and the currently
// selected week. Items partition by week key; every view and the rollover
// algorithm operate on the week currently selected, never on an item's own
// history. Purely local: items and stores mirror to the snapshot cache,
// the selected week re-defaults to now each process start.
type GroceryStore struct {
	cache  *cache.Cache
	logger *slog.Logger

	mu           sync.Mutex
	items        []model.GroceryItem
	stores       []model.Store
	selectedWeek time.Time
}

func NewGroceryStore(c *cache.Cache, logger *slog.Logger) *GroceryStore {
	s := &GroceryStore{
		cache:        c,
		logger:       logger,
		stores:       append([]model.Store{}, defaultStores...),
		selectedWeek: time.Now(),
	}

	var snap grocerySnapshotState
	ok, err := c.Get(grocerySnapshot, &snap)
	if err != nil {
		logger.Warn("rehydrate grocery snapshot", "error", err)
	} else if ok {
		s.items = snap.Items
		if len(snap.Stores) > 0 {
			s.stores = snap.Stores
		}
	}
	return s
}

// persist mirrors items and stores to the cache. Failures are logged and
// otherwise ignored. Callers hold s.mu.
func (s *GroceryStore) persist() {
	snap := grocerySnapshotState{Items: s.items, Stores: s.stores}
	if err := s.cache.Put(grocerySnapshot, snap); err != nil {
		s.logger.Warn("persist grocery snapshot", "error", err)
	}
}

// AddItem assigns a fresh id, stamps the item with the currently selected
// week's key, and appends it. Items carry no date of their own, so every
// add binds to whatever week is being viewed at call time. An item added
// without a type gets one inferred from its name.
func (s *GroceryStore) AddItem(item model.GroceryItem) model.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	item.Week = week.Key(s.selectedWeek)
	if item.Type == "" {
		item.Type = grocery.Categorize(item.Name)
	}
	s.items = append(s.items, item)
	s.persist()
	return item
}

// GroceryItemUpdate carries a partial item; nil fields are left untouched.
type GroceryItemUpdate struct {
	Name      *string
	Quantity  *string
	Store     *model.Store
	Brand     *string
	Type      *string
	Completed *bool
	Priority  *bool
	Notes     *string
}

// UpdateItem merges the update into the item with the given id; no-op if
// absent.
func (s *GroceryStore) UpdateItem(id string, upd GroceryItemUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		if upd.Name != nil {
			item.Name = *upd.Name
		}
		if upd.Quantity != nil {
			item.Quantity = *upd.Quantity
		}
		if upd.Store != nil {
			item.Store = *upd.Store
		}
		if upd.Brand != nil {
			item.Brand = *upd.Brand
		}
		if upd.Type != nil {
			item.Type = *upd.Type
		}
		if upd.Completed != nil {
			item.Completed = *upd.Completed
		}
		if upd.Priority != nil {
			item.Priority = *upd.Priority
		}
		if upd.Notes != nil {
			item.Notes = *upd.Notes
		}
		s.persist()
		return
	}
}

// DeleteItem removes the item with the given id; no-op if absent.
func (s *GroceryStore) DeleteItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// ToggleItemComplete flips the completed flag; no-op if absent.
func (s *GroceryStore) ToggleItemComplete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Completed = !s.items[i].Completed
			s.persist()
			return
		}
	}
}

// AddStore appends a custom shopping destination. Names are not
// deduplicated against existing stores.
func (s *GroceryStore) AddStore(name string) model.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := model.Store{ID: uuid.NewString(), Name: name, IsCustom: true}
	s.stores = append(s.stores, st)
	s.persist()
	return st
}

// Stores returns a copy of all shopping destinations, seed list first.
func (s *GroceryStore) Stores() []model.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Store{}, s.stores...)
}

// ItemsByStore returns the items for the given store in the currently
// selected week. This is always a this-week view, never historical.
func (s *GroceryStore) ItemsByStore(storeID string) []model.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := week.Key(s.selectedWeek)
	var out []model.GroceryItem
	for _, item := range s.items {
		if item.Store.ID == storeID && item.Week == current {
			out = append(out, item)
		}
	}
	return out
}

// Items returns a copy of the full collection in insertion order.
func (s *GroceryStore) Items() []model.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.GroceryItem{}, s.items...)
}

// SelectedWeek returns the week currently being viewed.
func (s *GroceryStore) SelectedWeek() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedWeek
}

// SetSelectedWeek changes the viewing week. It moves no items by itself.
func (s *GroceryStore) SetSelectedWeek(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedWeek = t
}

// TransferUncompletedItems reassigns every uncompleted item of the
// currently selected week to the following week. Completed items and items
// from other weeks are untouched. Invoked when the UI navigates forward a
// week: what wasn't bought rolls onto next week's list.
func (s *GroceryStore) TransferUncompletedItems() {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := week.Key(s.selectedWeek)
	next := week.Key(week.Next(s.selectedWeek))

	moved := false
	for i := range s.items {
		if !s.items[i].Completed && s.items[i].Week == current {
			s.items[i].Week = next
			moved = true
		}
	}
	if moved {
		s.persist()
	}
}

func (s *GroceryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.stores = append([]model.Store{}, defaultStores...)
	s.selectedWeek = time.Now()
	s.persist()
}
