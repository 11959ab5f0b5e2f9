package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dixitshiv/Roomate-Meal/internal/model"
	"github.com/dixitshiv/Roomate-Meal/internal/store"
)

type HouseholdHandler struct {
	store  *store.HouseholdStore
	logger *slog.Logger
}

func NewHouseholdHandler(hs *store.HouseholdStore, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{store: hs, logger: logger}
}

// Get refetches and returns the caller's active household; null when the
// caller belongs to none.
func (h *HouseholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := h.store.FetchHousehold(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"household": h.store.Household()})
}

type createHouseholdRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Address  string `json:"address"`
}

func (h *HouseholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.store.CreateHousehold(req.Name, req.PhotoURL, req.Address); err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("household created", "name", req.Name)
	writeJSON(w, http.StatusCreated, map[string]any{"household": h.store.Household()})
}

type joinRequest struct {
	Code string `json:"code"`
}

func (h *HouseholdHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.store.JoinHouseholdByCode(req.Code); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"household": h.store.Household()})
}

func (h *HouseholdHandler) Leave(w http.ResponseWriter, r *http.Request) {
	if err := h.store.LeaveHousehold(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HouseholdHandler) RegenerateInviteCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.store.GenerateInviteCode()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"invite_code": code})
}

type transferAdminRequest struct {
	MemberID string `json:"member_id"`
}

func (h *HouseholdHandler) TransferAdmin(w http.ResponseWriter, r *http.Request) {
	var req transferAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.store.TransferAdmin(req.MemberID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"household": h.store.Household()})
}

type addMemberRequest struct {
	Email string           `json:"email"`
	Role  model.MemberRole `json:"role"`
}

func (h *HouseholdHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Role == "" {
		req.Role = model.RoleMember
	}

	if err := h.store.AddMember(req.Email, req.Role); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"household": h.store.Household()})
}

func (h *HouseholdHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveMember(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateMemberRequest struct {
	DisplayName        *string   `json:"display_name"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
}

func (h *HouseholdHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	h.store.UpdateMember(r.PathValue("id"), store.MemberUpdate{
		DisplayName:        req.DisplayName,
		DietaryPreferences: req.DietaryPreferences,
	})
	writeJSON(w, http.StatusOK, map[string]any{"household": h.store.Household()})
}
