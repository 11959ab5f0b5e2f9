package store

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/dixitshiv/Roomate-Meal/internal/apperr"
	"github.com/dixitshiv/Roomate-Meal/internal/model"
	"github.com/dixitshiv/Roomate-Meal/internal/remote"
)

const (
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLen      = 8
)

var inviteCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// newInviteCode draws 8 independent uniform symbols. Collisions across
// households are possible and accepted; lookup is exact-match only.
func newInviteCode() string {
	b := make([]byte, inviteCodeLen)
	for i := range b {
		b[i] = inviteCodeAlphabet[rand.IntN(len(inviteCodeAlphabet))]
	}
	return string(b)
}

// Backend is the remote relational capability the household store consumes:
// typed row-level calls over households, household_members, and profiles.
type Backend interface {
	InsertHousehold(name, photoURL, address, inviteCode, createdBy string) (*model.Household, error)
	HouseholdByID(id string) (*model.Household, error)
	HouseholdByInviteCode(code string) (*model.Household, error)
	UpdateInviteCode(householdID, code string) error
	InsertMember(householdID, profileID string, role model.MemberRole) (*remote.Membership, error)
	DeleteMember(householdID, profileID string) error
	DeleteMemberByID(memberID string) error
	IsMember(householdID, profileID string) (bool, error)
	UpdateMemberRole(memberID string, role model.MemberRole) error
	LatestMembership(profileID string) (*remote.Membership, error)
	ListMembers(householdID string) ([]model.Member, error)
	ProfileByEmail(email string) (*remote.Profile, error)
}

// Identity yields the signed-in user, or nil.
type Identity interface {
	CurrentUser() *model.User
}

// HouseholdStore owns the caller's active household: membership roster and
// invite-code lifecycle, synced against the remote store. Nothing is cached
// locally; state is refetched each session. Phases: empty → loading →
// {no-household | has-household} → leaving → empty.
type HouseholdStore struct {
	backend  Backend
	identity Identity

	mu        sync.Mutex
	household *model.Household
	loading   bool
	err       error
}

func NewHouseholdStore(backend Backend, identity Identity) *HouseholdStore {
	return &HouseholdStore{backend: backend, identity: identity}
}

// Household returns a copy of the active household, or nil.
func (s *HouseholdStore) Household() *model.Household {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.household == nil {
		return nil
	}
	h := *s.household
	h.Members = append([]model.Member{}, s.household.Members...)
	return &h
}

func (s *HouseholdStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded operation error, for durable diagnostics.
func (s *HouseholdStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// begin marks the store loading. The mutex is not held across remote
// round-trips, so other store operations interleave freely between a
// request and its resolution.
func (s *HouseholdStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

// finish clears the loading flag on both success and failure paths and
// records the outcome in the store's error field.
func (s *HouseholdStore) finish(err error) error {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
	return err
}

// CreateHousehold persists a new household with a fresh invite code and an
// admin membership for the caller, then refetches full state. If the
// household insert succeeds but the membership insert fails, the household
// exists remotely with no members; that window is not rolled back.
func (s *HouseholdStore) CreateHousehold(name, photoURL, address string) error {
	user := s.identity.CurrentUser()
	if user == nil {
		return apperr.Validation("you must be signed in to create a household")
	}

	s.begin()

	name = strings.TrimSpace(name)
	if name == "" {
		return s.finish(apperr.Validation("household name is required"))
	}

	h, err := s.backend.InsertHousehold(name, strings.TrimSpace(photoURL), strings.TrimSpace(address), newInviteCode(), user.ID)
	if err != nil {
		return s.finish(apperr.Remote(err))
	}
	if _, err := s.backend.InsertMember(h.ID, user.ID, model.RoleAdmin); err != nil {
		return s.finish(apperr.Remote(err))
	}

	return s.finish(s.fetch(user))
}

// JoinHouseholdByCode redeems an invite code for a member-role membership.
// Malformed codes fail before any remote call.
func (s *HouseholdStore) JoinHouseholdByCode(code string) error {
	user := s.identity.CurrentUser()
	if user == nil {
		return apperr.Validation("you must be signed in to join a household")
	}

	s.begin()

	code = strings.ToUpper(strings.TrimSpace(code))
	if !inviteCodePattern.MatchString(code) {
		return s.finish(apperr.Validation("invalid invite code format"))
	}

	h, err := s.backend.HouseholdByInviteCode(code)
	if err != nil {
		return s.finish(apperr.Remote(err))
	}
	if h == nil {
		return s.finish(apperr.NotFound("invalid invite code, please check and try again"))
	}

	already, err := s.backend.IsMember(h.ID, user.ID)
	if err != nil {
		return s.finish(apperr.Remote(err))
	}
	if already {
		return s.finish(apperr.Conflict("you are already a member of %s", h.Name))
	}

	if _, err := s.backend.InsertMember(h.ID, user.ID, model.RoleMember); err != nil {
		return s.finish(apperr.Remote(err))
	}

	return s.finish(s.fetch(user))
}

// GenerateInviteCode draws a replacement code and overwrites the stored
// one. No uniqueness check against other households is performed.
func (s *HouseholdStore) GenerateInviteCode() (string, error) {
	user := s.identity.CurrentUser()
	s.mu.Lock()
	h := s.household
	s.mu.Unlock()
	if h == nil {
		return "", apperr.Validation("no household selected")
	}

	s.begin()

	code := newInviteCode()
	if err := s.backend.UpdateInviteCode(h.ID, code); err != nil {
		return "", s.finish(apperr.Remote(err))
	}

	return code, s.finish(s.fetch(user))
}

// LeaveHousehold deletes the caller's membership row and clears local
// household state unconditionally on success, even if the remote delete had
// partial effects. If the caller is the sole admin, no succession is
// enforced here.
func (s *HouseholdStore) LeaveHousehold() error {
	user := s.identity.CurrentUser()
	s.mu.Lock()
	h := s.household
	s.mu.Unlock()
	if h == nil || user == nil {
		return nil
	}

	s.begin()

	if err := s.backend.DeleteMember(h.ID, user.ID); err != nil {
		return s.finish(apperr.Remote(err))
	}

	s.mu.Lock()
	s.household = nil
	s.mu.Unlock()
	return s.finish(nil)
}

// TransferAdmin promotes the given member to admin and demotes every other
// admin to member, then refetches.
func (s *HouseholdStore) TransferAdmin(newAdminID string) error {
	user := s.identity.CurrentUser()
	s.mu.Lock()
	h := s.household
	s.mu.Unlock()
	if h == nil {
		return apperr.Validation("no household selected")
	}

	var target *model.Member
	var demote []string
	for i := range h.Members {
		m := &h.Members[i]
		if m.ID == newAdminID {
			target = m
		} else if m.Role == model.RoleAdmin {
			demote = append(demote, m.ID)
		}
	}
	if target == nil {
		return apperr.NotFound("member not found in household")
	}

	s.begin()

	if err := s.backend.UpdateMemberRole(target.ID, model.RoleAdmin); err != nil {
		return s.finish(apperr.Remote(err))
	}
	for _, id := range demote {
		if err := s.backend.UpdateMemberRole(id, model.RoleMember); err != nil {
			return s.finish(apperr.Remote(err))
		}
	}

	return s.finish(s.fetch(user))
}

// AddMember resolves a profile by email and inserts a membership with the
// given role, then refetches.
func (s *HouseholdStore) AddMember(email string, role model.MemberRole) error {
	user := s.identity.CurrentUser()
	s.mu.Lock()
	h := s.household
	s.mu.Unlock()
	if h == nil {
		return apperr.Validation("no household selected")
	}

	s.begin()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return s.finish(apperr.Validation("email is required"))
	}

	profile, err := s.backend.ProfileByEmail(email)
	if err != nil {
		return s.finish(apperr.Remote(err))
	}
	if profile == nil {
		return s.finish(apperr.NotFound("no account found for %s", email))
	}

	already, err := s.backend.IsMember(h.ID, profile.ID)
	if err != nil {
		return s.finish(apperr.Remote(err))
	}
	if already {
		return s.finish(apperr.Conflict("%s is already a member of %s", email, h.Name))
	}

	if _, err := s.backend.InsertMember(h.ID, profile.ID, role); err != nil {
		return s.finish(apperr.Remote(err))
	}

	return s.finish(s.fetch(user))
}

// RemoveMember deletes the membership row by member id, then refetches.
func (s *HouseholdStore) RemoveMember(memberID string) error {
	user := s.identity.CurrentUser()
	s.mu.Lock()
	h := s.household
	s.mu.Unlock()
	if h == nil {
		return apperr.Validation("no household selected")
	}

	s.begin()

	if err := s.backend.DeleteMemberByID(memberID); err != nil {
		return s.finish(apperr.Remote(err))
	}

	return s.finish(s.fetch(user))
}

// MemberUpdate carries partial member fields; nil fields are untouched.
type MemberUpdate struct {
	DisplayName        *string
	DietaryPreferences *[]string
}

// UpdateMember mutates the local roster entry only; the change is not
// persisted remotely and is lost on the next refetch.
func (s *HouseholdStore) UpdateMember(memberID string, upd MemberUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.household == nil {
		return
	}
	for i := range s.household.Members {
		m := &s.household.Members[i]
		if m.ID != memberID {
			continue
		}
		if upd.DisplayName != nil {
			m.DisplayName = *upd.DisplayName
		}
		if upd.DietaryPreferences != nil {
			m.DietaryPreferences = append([]string{}, (*upd.DietaryPreferences)...)
		}
		return
	}
}

// FetchHousehold resolves the caller's most recent membership and loads the
// household with its full roster. Having no membership resolves to "no
// household" without error.
func (s *HouseholdStore) FetchHousehold() error {
	user := s.identity.CurrentUser()
	if user == nil {
		s.mu.Lock()
		s.household = nil
		s.loading = false
		s.err = nil
		s.mu.Unlock()
		return nil
	}

	s.begin()
	return s.finish(s.fetch(user))
}

// fetch performs the membership → household → roster resolution and
// replaces local state. On failure local household state is cleared rather
// than left stale.
func (s *HouseholdStore) fetch(user *model.User) error {
	drop := func(err error) error {
		s.mu.Lock()
		s.household = nil
		s.mu.Unlock()
		return err
	}

	membership, err := s.backend.LatestMembership(user.ID)
	if err != nil {
		return drop(apperr.Remote(err))
	}
	if membership == nil {
		return drop(nil)
	}

	h, err := s.backend.HouseholdByID(membership.HouseholdID)
	if err != nil {
		return drop(apperr.Remote(err))
	}
	if h == nil {
		return drop(apperr.NotFound("household no longer exists"))
	}

	members, err := s.backend.ListMembers(h.ID)
	if err != nil {
		return drop(apperr.Remote(err))
	}
	h.Members = members

	s.mu.Lock()
	s.household = h
	s.mu.Unlock()
	return nil
}

func (s *HouseholdStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.household = nil
	s.loading = false
	s.err = nil
}
