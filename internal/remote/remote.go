// Package remote provides typed row-level access to the backend relational
// store: profiles, households, household_members, and the (unused by this
// core) meals and grocery_items tables.
package remote

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dixitshiv/Roomate-Meal/internal/model"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Profile is a row in the profiles table. PasswordHash never leaves the
// auth layer.
type Profile struct {
	ID           string
	Email        string
	FullName     string
	AvatarURL    string
	PasswordHash string
}

// Membership is a row in the household_members table.
type Membership struct {
	ID          string
	HouseholdID string
	ProfileID   string
	Role        model.MemberRole
	JoinedAt    time.Time
}

// --- Profile methods ---

func scanProfile(scanner interface{ Scan(...any) error }) (*Profile, error) {
	var p Profile
	err := scanner.Scan(&p.ID, &p.Email, &p.FullName, &p.AvatarURL, &p.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const profileCols = `id, email, full_name, avatar_url, password_hash`

func (s *Store) InsertProfile(email, fullName, passwordHash string) (*Profile, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO profiles (id, email, full_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, email, fullName, passwordHash, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return s.ProfileByID(id)
}

func (s *Store) ProfileByID(id string) (*Profile, error) {
	row := s.db.QueryRow(`SELECT `+profileCols+` FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *Store) ProfileByEmail(email string) (*Profile, error) {
	row := s.db.QueryRow(`SELECT `+profileCols+` FROM profiles WHERE email = ?`, email)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile by email: %w", err)
	}
	return p, nil
}

// --- Household methods ---

func scanHousehold(scanner interface{ Scan(...any) error }) (*model.Household, error) {
	var h model.Household
	err := scanner.Scan(&h.ID, &h.Name, &h.PhotoURL, &h.Address, &h.InviteCode, &h.CreatedBy, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

const householdCols = `id, name, photo_url, address, invite_code, created_by, created_at`

func (s *Store) InsertHousehold(name, photoURL, address, inviteCode, createdBy string) (*model.Household, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO households (id, name, photo_url, address, invite_code, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, photoURL, address, inviteCode, createdBy, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert household: %w", err)
	}
	return s.HouseholdByID(id)
}

func (s *Store) HouseholdByID(id string) (*model.Household, error) {
	row := s.db.QueryRow(`SELECT `+householdCols+` FROM households WHERE id = ?`, id)
	h, err := scanHousehold(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get household: %w", err)
	}
	return h, nil
}

// HouseholdByInviteCode resolves a household by exact invite-code match.
// When collisions exist the oldest household wins.
func (s *Store) HouseholdByInviteCode(code string) (*model.Household, error) {
	row := s.db.QueryRow(
		`SELECT `+householdCols+` FROM households WHERE invite_code = ? ORDER BY created_at ASC LIMIT 1`,
		code,
	)
	h, err := scanHousehold(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get household by invite code: %w", err)
	}
	return h, nil
}

func (s *Store) UpdateInviteCode(householdID, code string) error {
	_, err := s.db.Exec(`UPDATE households SET invite_code = ? WHERE id = ?`, code, householdID)
	if err != nil {
		return fmt.Errorf("update invite code: %w", err)
	}
	return nil
}

// --- Membership methods ---

func scanMembership(scanner interface{ Scan(...any) error }) (*Membership, error) {
	var m Membership
	err := scanner.Scan(&m.ID, &m.HouseholdID, &m.ProfileID, &m.Role, &m.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const membershipCols = `id, household_id, profile_id, role, joined_at`

func (s *Store) InsertMember(householdID, profileID string, role model.MemberRole) (*Membership, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO household_members (id, household_id, profile_id, role, joined_at) VALUES (?, ?, ?, ?, ?)`,
		id, householdID, profileID, role, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}
	row := s.db.QueryRow(`SELECT `+membershipCols+` FROM household_members WHERE id = ?`, id)
	return scanMembership(row)
}

func (s *Store) DeleteMember(householdID, profileID string) error {
	_, err := s.db.Exec(
		`DELETE FROM household_members WHERE household_id = ? AND profile_id = ?`,
		householdID, profileID,
	)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

func (s *Store) DeleteMemberByID(memberID string) error {
	_, err := s.db.Exec(`DELETE FROM household_members WHERE id = ?`, memberID)
	if err != nil {
		return fmt.Errorf("delete member by id: %w", err)
	}
	return nil
}

func (s *Store) IsMember(householdID, profileID string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM household_members WHERE household_id = ? AND profile_id = ?`,
		householdID, profileID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return count > 0, nil
}

func (s *Store) UpdateMemberRole(memberID string, role model.MemberRole) error {
	_, err := s.db.Exec(`UPDATE household_members SET role = ? WHERE id = ?`, role, memberID)
	if err != nil {
		return fmt.Errorf("update member role: %w", err)
	}
	return nil
}

// LatestMembership resolves the profile's most recent membership, ties
// broken by newest join.
func (s *Store) LatestMembership(profileID string) (*Membership, error) {
	row := s.db.QueryRow(
		`SELECT `+membershipCols+` FROM household_members WHERE profile_id = ? ORDER BY joined_at DESC LIMIT 1`,
		profileID,
	)
	m, err := scanMembership(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest membership: %w", err)
	}
	return m, nil
}

// ListMembers returns the household roster joined to profiles, oldest join
// first. Display names denormalize full_name, falling back to email.
func (s *Store) ListMembers(householdID string) ([]model.Member, error) {
	rows, err := s.db.Query(
		`SELECT hm.id, hm.role, hm.joined_at, p.email, p.full_name
		 FROM household_members hm
		 JOIN profiles p ON p.id = hm.profile_id
		 WHERE hm.household_id = ?
		 ORDER BY hm.joined_at ASC`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		var fullName string
		if err := rows.Scan(&m.ID, &m.Role, &m.JoinedAt, &m.Email, &fullName); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.DisplayName = fullName
		if m.DisplayName == "" {
			m.DisplayName = m.Email
		}
		m.DietaryPreferences = []string{}
		members = append(members, m)
	}
	return members, rows.Err()
}
