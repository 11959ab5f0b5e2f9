package model

import "time"

type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

type Household struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	Address    string    `json:"address,omitempty"`
	InviteCode string    `json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	Members    []Member  `json:"members"`
}

// Member is a household participant. DisplayName denormalizes the profile's
// full name, falling back to the email when no name is set.
type Member struct {
	ID                 string     `json:"id"`
	DisplayName        string     `json:"display_name"`
	Email              string     `json:"email"`
	Role               MemberRole `json:"role"`
	JoinedAt           time.Time  `json:"joined_at"`
	DietaryPreferences []string   `json:"dietary_preferences"`
}
