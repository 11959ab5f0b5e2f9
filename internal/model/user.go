package model

// User is the identity supplied by the auth provider. It is referenced by
// value throughout the stores and never owned by them.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
