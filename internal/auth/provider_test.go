package auth

import (
	"testing"
	"time"

	"github.com/dixitshiv/Roomate-Meal/internal/apperr"
	"github.com/dixitshiv/Roomate-Meal/internal/database"
	"github.com/dixitshiv/Roomate-Meal/internal/model"
	"github.com/dixitshiv/Roomate-Meal/internal/remote"
)

func setupProvider(t *testing.T) *Provider {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewProvider(remote.New(db), NewTokenManager("test-secret", time.Hour))
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	p := setupProvider(t)

	_, err := p.SignUp("alice@example.com", "12345")
	if !apperr.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if p.CurrentUser() != nil {
		t.Error("no session should start on rejected sign-up")
	}
}

func TestSignUpNormalizesEmail(t *testing.T) {
	p := setupProvider(t)

	u, err := p.SignUp("  Alice@Example.COM ", "secret1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q, want lower-cased and trimmed", u.Email)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	p := setupProvider(t)

	if _, err := p.SignUp("alice@example.com", "secret1"); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	_, err := p.SignUp("alice@example.com", "different1")
	if !apperr.IsConflict(err) {
		t.Fatalf("err = %v, want conflict error", err)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	p := setupProvider(t)

	if _, err := p.SignUp("alice@example.com", "secret1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	p.SignOut()
	if p.CurrentUser() != nil {
		t.Fatal("user still present after sign-out")
	}
	if p.Token() != "" {
		t.Fatal("token still present after sign-out")
	}

	// Sign-in applies the same normalization as sign-up.
	u, err := p.SignIn(" ALICE@example.com ", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized", u.Email)
	}

	claims, err := NewTokenManager("test-secret", time.Hour).Validate(p.Token())
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != u.ID || claims.Email != u.Email {
		t.Errorf("claims = %+v, want user %s", claims, u.ID)
	}
}

func TestSignInBadCredentials(t *testing.T) {
	p := setupProvider(t)

	if _, err := p.SignUp("alice@example.com", "secret1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	p.SignOut()

	if _, err := p.SignIn("alice@example.com", "wrong-pass"); !apperr.IsRemote(err) {
		t.Errorf("wrong password err = %v, want remote error", err)
	}
	if _, err := p.SignIn("stranger@example.com", "secret1"); !apperr.IsRemote(err) {
		t.Errorf("unknown email err = %v, want remote error", err)
	}
	if p.CurrentUser() != nil {
		t.Error("failed sign-in must not start a session")
	}
}

type fakeResetter struct {
	calls int
}

func (f *fakeResetter) ResetAll() { f.calls++ }

func TestSignOutResetsStoresAndNotifies(t *testing.T) {
	p := setupProvider(t)
	resetter := &fakeResetter{}
	p.SetResetter(resetter)

	var changes []*model.User
	p.OnChange(func(u *model.User) { changes = append(changes, u) })

	if _, err := p.SignUp("alice@example.com", "secret1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	p.SignOut()

	if resetter.calls != 1 {
		t.Errorf("resetter calls = %d, want 1", resetter.calls)
	}
	if len(changes) != 2 {
		t.Fatalf("change notifications = %d, want 2", len(changes))
	}
	if changes[0] == nil || changes[0].Email != "alice@example.com" {
		t.Errorf("first notification = %+v, want signed-in user", changes[0])
	}
	if changes[1] != nil {
		t.Errorf("second notification = %+v, want nil at sign-out", changes[1])
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)
	token, err := tm.Generate(&model.User{ID: "u1", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := tm.Validate(token); err == nil {
		t.Error("expected expired token to fail validation")
	}
}
