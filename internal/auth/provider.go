// Package auth is the identity provider: it owns the signed-in user, hashes
// credentials with bcrypt, mints JWT session tokens, and notifies
// subscribers whenever the session changes.
package auth

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/dixitshiv/Roomate-Meal/internal/apperr"
	"github.com/dixitshiv/Roomate-Meal/internal/model"
	"github.com/dixitshiv/Roomate-Meal/internal/remote"
)

const minPasswordLen = 6

// Resetter clears dependent state at sign-out. Wired to the store reset
// coordinator so all three stores drop their in-memory state before the
// session is revoked.
type Resetter interface {
	ResetAll()
}

type Provider struct {
	remote   *remote.Store
	tokens   *TokenManager
	resetter Resetter

	mu    sync.Mutex
	user  *model.User
	token string
	subs  []func(*model.User)
}

func NewProvider(rs *remote.Store, tokens *TokenManager) *Provider {
	return &Provider{remote: rs, tokens: tokens}
}

// SetResetter registers the coordinator invoked at sign-out. Wired after
// construction because the stores are built after the provider.
func (p *Provider) SetResetter(r Resetter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetter = r
}

// CurrentUser returns the signed-in identity, or nil.
func (p *Provider) CurrentUser() *model.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	return &u
}

// Token returns the session token for the active session, or empty.
func (p *Provider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// OnChange registers fn to be called with the new user (nil at sign-out)
// on every session change.
func (p *Provider) OnChange(fn func(*model.User)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a new profile and starts a session for it.
func (p *Provider) SignUp(email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}
	if len(password) < minPasswordLen {
		return nil, apperr.Validation("password must be at least %d characters", minPasswordLen)
	}

	existing, err := p.remote.ProfileByEmail(email)
	if err != nil {
		return nil, apperr.Remote(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Remote(err)
	}

	profile, err := p.remote.InsertProfile(email, "", string(hash))
	if err != nil {
		return nil, apperr.Remote(err)
	}

	return p.startSession(profile)
}

// SignIn authenticates an existing profile and starts a session.
func (p *Provider) SignIn(email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	profile, err := p.remote.ProfileByEmail(email)
	if err != nil {
		return nil, apperr.Remote(err)
	}
	if profile == nil {
		return nil, apperr.Remote(errors.New("invalid email or password"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Remote(errors.New("invalid email or password"))
	}

	return p.startSession(profile)
}

// SignOut clears all registered stores, then revokes the local session and
// notifies subscribers.
func (p *Provider) SignOut() {
	p.mu.Lock()
	resetter := p.resetter
	p.mu.Unlock()

	if resetter != nil {
		resetter.ResetAll()
	}

	p.mu.Lock()
	p.user = nil
	p.token = ""
	subs := append([]func(*model.User){}, p.subs...)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

func (p *Provider) startSession(profile *remote.Profile) (*model.User, error) {
	user := &model.User{ID: profile.ID, Email: profile.Email}

	token, err := p.tokens.Generate(user)
	if err != nil {
		return nil, apperr.Remote(err)
	}

	p.mu.Lock()
	p.user = user
	p.token = token
	subs := append([]func(*model.User){}, p.subs...)
	p.mu.Unlock()

	for _, fn := range subs {
		u := *user
		fn(&u)
	}
	return user, nil
}
