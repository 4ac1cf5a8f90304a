package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/freshcart/freshcart/internal/model"
	"github.com/freshcart/freshcart/internal/store"
)

type AuthService struct {
	store   *store.Store
	latency Latency

	mu       sync.Mutex
	sessions map[string]*model.Session
}

func NewAuthService(st *store.Store, latency Latency) *AuthService {
	return &AuthService{
		store:    st,
		latency:  latency,
		sessions: make(map[string]*model.Session),
	}
}

// Register creates a customer account. The email uniqueness check is
// check-then-write over the whole collection, like every other store write.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	s.latency.write()

	users := s.store.Users()
	for _, u := range users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           newID(),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleCustomer,
	}
	s.store.SetUsers(append(users, user))

	out := user.Sanitized()
	return &out, nil
}

// Login resolves to the matching user with the credential stripped, or
// ErrInvalidCredentials. The error never says which part was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	s.latency.write()

	for _, u := range s.store.Users() {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		out := u.Sanitized()
		return &out, nil
	}
	return nil, ErrInvalidCredentials
}

// CreateSession mints an opaque token for a logged-in user. Sessions live in
// memory only: a restart forgets them, like the browser session they model.
func (s *AuthService) CreateSession(user model.User) (*model.Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	data, err := json.Marshal(user.Sanitized())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session data: %w", err)
	}

	session := &model.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Data:      data,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("session not found or expired")
	}
	return session, nil
}

func (s *AuthService) DeleteSession(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
