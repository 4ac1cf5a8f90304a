package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/freshcart/internal/model"
)

func TestLoginSeedAdmin(t *testing.T) {
	svc := NewAuthService(newSeededStore(t), Latency{})

	user, err := svc.Login(context.Background(), "admin@freshcart.com", "adminpassword")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, "admin1", user.ID)
	assert.Empty(t, user.PasswordHash)

	// The serialized form must not leak any credential field either.
	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "passwordHash")
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(newSeededStore(t), Latency{})
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin@freshcart.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@freshcart.com", "adminpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterCreatesCustomer(t *testing.T) {
	st := newSeededStore(t)
	svc := NewAuthService(st, Latency{})
	ctx := context.Background()

	user, err := svc.Register(ctx, "new@freshcart.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash)

	// The fresh account can log in right away.
	logged, err := svc.Login(ctx, "new@freshcart.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	st := newSeededStore(t)
	svc := NewAuthService(st, Latency{})
	ctx := context.Background()

	before := len(st.Users())

	_, err := svc.Register(ctx, "new@freshcart.com", "supersecret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "new@freshcart.com", "anothersecret")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Exactly one account was added, not two.
	assert.Len(t, st.Users(), before+1)
}

func TestSessionLifecycle(t *testing.T) {
	svc := NewAuthService(newSeededStore(t), Latency{})
	ctx := context.Background()

	user, err := svc.Login(ctx, "customer@freshcart.com", "customerpassword")
	require.NoError(t, err)

	sess, err := svc.CreateSession(*user)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, user.ID, sess.UserID)

	var stored model.User
	require.NoError(t, json.Unmarshal(sess.Data, &stored))
	assert.Empty(t, stored.PasswordHash)

	got, err := svc.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	svc.DeleteSession(sess.ID)
	_, err = svc.GetSession(ctx, sess.ID)
	assert.Error(t, err)
}

func TestExpiredSessionRejected(t *testing.T) {
	svc := NewAuthService(newSeededStore(t), Latency{})
	ctx := context.Background()

	user, err := svc.Login(ctx, "customer@freshcart.com", "customerpassword")
	require.NoError(t, err)

	sess, err := svc.CreateSession(*user)
	require.NoError(t, err)
	sess.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = svc.GetSession(ctx, sess.ID)
	assert.Error(t, err)
}
