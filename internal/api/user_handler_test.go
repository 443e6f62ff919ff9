package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.register(t, "admin")

	rec, body := env.do(t, http.MethodPost, "/api/users/", token, map[string]any{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "a-long-enough-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)

	var created domain.User
	require.NoError(t, json.Unmarshal(body["data"], &created))
	assert.Equal(t, "bob", created.Username)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotContains(t, string(body["data"]), "hashed")

	stored, ok := env.userRepo.Entities[created.ID]
	require.True(t, ok)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.Empty(t, stored.Password)
}

func TestUserGetAndDeleteEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.register(t, "admin")

	rec, body := env.do(t, http.MethodGet, "/api/users/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []domain.User
	require.NoError(t, json.Unmarshal(body["data"], &all))
	require.Len(t, all, 1)
	adminID := all[0].ID

	rec, body = env.do(t, http.MethodGet, "/api/users/"+adminID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.User
	require.NoError(t, json.Unmarshal(body["data"], &got))
	assert.Equal(t, "admin", got.Username)

	rec, _ = env.do(t, http.MethodDelete, "/api/users/"+adminID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = env.do(t, http.MethodGet, "/api/users/"+adminID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `"User not found"`, string(body["error"]))
}

func TestUserUpdateEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.register(t, "admin")

	var adminID uuid.UUID
	for id := range env.userRepo.Entities {
		adminID = id
	}

	env.userRepo.UpdateFn = func(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
		user := env.userRepo.Entities[id]
		updated := *user
		if patch.FullName != nil {
			updated.FullName = *patch.FullName
		}
		return &updated, nil
	}

	rec, body := env.do(t, http.MethodPatch, "/api/users/", token, map[string]any{
		"id":        adminID.String(),
		"full_name": "Administrator",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	var updated domain.User
	require.NoError(t, json.Unmarshal(body["data"], &updated))
	assert.Equal(t, "Administrator", updated.FullName)
}
