package server

import (
	"net/http"
	"testing"

	"flatterer/internal/cache"
	"flatterer/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	_, app := newTestServer(t)

	tests := []struct {
		name           string
		payload        map[string]any
		expectedStatus int
	}{
		{
			name: "Valid registration",
			payload: map[string]any{
				"name": "Alice", "username": "alice",
				"password": "password123", "confirm_pass": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Password mismatch",
			payload: map[string]any{
				"name": "Bob", "username": "bob",
				"password": "password123", "confirm_pass": "different",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing username",
			payload: map[string]any{
				"name": "Carol", "password": "password123", "confirm_pass": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate username",
			payload: map[string]any{
				"name": "Alice Again", "username": "alice",
				"password": "password123", "confirm_pass": "password123",
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonReq(t, http.MethodPost, "/register", tt.payload), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestRegisterUniqueUsername(t *testing.T) {
	srv, app := newTestServer(t)

	registerUser(t, app, "alice", false)
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/register", map[string]any{
		"name": "Other Alice", "username": "alice",
		"password": "x1234567", "confirm_pass": "x1234567",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, srv.db.Model(&models.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterHashesPassword(t *testing.T) {
	srv, app := newTestServer(t)
	registerUser(t, app, "alice", false)

	var user models.User
	require.NoError(t, srv.db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "TestPass123!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("TestPass123!")))
}

func TestLogin(t *testing.T) {
	_, app := newTestServer(t)
	registerUser(t, app, "alice", false)

	t.Run("Success", func(t *testing.T) {
		var body struct {
			Token string `json:"token"`
		}
		resp := doJSON(t, app, jsonReq(t, http.MethodPost, "/login", map[string]string{
			"username": "alice", "password": "TestPass123!",
		}), &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, body.Token)

		// The token authenticates follow-up requests.
		resp, err := app.Test(jsonReq(t, http.MethodGet, "/list_complimentees", nil, body.Token), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Wrong password", func(t *testing.T) {
		resp, err := app.Test(jsonReq(t, http.MethodPost, "/login", map[string]string{
			"username": "alice", "password": "wrong",
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown user", func(t *testing.T) {
		resp, err := app.Test(jsonReq(t, http.MethodPost, "/login", map[string]string{
			"username": "nobody", "password": "whatever",
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	_, app := newTestServer(t)
	alice := registerUser(t, app, "alice", false)

	// Authenticated before logout.
	resp, err := app.Test(jsonReq(t, http.MethodGet, "/list_complimentees", nil, alice.Token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonReq(t, http.MethodPost, "/logout", nil, alice.Token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The revoked token now resolves to the guest.
	resp, err = app.Test(jsonReq(t, http.MethodGet, "/list_complimentees", nil, alice.Token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuestLogoutIsNoOp(t *testing.T) {
	_, app := newTestServer(t)
	resp, err := app.Test(jsonReq(t, http.MethodPost, "/logout", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
