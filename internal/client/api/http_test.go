package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avidalm/authgate/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func quietLogger() logging.Logger {
	return logging.NewDefault(io.Discard, slog.LevelError)
}

// mintToken produces a realistic HS256 bearer token for fixtures.
func mintToken(t *testing.T, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"type": "access",
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, quietLogger())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.Username == "alice" && in.Password == "Passw0rd!" {
			writeJSON(w, http.StatusOK, map[string]string{
				"access_token":  "acc-1",
				"refresh_token": "ref-1",
				"token_type":    "bearer",
			})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
	})
	c := newTestClient(t, mux)

	t.Run("valid credentials return a token pair", func(t *testing.T) {
		pair, err := c.Login(context.Background(), "alice", "Passw0rd!")
		require.NoError(t, err)
		require.Equal(t, "acc-1", pair.AccessToken)
		require.Equal(t, "ref-1", pair.RefreshToken)
	})

	t.Run("bad credentials surface the server detail as AuthError", func(t *testing.T) {
		_, err := c.Login(context.Background(), "alice", "wrong")
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, "Incorrect username or password", authErr.Detail)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestLogin_NoDetailFallsBack(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "alice", "wrong")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "invalid credentials", authErr.Detail)
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.Email == "taken@example.org" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Email or username already registered"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"id": 7, "username": in.Username, "email": in.Email,
			"is_active": true, "created_at": time.Now().UTC(),
		})
	})
	c := newTestClient(t, mux)

	t.Run("success returns the created user", func(t *testing.T) {
		user, err := c.Register(context.Background(), "bob", "bob@example.org", "Passw0rd!")
		require.NoError(t, err)
		require.Equal(t, 7, user.ID)
		require.Equal(t, "bob", user.Username)
		require.True(t, user.IsActive)
	})

	t.Run("conflict surfaces as ValidationError with detail", func(t *testing.T) {
		_, err := c.Register(context.Background(), "bob", "taken@example.org", "Passw0rd!")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Email or username already registered", verr.Detail)
	})
}

func TestFetchCurrentUser(t *testing.T) {
	token := mintToken(t, "42")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid authentication credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 42, "username": "alice", "email": "alice@example.org",
			"is_active": true, "created_at": time.Now().UTC(),
		})
	})
	c := newTestClient(t, mux)

	t.Run("accepted token resolves the user", func(t *testing.T) {
		user, err := c.FetchCurrentUser(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, 42, user.ID)
	})

	t.Run("rejected token is an AuthError", func(t *testing.T) {
		_, err := c.FetchCurrentUser(context.Background(), "stale")
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, "Invalid authentication credentials", authErr.Detail)
	})
}

func TestUpdateProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /me", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.Username == "taken" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Username already registered"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 42, "username": in.Username, "email": in.Email,
			"is_active": true, "created_at": time.Now().UTC(), "updated_at": time.Now().UTC(),
		})
	})
	c := newTestClient(t, mux)

	t.Run("success returns the updated user", func(t *testing.T) {
		user, err := c.UpdateProfile(context.Background(), "tok", "alice2", "alice2@example.org")
		require.NoError(t, err)
		require.Equal(t, "alice2", user.Username)
		require.NotNil(t, user.UpdatedAt)
	})

	t.Run("conflict is a ValidationError", func(t *testing.T) {
		_, err := c.UpdateProfile(context.Background(), "tok", "taken", "x@example.org")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Username already registered", verr.Detail)
	})
}

func TestChangePassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /change-password", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.CurrentPassword != "Passw0rd!" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Current password is incorrect"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
	})
	c := newTestClient(t, mux)

	t.Run("success returns the server message", func(t *testing.T) {
		msg, err := c.ChangePassword(context.Background(), "tok", "Passw0rd!", "N3wPass!x")
		require.NoError(t, err)
		require.Equal(t, "Password updated successfully", msg)
	})

	t.Run("wrong current password is a ValidationError", func(t *testing.T) {
		_, err := c.ChangePassword(context.Background(), "tok", "nope", "N3wPass!x")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Current password is incorrect", verr.Detail)
	})
}

func TestForgotAndResetPassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /forgot-password", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Reset token sent", "token": "123456"})
	})
	mux.HandleFunc("POST /reset-password", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Token       string `json:"token"`
			NewPassword string `json:"new_password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.Token != "123456" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid or expired reset token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
	})
	c := newTestClient(t, mux)

	reset, err := c.ForgotPassword(context.Background(), "u@x.com")
	require.NoError(t, err)
	require.Equal(t, "Reset token sent", reset.Message)
	require.Equal(t, "123456", reset.Token)

	msg, err := c.ResetPassword(context.Background(), reset.Token, "N3wPass!x")
	require.NoError(t, err)
	require.Equal(t, "Password reset successfully", msg)

	_, err = c.ResetPassword(context.Background(), "000000", "N3wPass!x")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Invalid or expired reset token", verr.Detail)
}

func TestRefresh(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /refresh", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			RefreshToken string `json:"refresh_token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.RefreshToken != "ref-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid refresh token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "acc-2"})
	})
	c := newTestClient(t, mux)

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		pair, err := c.Refresh(context.Background(), "ref-1")
		require.NoError(t, err)
		require.Equal(t, "acc-2", pair.AccessToken)
		require.Empty(t, pair.RefreshToken)
	})

	t.Run("rejected refresh token is an AuthError", func(t *testing.T) {
		_, err := c.Refresh(context.Background(), "revoked")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestNetworkErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second, quietLogger())
	_, err := c.Login(context.Background(), "alice", "pw")

	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	require.ErrorIs(t, err, ErrUnavailable)
}
