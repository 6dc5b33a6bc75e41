package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avidalm/authgate/internal/client/models"
	"github.com/avidalm/authgate/internal/logging"
)

// HTTPClient is the concrete Client over HTTP+JSON.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// Do issues a single exchange and returns the raw status and body.
// Transport failures come back as *NetworkError. HTTP error statuses do
// not; classifying them is up to the caller.
func (c *HTTPClient) Do(ctx context.Context, method, endpoint, bearer string, in any) (int, []byte, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}

	c.log.Debug(ctx, "api exchange", "method", method, "endpoint", endpoint, "status", resp.StatusCode)
	return resp.StatusCode, body, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	status, body, err := c.Do(ctx, http.MethodPost, "/login", "", loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &AuthError{Detail: errorDetail(body, "invalid credentials")}
	}

	var pair models.TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	return &pair, nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	status, body, err := c.Do(ctx, http.MethodPost, "/register", "", registerRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &ValidationError{Detail: errorDetail(body, "registration rejected")}
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &user, nil
}

func (c *HTTPClient) FetchCurrentUser(ctx context.Context, accessToken string) (*models.User, error) {
	status, body, err := c.Do(ctx, http.MethodGet, "/me", accessToken, nil)
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, responseError(status, body)
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &user, nil
}

type profileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, accessToken, username, email string) (*models.User, error) {
	status, body, err := c.Do(ctx, http.MethodPut, "/me", accessToken, profileRequest{Username: username, Email: email})
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, responseError(status, body)
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &user, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (c *HTTPClient) ChangePassword(ctx context.Context, accessToken, currentPassword, newPassword string) (string, error) {
	in := changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	status, body, err := c.Do(ctx, http.MethodPost, "/change-password", accessToken, in)
	if err != nil {
		return "", err
	}
	if status/100 != 2 {
		return "", responseError(status, body)
	}
	return messageOf(body)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (*models.ResetRequest, error) {
	status, body, err := c.Do(ctx, http.MethodPost, "/forgot-password", "", forgotPasswordRequest{Email: email})
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &ValidationError{Detail: errorDetail(body, "password reset request rejected")}
	}

	var reset models.ResetRequest
	if err := json.Unmarshal(body, &reset); err != nil {
		return nil, fmt.Errorf("decoding reset response: %w", err)
	}
	return &reset, nil
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (c *HTTPClient) ResetPassword(ctx context.Context, resetToken, newPassword string) (string, error) {
	in := resetPasswordRequest{Token: resetToken, NewPassword: newPassword}
	status, body, err := c.Do(ctx, http.MethodPost, "/reset-password", "", in)
	if err != nil {
		return "", err
	}
	if status/100 != 2 {
		return "", &ValidationError{Detail: errorDetail(body, "password reset rejected")}
	}
	return messageOf(body)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	status, body, err := c.Do(ctx, http.MethodPost, "/refresh", "", refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &AuthError{Detail: errorDetail(body, "refresh token rejected")}
	}

	var pair models.TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	return &pair, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

func messageOf(body []byte) (string, error) {
	var m messageResponse
	if err := json.Unmarshal(body, &m); err != nil {
		return "", fmt.Errorf("decoding message: %w", err)
	}
	return m.Message, nil
}
