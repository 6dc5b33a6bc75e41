package api

import (
	"context"

	"github.com/avidalm/authgate/internal/client/models"
)

// Client is the API contract against the remote account service. Each
// operation is a single request/response exchange; none of them retries
// on its own. Recovering from an expired access token is the Gateway's
// job, not the client's.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	FetchCurrentUser(ctx context.Context, accessToken string) (*models.User, error)
	UpdateProfile(ctx context.Context, accessToken, username, email string) (*models.User, error)
	ChangePassword(ctx context.Context, accessToken, currentPassword, newPassword string) (string, error)
	ForgotPassword(ctx context.Context, email string) (*models.ResetRequest, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) (string, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// Doer issues a single raw exchange against an arbitrary endpoint with
// an optional bearer token. It is the seam the Gateway builds on.
type Doer interface {
	Do(ctx context.Context, method, endpoint, bearer string, in any) (status int, body []byte, err error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}
