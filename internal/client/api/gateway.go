package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avidalm/authgate/internal/client/tokenstore"
	"github.com/avidalm/authgate/internal/logging"
	"github.com/google/uuid"
)

// Gateway issues authenticated requests on behalf of the rest of the
// client. It attaches the persisted access token as a bearer header and
// masks exactly one class of transient failure: a 401 caused by an
// expired access token, recovered by refreshing and re-issuing the
// request once.
//
// The policy is strictly at-most-one-retry. A request runs at most
// twice, and the refresh exchange itself is never retried, so an
// invalid refresh token cannot cause a loop. Concurrent callers that
// race after expiry may each trigger their own refresh; the server
// treats refresh idempotently and the last token write wins.
type Gateway struct {
	doer  Doer
	store tokenstore.Store
	log   logging.Logger
}

func NewGateway(doer Doer, store tokenstore.Store, log logging.Logger) *Gateway {
	return &Gateway{doer: doer, store: store, log: log.With("component", "gateway")}
}

func (g *Gateway) Get(ctx context.Context, endpoint string, out any) error {
	return g.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (g *Gateway) Post(ctx context.Context, endpoint string, in, out any) error {
	return g.do(ctx, http.MethodPost, endpoint, in, out)
}

func (g *Gateway) Put(ctx context.Context, endpoint string, in, out any) error {
	return g.do(ctx, http.MethodPut, endpoint, in, out)
}

func (g *Gateway) do(ctx context.Context, method, endpoint string, in, out any) error {
	log := g.log.With("request_id", uuid.NewString(), "method", method, "endpoint", endpoint)

	access, err := g.store.Get(ctx, tokenstore.KeyAccessToken)
	if err != nil {
		return err
	}

	status, body, err := g.doer.Do(ctx, method, endpoint, access, in)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		log.Info(ctx, "access token rejected, refreshing")

		access, err = g.refresh(ctx)
		if err != nil {
			log.Warn(ctx, "token refresh failed", "error", err)
			// The original 401 stands; the caller sees an auth failure,
			// not a second attempt.
			return &AuthError{Detail: errorDetail(body, "invalid authentication credentials")}
		}

		status, body, err = g.doer.Do(ctx, method, endpoint, access, in)
		if err != nil {
			return err
		}
		log.Info(ctx, "request retried with refreshed token", "status", status)
	}

	if status/100 != 2 {
		return responseError(status, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// refresh exchanges the persisted refresh token for a fresh access
// token and persists the result. The new refresh token is only stored
// when the server rotated it.
func (g *Gateway) refresh(ctx context.Context) (string, error) {
	refresh, err := g.store.Get(ctx, tokenstore.KeyRefreshToken)
	if err != nil {
		return "", err
	}
	if refresh == "" {
		return "", &AuthError{Detail: "no refresh token"}
	}

	pair, err := g.doer.Refresh(ctx, refresh)
	if err != nil {
		return "", err
	}

	if err := g.store.Set(ctx, tokenstore.KeyAccessToken, pair.AccessToken); err != nil {
		return "", err
	}
	if pair.RefreshToken != "" {
		if err := g.store.Set(ctx, tokenstore.KeyRefreshToken, pair.RefreshToken); err != nil {
			return "", err
		}
	}
	return pair.AccessToken, nil
}
