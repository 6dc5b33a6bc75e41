package models

// TokenPair holds the opaque bearer credentials issued on login.
// The access token is short-lived, the refresh token longer-lived;
// the client learns that either has expired only from a failed request.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
}

// ResetRequest is the response of the forgot-password endpoint.
// Token is only populated by servers running with in-band reset
// delivery enabled (a development convenience, not normal operation).
type ResetRequest struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
