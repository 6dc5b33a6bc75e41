// Package api talks to the remote account service over HTTP+JSON.
//
// # Overview
//
// The package provides:
//  1. An API contract (see the Client interface) for the account
//     endpoints: login, register, current user, profile update,
//     password change/forgot/reset, and token refresh.
//  2. A concrete HTTP implementation (see HTTPClient) that issues one
//     request per operation and normalizes every server error body to
//     the {detail} contract before it leaves this layer.
//  3. A Gateway that wraps arbitrary authenticated calls with a bearer
//     header and a one-shot refresh-and-retry on 401.
//
// # Error Handling
//
// Failures surface as *AuthError, *ValidationError or *NetworkError.
// AuthError and NetworkError also match the ErrUnauthorized and
// ErrUnavailable sentinels via errors.Is. The server's detail message
// is always propagated unchanged when present.
package api
