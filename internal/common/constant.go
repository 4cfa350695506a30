// Package common contains shared constants and helpers used across imagefeed
// client components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound identity-gateway requests.
const AccessTokenHeaderName = "access_token"

// CredentialName is the key under which the active access credential is
// persisted locally.
const CredentialName = "oauth_access_token"
