// Package common contains shared constants and sentinel errors used across
// geoseek components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// store access token on outbound requests.
const AccessTokenHeaderName = "access_token"
