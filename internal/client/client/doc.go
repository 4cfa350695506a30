// Package client talks to the photo service's identity provider.
//
// # Overview
//
//  1. Client is the transport-agnostic contract: exchange an authorization
//     code for an access token, read the current profile, look up a user's
//     avatar URL.
//  2. HTTPClient implements it against the public REST API. The code
//     exchange and bearer authentication go through golang.org/x/oauth2.
//  3. GRPCClient implements it against the in-house identity gateway. Payloads
//     are google.protobuf.Struct messages, so no generated stubs are needed.
//  4. InitDatabase / RunMigrations open the local SQLite database and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Transport failures are mapped onto sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrBadResponse.
//
// All operations accept a context.Context and honor its cancellation.
package client
