// Package client talks to the LocAgri remote store.
//
// # Overview
//
//  1. Client is the contract the rest of the CLI depends on: record queries,
//     public URLs for stored objects, and session management (sign up,
//     sign in, sign out, current session, change notifications).
//  2. GRPCClient implements it over the locagri.v1.RemoteStore gRPC
//     service. An interceptor attaches the access token and refreshes it
//     once when the server answers "token expired". A failed refresh drops
//     the session and notifies subscribers.
//  3. InitDatabase opens the local SQLite file that keeps the refresh
//     token between runs and applies its embedded goose migrations.
//
// # Error Handling
//
// Remote failures come back as *StoreError carrying the server's message
// verbatim. They unwrap to sentinels (ErrUnavailable, common.ErrorUnauthorized,
// common.ErrorNotFound, ...) for errors.Is.
package client
