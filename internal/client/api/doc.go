// Package api is the typed client of the marketplace REST API.
//
// # Overview
//
// A Client owns a base URL, a bearer token backed by a tokenstore.Store and a
// single request pipeline (Client.Do). Typed operations (Authenticate,
// Register, ListPostings, CreatePosting, ApplyToShift, ListOwnApplications,
// AcceptApplication) validate their payloads locally, then funnel through Do.
//
// # Error Handling
//
// Every failure is an *Error carrying a message, an HTTP-shaped status and
// optional details:
//
//   - 400 with Field set: the payload failed local validation, nothing was sent.
//   - 401 with no request sent: the operation needs a token and none is held.
//   - any status from the server: the message is taken from the error body.
//   - 500 synthesized locally: a 2xx response was not what the operation expects.
//   - 0: the request never produced an HTTP response (network, cancellation).
//
// Use errors.Is with ErrUnauthorized / ErrUnavailable, or StatusCode / FieldOf.
// A 401 from the server on an operation that requires a token clears the
// stored token, so later calls fail locally instead of repeating the round trip.
//
// # Concurrency
//
// A Client is safe for concurrent use. Independent calls are not ordered
// relative to each other. Cancelling a call's context aborts only that call.
// The client sets no timeout and never retries.
package api
