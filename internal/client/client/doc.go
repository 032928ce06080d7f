// Package client is the Médico client's connection to the clinic backend.
//
// # Overview
//
//  1. Session holds the bearer token and the identity it belongs to. It is
//     either fully populated or empty, and is shared by everything that
//     talks to the backend.
//  2. HTTPClient is the authorized REST transport. It attaches the session
//     token to every request and applies one response contract to every
//     call (see interpret): 200 decodes, 401 clears the session and
//     returns ErrSessionExpired, 403 returns ErrAccessDenied, anything else
//     returns a *StatusError carrying status and body.
//  3. SubmitEncounter uploads an encounter as multipart/form-data together
//     with its images and always closes every file it opened.
//  4. InitDatabase opens the local SQLite journal and applies the embedded
//     goose migrations.
//
// # Error Handling
//
// Failures are reported with sentinel errors matched by errors.Is
// (ErrUnavailable, ErrInvalidCredentials, ErrSessionExpired, ...) or with
// *StatusError via errors.As. KindOf folds any of them into a coarse Kind
// for presentation.
//
// # Concurrency & Contexts
//
// Session is safe for concurrent use; a 401 clear is visible to every
// later call. All network operations take a context.Context and no call
// is retried automatically.
package client
