// Package basicauth implements HTTP Basic authentication against an
// in-memory user store, behind a pluggable Strategy so transports never
// touch the verification details.
//
// Strategy selection:
//   - A Strategy is the capability set {Authenticate, Verify}. Exactly one
//     concrete variant is constructed at process start (BasicStrategy today)
//     and shared read-only by every request; all mutable state lives in the
//     UserStore. New variants (bearer tokens, OAuth) implement the same
//     interface without touching callers.
//
// Credential tokens:
//   - Login produces an "Authorization: Basic <base64(email:password)>"
//     header value. The token is self-describing, not a session reference:
//     the guard re-decodes and re-verifies the full credential pair on every
//     request, so there is no server-side session table and nothing to
//     revoke.
//
// Request guard:
//   - middleware/basicware wires Strategy.Verify into a fiber middleware
//     that injects the authenticated User into the request context, or
//     short-circuits with a typed failure mapped to a transport status.
package basicauth
