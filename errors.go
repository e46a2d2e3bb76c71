package basicauth

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// ErrNoEmptyString is returned when hashing an empty password
var ErrNoEmptyString = errors.New("string must not be empty")

// ErrMismatchedHashAndPassword is the verification failure for a wrong password
var ErrMismatchedHashAndPassword = errors.New("hash is not the hash of the given password")

const (
	TextCodeUserExists         = "auth_user_exists"
	TextCodeIdentityNotFound   = "auth_identity_not_found"
	TextCodeInvalidCredentials = "auth_invalid_credentials"
	TextCodeUnauthenticated    = "auth_unauthenticated"
	TextCodeMissingHeader      = "auth_missing_header"
	TextCodeMalformedHeader    = "auth_malformed_header"
	TextCodeMissingStrategy    = "auth_missing_strategy"
	TextCodeStoreFailure       = "auth_store_failure"
)

// ErrUserAlreadyExists is returned on signup for an email already stored.
var ErrUserAlreadyExists = goerrors.New("user already exists", goerrors.CategoryConflict).
	WithTextCode(TextCodeUserExists).
	WithCode(goerrors.CodeConflict)

// ErrIdentityNotFound is returned on login for an unknown email.
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryNotFound).
	WithTextCode(TextCodeIdentityNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrInvalidCredentials is returned on login when the password does not match.
var ErrInvalidCredentials = goerrors.New("invalid password", goerrors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(goerrors.CodeUnauthorized)

// ErrUnauthenticated is returned when a presented credential pair does not
// verify against the store. Unlike login, verification never reveals whether
// the email exists.
var ErrUnauthenticated = goerrors.New("could not authenticate credentials", goerrors.CategoryAuth).
	WithTextCode(TextCodeUnauthenticated).
	WithCode(goerrors.CodeUnauthorized)

// ErrMissingAuthHeader is returned when no credential header is present.
var ErrMissingAuthHeader = goerrors.New("missing authorization header", goerrors.CategoryAuth).
	WithTextCode(TextCodeMissingHeader).
	WithCode(goerrors.CodeUnauthorized)

// ErrMalformedAuthHeader is returned when the credential header is present
// but cannot be decoded into a credential pair.
var ErrMalformedAuthHeader = goerrors.New("malformed authorization header", goerrors.CategoryAuth).
	WithTextCode(TextCodeMalformedHeader).
	WithCode(goerrors.CodeUnauthorized)

// ErrMissingStrategy signals a process misconfiguration: no authentication
// strategy was registered. Distinct from any credential failure.
var ErrMissingStrategy = goerrors.New("no authentication strategy configured", goerrors.CategoryInternal).
	WithTextCode(TextCodeMissingStrategy).
	WithCode(goerrors.CodeInternal)

// AsRichError normalizes any error into the closed taxonomy so the transport
// layer can map it to a status code deterministically. Unknown errors are
// treated as internal store failures and never reach the client verbatim.
func AsRichError(err error) *goerrors.Error {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return rich
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "unexpected store failure").
		WithTextCode(TextCodeStoreFailure).
		WithCode(goerrors.CodeInternal)
}
