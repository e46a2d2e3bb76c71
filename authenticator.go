package basicauth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// BasicScheme is the Authorization scheme BasicStrategy produces and accepts.
const BasicScheme = "Basic"

// BasicStrategy implements Strategy with the HTTP Basic scheme. It is
// stateless; every request re-verifies the full credential pair against the
// store, so there is no session state to manage or revoke.
type BasicStrategy struct {
	store  UserStore
	hasher PasswordHasher
	logger Logger
}

// NewBasicStrategy returns a BasicStrategy backed by the given store
func NewBasicStrategy(store UserStore) *BasicStrategy {
	return &BasicStrategy{
		store:  store,
		hasher: NewHasher(),
		logger: defLogger{},
	}
}

func (s *BasicStrategy) WithLogger(logger Logger) *BasicStrategy {
	s.logger = logger
	return s
}

// WithHasher sets a custom PasswordHasher, mostly for tests that need a
// cheaper cost factor.
func (s *BasicStrategy) WithHasher(hasher PasswordHasher) *BasicStrategy {
	s.hasher = hasher
	return s
}

// Authenticate looks up the candidate email, verifies the password against
// the stored hash, and on success returns the welcome message plus the
// Authorization header value for subsequent requests.
func (s *BasicStrategy) Authenticate(ctx context.Context, candidate User) (*AuthResponse, error) {
	stored, err := s.store.Get(ctx, candidate.Email)
	if err != nil {
		if goerrors.IsNotFound(err) {
			s.logger.Info("login attempt for unknown email: %s", candidate.Email)
			return nil, ErrIdentityNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during login")
	}

	if err := s.hasher.ComparePasswordAndHash(candidate.Password, stored.Password); err != nil {
		s.logger.Info("login password mismatch for: %s", candidate.Email)
		return nil, ErrInvalidCredentials
	}

	token := EncodeCredentials(candidate.Email, candidate.Password)

	return &AuthResponse{
		Status:     http.StatusOK,
		Message:    fmt.Sprintf("Welcome back, %s!", candidate.Email),
		AuthHeader: BasicScheme + " " + token,
	}, nil
}

// Verify checks a raw Authorization header value and returns the decoded
// identity when the credential pair verifies against the store. The returned
// plaintext password is for downstream convenience only and is never
// re-persisted.
func (s *BasicStrategy) Verify(ctx context.Context, authorization string) (*User, error) {
	if strings.TrimSpace(authorization) == "" {
		s.logger.Debug("no authorization header found")
		return nil, ErrMissingAuthHeader
	}

	parts := strings.Fields(authorization)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BasicScheme) {
		s.logger.Debug("authorization header is not in the correct format")
		return nil, ErrMalformedAuthHeader
	}

	email, password, err := DecodeCredentials(parts[1])
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Get(ctx, email)
	if err != nil {
		if goerrors.IsNotFound(err) {
			s.logger.Debug("could not find user in store: %s", email)
			return nil, ErrUnauthenticated
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := s.hasher.ComparePasswordAndHash(password, stored.Password); err != nil {
		s.logger.Debug("password does not match for: %s", email)
		return nil, ErrUnauthenticated
	}

	return &User{Email: email, Password: password}, nil
}

var _ Strategy = (*BasicStrategy)(nil)
