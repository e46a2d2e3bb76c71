package basicauth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Strategy holds the capability set every authentication variant implements.
// Authenticate exchanges a plaintext credential pair for an AuthResponse at
// login; Verify checks the raw Authorization header on subsequent requests.
type Strategy interface {
	Authenticate(ctx context.Context, candidate User) (*AuthResponse, error)
	Verify(ctx context.Context, authorization string) (*User, error)
}

// UserStore ensures we have a concurrency safe registry of identities
type UserStore interface {
	Add(ctx context.Context, user User) error
	Get(ctx context.Context, email string) (User, error)
	Exists(ctx context.Context, email string) bool
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

// AuthResponse is the outcome of a successful login. AuthHeader carries the
// credential token out of band, distinct from the body message.
type AuthResponse struct {
	Status     int
	Message    string
	AuthHeader string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
