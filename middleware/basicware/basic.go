// Package basicware is the request guard for Basic credentials: it extracts
// the Authorization header, delegates to the configured strategy, and either
// injects the authenticated identity into the request context or
// short-circuits with the mapped transport status.
package basicware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	basicauth "github.com/goliatone/go-basicauth"
)

// ErrNoIdentity is returned when no authenticated identity is in the context
var ErrNoIdentity = errors.New("no authenticated identity in context")

const defaultContextKey = "user"

type Config struct {
	// Filter defines a function to skip the middleware
	Filter func(*fiber.Ctx) bool
	// SuccessHandler runs after the identity has been injected
	SuccessHandler fiber.Handler
	// ErrorHandler converts a verification failure into a response
	ErrorHandler fiber.ErrorHandler
	// Strategy is the process wide authentication strategy. Leaving it unset
	// is a configuration error surfaced as a 500 at request time, distinct
	// from any credential failure.
	Strategy basicauth.Strategy
	// ContextKey is the Locals key the identity is stored under
	ContextKey string
	// HeaderKey is the request header carrying the credential token
	HeaderKey string
}

func New(config ...Config) fiber.Handler {
	cfg := GetDefaultConfig(config...)
	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		if cfg.Strategy == nil {
			return cfg.ErrorHandler(c, basicauth.ErrMissingStrategy)
		}

		user, err := cfg.Strategy.Verify(c.UserContext(), c.Get(cfg.HeaderKey))
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, user)

		return cfg.SuccessHandler(c)
	}
}

func GetDefaultConfig(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.SuccessHandler == nil {
		cfg.SuccessHandler = func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultErrorHandler
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = defaultContextKey
	}

	if cfg.HeaderKey == "" {
		cfg.HeaderKey = fiber.HeaderAuthorization
	}

	return cfg
}

func defaultErrorHandler(c *fiber.Ctx, err error) error {
	rich := basicauth.AsRichError(err)

	if rich.Code >= fiber.StatusInternalServerError {
		return c.Status(rich.Code).SendString("An unexpected error occurred")
	}

	return c.Status(rich.Code).SendString(rich.Message)
}

// UserFromContext returns the identity the guard injected for this request
func UserFromContext(c *fiber.Ctx, key ...string) (*basicauth.User, error) {
	k := defaultContextKey
	if len(key) > 0 {
		k = key[0]
	}

	user, ok := c.Locals(k).(*basicauth.User)
	if !ok || user == nil {
		return nil, ErrNoIdentity
	}

	return user, nil
}
