package basicauth_test

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	basicauth "github.com/goliatone/go-basicauth"
	"github.com/goliatone/go-basicauth/middleware/basicware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	hasher := basicauth.Hasher{Cost: bcrypt.MinCost}
	store := basicauth.NewMemoryUserStore()
	strategy := basicauth.NewBasicStrategy(store).WithHasher(hasher)

	controller := basicauth.NewAuthController(
		basicauth.WithStore(store),
		basicauth.WithStrategy(strategy),
		basicauth.WithHasher(hasher),
	)

	app := fiber.New()
	guard := basicware.New(basicware.Config{Strategy: strategy})
	basicauth.RegisterAuthRoutes(app, controller, guard)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func getAuthenticated(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/authenticated", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	return string(body)
}

func TestSignup(t *testing.T) {
	app := newTestApp(t)

	res := postJSON(t, app, "/signup", `{"email":"a@x.com","password":"pw1"}`)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "Signed up user: a@x.com", readBody(t, res))

	// second signup for the same email conflicts
	res = postJSON(t, app, "/signup", `{"email":"a@x.com","password":"pw1"}`)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
}

func TestSignupRejectsInvalidPayloads(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "Not JSON",
			body: "email=a@x.com",
		},
		{
			name: "Missing password",
			body: `{"email":"a@x.com"}`,
		},
		{
			name: "Not an email",
			body: `{"email":"nope","password":"pw1"}`,
		},
		{
			name: "Email contains separator",
			body: `{"email":"a:b@x.com","password":"pw1"}`,
		},
		{
			name: "Password contains separator",
			body: `{"email":"a@x.com","password":"pw:1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := postJSON(t, app, "/signup", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	res := postJSON(t, app, "/signup", `{"email":"a@x.com","password":"pw1"}`)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	t.Run("Wrong password", func(t *testing.T) {
		res := postJSON(t, app, "/login", `{"email":"a@x.com","password":"wrong"}`)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("Unknown email", func(t *testing.T) {
		res := postJSON(t, app, "/login", `{"email":"nobody@x.com","password":"pw1"}`)
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	})

	t.Run("Valid credentials", func(t *testing.T) {
		res := postJSON(t, app, "/login", `{"email":"a@x.com","password":"pw1"}`)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
		assert.Equal(t, "Welcome back, a@x.com!", readBody(t, res))

		wantToken := base64.StdEncoding.EncodeToString([]byte("a@x.com:pw1"))
		assert.Equal(t, "Basic "+wantToken, res.Header.Get(fiber.HeaderAuthorization))
	})
}

func TestAuthenticatedRoute(t *testing.T) {
	app := newTestApp(t)

	res := postJSON(t, app, "/signup", `{"email":"a@x.com","password":"pw1"}`)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	res = postJSON(t, app, "/login", `{"email":"a@x.com","password":"pw1"}`)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	header := res.Header.Get(fiber.HeaderAuthorization)
	require.NotEmpty(t, header)

	t.Run("With login header", func(t *testing.T) {
		res := getAuthenticated(t, app, header)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
		assert.Equal(t, "You are authenticated!", readBody(t, res))
	})

	t.Run("No header", func(t *testing.T) {
		res := getAuthenticated(t, app, "")
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "missing authorization header", readBody(t, res))
	})

	t.Run("Token without separator", func(t *testing.T) {
		res := getAuthenticated(t, app, "Basic bm90YmFzZTY0")
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "malformed authorization header", readBody(t, res))
	})

	t.Run("Valid token for an email never signed up", func(t *testing.T) {
		token := base64.StdEncoding.EncodeToString([]byte("ghost@x.com:pw1"))
		res := getAuthenticated(t, app, "Basic "+token)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "could not authenticate credentials", readBody(t, res))
	})
}

func TestLoginWithoutStrategyIsServerError(t *testing.T) {
	store := basicauth.NewMemoryUserStore()
	controller := basicauth.NewAuthController(basicauth.WithStore(store))

	app := fiber.New()
	app.Post("/login", controller.LoginPost)

	res := postJSON(t, app, "/login", `{"email":"a@x.com","password":"pw1"}`)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "An unexpected error occurred", readBody(t, res))
}

func TestNewAuthControllerRequiresStore(t *testing.T) {
	assert.Panics(t, func() {
		basicauth.NewAuthController()
	})
}

func TestLoginMapsStoreFailuresTo500(t *testing.T) {
	strategy := new(MockStrategy)
	strategy.On("Authenticate", mock.Anything, mock.Anything).
		Return(nil, errors.New("lock poisoned"))

	controller := basicauth.NewAuthController(
		basicauth.WithStore(basicauth.NewMemoryUserStore()),
		basicauth.WithStrategy(strategy),
	)

	app := fiber.New()
	app.Post("/login", controller.LoginPost)

	res := postJSON(t, app, "/login", `{"email":"a@x.com","password":"pw1"}`)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "An unexpected error occurred", readBody(t, res))

	strategy.AssertExpectations(t)
}
