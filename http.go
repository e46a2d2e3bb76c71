package basicauth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
)

// AuthControllerRoutes holds the route paths the controller registers
type AuthControllerRoutes struct {
	Signup        string
	Login         string
	Authenticated string
}

// AuthController exposes the signup and login endpoints plus the protected
// handler. The guard middleware is injected at registration time so the
// controller stays transport mapping only.
type AuthController struct {
	Logger       Logger
	Store        UserStore
	Strategy     Strategy
	Hasher       PasswordHasher
	Routes       *AuthControllerRoutes
	ErrorHandler func(c *fiber.Ctx, err error) error
}

type AuthControllerOption func(*AuthController) *AuthController

// WithStore sets the UserStore
func WithStore(store UserStore) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Store = store
		return c
	}
}

// WithStrategy sets the active authentication strategy
func WithStrategy(strategy Strategy) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Strategy = strategy
		return c
	}
}

// WithHasher sets the PasswordHasher used at signup
func WithHasher(hasher PasswordHasher) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Hasher = hasher
		return c
	}
}

// WithLogger sets the controller logger
func WithLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Hasher: NewHasher(),
		Routes: &AuthControllerRoutes{
			Signup:        "/signup",
			Login:         "/login",
			Authenticated: "/authenticated",
		},
	}

	c.ErrorHandler = c.defaultErrorHandler

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Store == nil {
		panic("Missing UserStore in auth controller...")
	}

	return c
}

// RegisterAuthRoutes mounts the controller on the app. The guard runs before
// the protected handler and injects the authenticated identity.
func RegisterAuthRoutes(app *fiber.App, controller *AuthController, guard fiber.Handler) {
	app.Post(controller.Routes.Signup, controller.SignupPost)
	app.Post(controller.Routes.Login, controller.LoginPost)
	app.Get(controller.Routes.Authenticated, guard, controller.AuthenticatedShow)
}

// SignupPost registers a new account with a hashed password
func (a *AuthController) SignupPost(c *fiber.Ctx) error {
	payload := new(User)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("signup parse payload: %s", err)
		return a.ErrorHandler(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Info("signup validate payload: %s", err)
		return a.ErrorHandler(c, goerrors.Wrap(err, goerrors.CategoryValidation, "Invalid signup payload: "+err.Error()).
			WithCode(goerrors.CodeBadRequest))
	}

	hash, err := a.Hasher.HashPassword(payload.Password)
	if err != nil {
		a.Logger.Error("signup hash password: %s", err)
		return a.ErrorHandler(c, goerrors.Wrap(err, goerrors.CategoryInternal, "Error creating user").
			WithCode(goerrors.CodeInternal))
	}

	user := User{Email: payload.Email, Password: hash}

	if err := a.Store.Add(c.UserContext(), user); err != nil {
		a.Logger.Info("signup add user: %s", err)
		return a.ErrorHandler(c, err)
	}

	return c.SendString(fmt.Sprintf("Signed up user: %s", user.Email))
}

// LoginPost exchanges a credential pair for an Authorization header
func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	if a.Strategy == nil {
		return a.ErrorHandler(c, ErrMissingStrategy)
	}

	payload := new(User)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload: %s", err)
		return a.ErrorHandler(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	res, err := a.Strategy.Authenticate(c.UserContext(), *payload)
	if err != nil {
		return a.ErrorHandler(c, err)
	}

	c.Set(fiber.HeaderAuthorization, res.AuthHeader)
	return c.Status(res.Status).SendString(res.Message)
}

// AuthenticatedShow is the protected demo handler; the guard has already
// verified the credential pair by the time it runs.
func (a *AuthController) AuthenticatedShow(c *fiber.Ctx) error {
	return c.SendString("You are authenticated!")
}

// defaultErrorHandler maps the closed error taxonomy to a status code and a
// plain text message. Internal failures are logged and never leak details.
func (a *AuthController) defaultErrorHandler(c *fiber.Ctx, err error) error {
	rich := AsRichError(err)

	if rich.Code >= fiber.StatusInternalServerError {
		a.Logger.Error("auth request failed: %s", rich.Message)
		return c.Status(rich.Code).SendString("An unexpected error occurred")
	}

	return c.Status(rich.Code).SendString(rich.Message)
}
