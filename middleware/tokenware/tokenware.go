// Package tokenware gates fiber routes on a bearer token carried in the
// Authorization header. It mirrors the claim and validator interfaces of
// the root package to avoid import cycles.
package tokenware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrTokenMissing is returned when the Authorization header is absent
// or does not carry the expected auth scheme.
var ErrTokenMissing = errors.New("missing bearer token")

// AuthClaims is the decoded identity produced by a TokenValidator.
// This mirrors the AuthClaims interface from the root package.
type AuthClaims interface {
	Subject() string
	UserID() int64
}

// TokenValidator validates raw token strings without tying the
// middleware to a specific signing implementation.
type TokenValidator interface {
	Validate(tokenString string) (AuthClaims, error)
}

// TokenValidatorFunc adapts a function into a TokenValidator.
type TokenValidatorFunc func(tokenString string) (AuthClaims, error)

// Validate satisfies the TokenValidator interface.
func (f TokenValidatorFunc) Validate(tokenString string) (AuthClaims, error) {
	if f == nil {
		return nil, ErrTokenMissing
	}
	return f(tokenString)
}

type Config struct {
	// Filter skips the middleware when it returns true.
	Filter func(*fiber.Ctx) bool
	// SuccessHandler runs after the claims are attached. Defaults to
	// ctx.Next().
	SuccessHandler fiber.Handler
	// ErrorHandler maps extraction and validation failures to a
	// response. The default answers 401 for a missing token and 403
	// for anything else.
	ErrorHandler fiber.ErrorHandler
	// Validator is required.
	Validator TokenValidator
	// ContextKey is the fiber locals key the claims are stored under.
	ContextKey string
	// AuthScheme is the expected Authorization scheme prefix.
	AuthScheme string
	// ContextEnricher propagates claims to the standard Go context so
	// handlers below fiber can recover them.
	ContextEnricher func(ctx context.Context, claims AuthClaims) context.Context
}

// New returns a fiber handler enforcing the bearer-token gate. The gate
// is pure: it attaches claims to the request context and nothing else.
func New(config ...Config) fiber.Handler {
	cfg := GetDefaultConfig(config...)

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw, err := TokenFromHeader(c.Get(fiber.HeaderAuthorization), cfg.AuthScheme)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		claims, err := cfg.Validator.Validate(raw)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, claims)

		if cfg.ContextEnricher != nil {
			c.SetUserContext(cfg.ContextEnricher(c.UserContext(), claims))
		}

		return cfg.SuccessHandler(c)
	}
}

func GetDefaultConfig(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Validator == nil {
		panic("TOKENWARE: middleware configuration: Validator is required.")
	}

	if cfg.SuccessHandler == nil {
		cfg.SuccessHandler = func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
			if errors.Is(err, ErrTokenMissing) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"mensaje": "Token requerido"})
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"mensaje": "Token inválido"})
		}
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	return cfg
}

// TokenFromHeader extracts the raw token from an Authorization header
// value, expecting the "<scheme> <token>" shape.
func TokenFromHeader(header, authScheme string) (string, error) {
	l := len(authScheme)
	if l == 0 || len(header) <= l+1 {
		return "", ErrTokenMissing
	}
	if !strings.EqualFold(header[:l], authScheme) {
		return "", ErrTokenMissing
	}

	token := strings.TrimSpace(header[l:])
	if token == "" {
		return "", ErrTokenMissing
	}

	return token, nil
}
