package tokenware_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-tasks/middleware/tokenware"
)

type stubClaims struct {
	subject string
	userID  int64
}

func (c stubClaims) Subject() string { return c.subject }
func (c stubClaims) UserID() int64   { return c.userID }

func acceptToken(expected string) tokenware.TokenValidator {
	return tokenware.TokenValidatorFunc(func(raw string) (tokenware.AuthClaims, error) {
		if raw != expected {
			return nil, assert.AnError
		}
		return stubClaims{subject: "7", userID: 7}, nil
	})
}

func newGatedApp(cfg tokenware.Config) *fiber.App {
	app := fiber.New()
	app.Use(tokenware.New(cfg))
	app.Get("/protected", func(c *fiber.Ctx) error {
		claims, _ := c.Locals("user").(tokenware.AuthClaims)
		if claims == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"sub": claims.Subject()})
	})
	return app
}

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"Valid bearer header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"Lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"Missing header", "", "", true},
		{"Wrong scheme", "Basic dXNlcjpwYXNz", "", true},
		{"Scheme only", "Bearer", "", true},
		{"Scheme with empty token", "Bearer   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokenware.TokenFromHeader(tt.header, "Bearer")
			if tt.wantErr {
				assert.ErrorIs(t, err, tokenware.ErrTokenMissing)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestNewPanicsWithoutValidator(t *testing.T) {
	assert.Panics(t, func() {
		tokenware.New(tokenware.Config{})
	})
}

func TestMiddlewareResponses(t *testing.T) {
	app := newGatedApp(tokenware.Config{
		Validator: acceptToken("good-token"),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Missing header",
			header:     "",
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   "Token requerido",
		},
		{
			name:       "Wrong scheme",
			header:     "Basic abc",
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   "Token requerido",
		},
		{
			name:       "Rejected token",
			header:     "Bearer bad-token",
			wantStatus: fiber.StatusForbidden,
			wantBody:   "Token inválido",
		},
		{
			name:       "Accepted token",
			header:     "Bearer good-token",
			wantStatus: fiber.StatusOK,
			wantBody:   `"sub":"7"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestMiddlewareFilterSkipsGate(t *testing.T) {
	app := fiber.New()
	app.Use(tokenware.New(tokenware.Config{
		Validator: acceptToken("good-token"),
		Filter: func(c *fiber.Ctx) bool {
			return c.Path() == "/public"
		},
	}))
	app.Get("/public", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMiddlewareContextEnricher(t *testing.T) {
	var enriched tokenware.AuthClaims

	app := fiber.New()
	app.Use(tokenware.New(tokenware.Config{
		Validator: acceptToken("good-token"),
		ContextEnricher: func(ctx context.Context, claims tokenware.AuthClaims) context.Context {
			enriched = claims
			return ctx
		},
	}))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, enriched)
	assert.Equal(t, int64(7), enriched.UserID())
}

func TestMiddlewareCustomErrorHandler(t *testing.T) {
	app := fiber.New()
	app.Use(tokenware.New(tokenware.Config{
		Validator: acceptToken("good-token"),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).JSON(fiber.Map{"mensaje": "custom"})
		},
	}))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "custom", body["mensaje"])
}
