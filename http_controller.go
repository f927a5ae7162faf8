package tasks

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// AuthController exposes registration and login as request handlers.
type AuthController struct {
	Logger Logger
	Auther *Auther
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Auther in auth controller...")
	}

	return c
}

// RegisterAuthRoutes mounts the public auth endpoints.
func RegisterAuthRoutes(app fiber.Router, opts ...AuthControllerOption) *AuthController {
	controller := NewAuthController(opts...)

	app.Post("/register", controller.RegisterPost).Name("register.post")
	app.Post("/login", controller.LoginPost).Name("sign-in.post")

	return controller
}

// CredentialsRequest payload for both registration and login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetIdentifier returns the identifier
func (r CredentialsRequest) GetIdentifier() string {
	return r.Email
}

// GetPassword will return the password
func (r CredentialsRequest) GetPassword() string {
	return r.Password
}

// Validate will run validation rules
func (r CredentialsRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(
				&r.Email,
				validation.Required,
				is.Email,
			),
			validation.Field(
				&r.Password,
				validation.Required,
			),
		)
	}, "Datos de acceso inválidos")
}

// RegisterPost creates a new account. No token is issued here: the
// caller logs in separately.
func (a *AuthController) RegisterPost(c *fiber.Ctx) error {
	payload := new(CredentialsRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register parse payload", "error", err)
		return errors.Wrap(err, errors.CategoryBadInput, "Cuerpo de la petición inválido").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	if _, err := a.Auther.Register(c.UserContext(), payload.Email, payload.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"mensaje": "Usuario registrado correctamente"})
}

// LoginPost validates credentials and returns a bearer token.
func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	payload := new(CredentialsRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return errors.Wrap(err, errors.CategoryBadInput, "Cuerpo de la petición inválido").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	token, err := a.Auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token})
}
