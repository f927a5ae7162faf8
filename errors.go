package tasks

import (
	stderrors "errors"

	"github.com/goliatone/go-errors"
)

// ErrNoEmptyString rejects empty plaintext passwords before hashing
var ErrNoEmptyString = stderrors.New("password must not be empty")

// ErrMismatchedHashAndPassword is the verification failure for a wrong
// password or an unparseable stored hash
var ErrMismatchedHashAndPassword = stderrors.New("hashed password does not match")

const (
	TextCodeAccountExists    = "account_exists"
	TextCodeAccountNotFound  = "account_not_found"
	TextCodeBadCredentials   = "bad_credentials"
	TextCodeTokenExpired     = "token_expired"
	TextCodeTokenInvalid     = "token_signature_invalid"
	TextCodeTokenMalformed   = "token_malformed"
	TextCodeTaskNotFound     = "task_not_found"
	TextCodeRouteNotFound    = "route_not_found"
	TextCodeStoreUnavailable = "store_unavailable"
)

// Error messages double as the client-facing "mensaje" payload, so they keep
// the wire contract's Spanish wording.

// ErrAccountExists is returned when registering an email that is already taken.
var ErrAccountExists = errors.New("Usuario ya existe", errors.CategoryValidation).
	WithTextCode(TextCodeAccountExists).
	WithCode(errors.CodeBadRequest)

// ErrAccountNotFound is returned when no account matches the given email.
var ErrAccountNotFound = errors.New("Usuario no encontrado", errors.CategoryValidation).
	WithTextCode(TextCodeAccountNotFound).
	WithCode(errors.CodeBadRequest)

// ErrBadCredentials is returned when the password does not verify.
var ErrBadCredentials = errors.New("Contraseña incorrecta", errors.CategoryAuth).
	WithTextCode(TextCodeBadCredentials).
	WithCode(errors.CodeBadRequest)

// ErrTokenExpired is returned for tokens past their embedded expiration.
var ErrTokenExpired = errors.New("Token inválido", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeForbidden)

// ErrTokenInvalid is returned for tokens whose signature does not verify.
var ErrTokenInvalid = errors.New("Token inválido", errors.CategoryAuth).
	WithTextCode(TextCodeTokenInvalid).
	WithCode(errors.CodeForbidden)

// ErrTokenMalformed is returned for structurally bad tokens.
var ErrTokenMalformed = errors.New("Token inválido", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeForbidden)

// ErrTaskNotFound is returned when updating a task id that does not exist.
var ErrTaskNotFound = errors.New("Tarea no encontrada", errors.CategoryNotFound).
	WithTextCode(TextCodeTaskNotFound).
	WithCode(errors.CodeNotFound)

// ErrRouteNotFound is the terminal handler's answer for unmatched routes.
var ErrRouteNotFound = errors.New("Ruta no encontrada", errors.CategoryNotFound).
	WithTextCode(TextCodeRouteNotFound).
	WithCode(errors.CodeNotFound)

// ErrStoreUnavailable flags an unreadable or unwritable backing document.
// It is internal and never reaches the client verbatim.
var ErrStoreUnavailable = errors.New("storage unavailable", errors.CategoryInternal).
	WithTextCode(TextCodeStoreUnavailable).
	WithCode(errors.CodeInternal)
