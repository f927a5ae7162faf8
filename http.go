package tasks

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-tasks/middleware/tokenware"
)

// Server assembles the fiber app: public auth routes, the bearer-gated
// task routes, the terminal 404 handler, and the central error
// boundary every handler funnels into.
type Server struct {
	app    *fiber.App
	cfg    *AppConfig
	logger Logger
}

func NewServer(cfg *AppConfig, auther *Auther, store *TaskStore, logger Logger) *Server {
	if logger == nil {
		logger = defLogger{}
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "go-tasks",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	RegisterAuthRoutes(s.app, func(ac *AuthController) *AuthController {
		ac.Auther = auther
		ac.Logger = logger
		return ac
	})

	protected := tokenware.New(tokenware.Config{
		Validator:       tokenValidatorAdapter(auther.TokenService()),
		ContextKey:      cfg.GetContextKey(),
		AuthScheme:      cfg.GetAuthScheme(),
		ContextEnricher: ContextEnricherAdapter,
	})

	RegisterTaskRoutes(s.app.Group("/tareas", protected), func(tc *TasksController) *TasksController {
		tc.Store = store
		tc.Logger = logger
		return tc
	})

	// terminal handler: anything still unmatched is a 404
	s.app.Use(func(c *fiber.Ctx) error {
		return ErrRouteNotFound
	})

	return s
}

// App exposes the underlying fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.ListenAddr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler is the single error boundary. Domain errors carry their
// status and client message; everything else is logged in full and
// collapsed to a generic 500 so no internal detail leaks.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusNotFound {
			richErr = ErrRouteNotFound
		} else {
			richErr = errors.Wrap(err, errors.CategoryInternal, "unexpected server error").
				WithCode(errors.CodeInternal)
		}
	}

	if richErr.Category == errors.CategoryInternal {
		s.logger.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"mensaje": "Ocurrió un error en el servidor"})
	}

	status := richErr.Code
	if status < fiber.StatusBadRequest {
		status = statusFromCategory(richErr.Category)
	}

	return c.Status(status).JSON(fiber.Map{"mensaje": richErr.Message})
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryAuth, errors.CategoryAuthz:
		return fiber.StatusUnauthorized
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	case errors.CategoryValidation, errors.CategoryBadInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
