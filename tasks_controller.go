package tasks

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// TasksController exposes the shared task list behind the bearer gate.
type TasksController struct {
	Logger Logger
	Store  *TaskStore
}

type TasksControllerOption func(*TasksController) *TasksController

func NewTasksController(opts ...TasksControllerOption) *TasksController {
	c := &TasksController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Store == nil {
		panic("Missing TaskStore in tasks controller...")
	}

	return c
}

// RegisterTaskRoutes mounts the task CRUD endpoints. The caller is
// expected to pass a router group already wrapped by tokenware.
func RegisterTaskRoutes(app fiber.Router, opts ...TasksControllerOption) *TasksController {
	controller := NewTasksController(opts...)

	app.Get("/", controller.List).Name("tareas.list")
	app.Post("/", controller.Create).Name("tareas.create")
	app.Put("/:id", controller.Update).Name("tareas.update")
	app.Delete("/:id", controller.Delete).Name("tareas.delete")

	return controller
}

// TaskPayload carries the mutable task fields.
type TaskPayload struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

func (t *TasksController) List(c *fiber.Ctx) error {
	records, err := t.Store.All(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(records)
}

func (t *TasksController) Create(c *fiber.Ctx) error {
	payload := new(TaskPayload)
	if err := c.BodyParser(payload); err != nil {
		t.Logger.Error("task create parse payload", "error", err)
		return errors.Wrap(err, errors.CategoryBadInput, "Cuerpo de la petición inválido").
			WithCode(errors.CodeBadRequest)
	}

	task, err := t.Store.Create(c.UserContext(), payload.Title, payload.Description)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (t *TasksController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		// an unparseable id can never match a record
		return ErrTaskNotFound
	}

	payload := new(TaskPayload)
	if err := c.BodyParser(payload); err != nil {
		t.Logger.Error("task update parse payload", "error", err)
		return errors.Wrap(err, errors.CategoryBadInput, "Cuerpo de la petición inválido").
			WithCode(errors.CodeBadRequest)
	}

	task, err := t.Store.Update(c.UserContext(), id, payload.Title, payload.Description)
	if err != nil {
		return err
	}

	return c.JSON(task)
}

// Delete answers success even for ids that do not exist: removing an
// absent record leaves the collection in the requested state.
func (t *TasksController) Delete(c *fiber.Ctx) error {
	if id, err := strconv.ParseInt(c.Params("id"), 10, 64); err == nil {
		if err := t.Store.Delete(c.UserContext(), id); err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{"mensaje": "Tarea eliminada correctamente"})
}
