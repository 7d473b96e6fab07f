package worker

import (
	"go-fieldops/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type WorkerController struct {
	WorkerService WorkerService
	Validate      *validator.Validate
}

func NewWorkerController(workerService WorkerService, validate *validator.Validate) *WorkerController {
	return &WorkerController{WorkerService: workerService, Validate: validate}
}

// ListWorkers godoc
// @Summary      List the worker directory
// @Tags         trabajadores
// @Produce      json
// @Success      200  {array}   worker.Worker
// @Failure      503  {object}  apperrors.Response
// @Router       /api/trabajadores [get]
func (c *WorkerController) ListWorkers(ctx *fiber.Ctx) error {
	workers, err := c.WorkerService.ListWorkers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(workers)
}

// SearchWorkers godoc
// @Summary      Search workers by name
// @Tags         trabajadores
// @Produce      json
// @Param        nombre  query  string  true  "Name fragment"
// @Success      200  {array}   worker.Worker
// @Failure      400  {object}  apperrors.Response
// @Router       /api/trabajadores/buscar [get]
func (c *WorkerController) SearchWorkers(ctx *fiber.Ctx) error {
	workers, err := c.WorkerService.SearchWorkers(ctx.Context(), ctx.Query("nombre"))
	if err != nil {
		return err
	}
	return ctx.JSON(workers)
}

// CreateWorker godoc
// @Summary      Add a worker to the directory
// @Tags         trabajadores
// @Accept       json
// @Produce      json
// @Param        worker  body  worker.Worker  true  "Worker"
// @Success      201  {object}  worker.Worker
// @Failure      400  {object}  apperrors.Response
// @Failure      409  {object}  apperrors.Response
// @Router       /api/trabajadores [post]
func (c *WorkerController) CreateWorker(ctx *fiber.Ctx) error {
	var worker Worker
	if err := ctx.BodyParser(&worker); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}
	if err := c.WorkerService.CreateWorker(ctx.Context(), &worker); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(worker)
}

// ListBrigades godoc
// @Summary      List brigades with members resolved
// @Tags         brigadas
// @Produce      json
// @Param        search  query  string  false  "Leader or member name"
// @Success      200  {array}   worker.BrigadeView
// @Router       /api/brigadas [get]
func (c *WorkerController) ListBrigades(ctx *fiber.Ctx) error {
	brigades, err := c.WorkerService.ListBrigades(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(brigades)
}

// GetBrigade godoc
// @Summary      Brigade of a leader
// @Tags         brigadas
// @Produce      json
// @Param        lider_ci  path  string  true  "Leader CI"
// @Success      200  {object}  worker.BrigadeView
// @Failure      404  {object}  apperrors.Response
// @Router       /api/brigadas/{lider_ci} [get]
func (c *WorkerController) GetBrigade(ctx *fiber.Ctx) error {
	brigade, err := c.WorkerService.GetBrigade(ctx.Context(), ctx.Params("lider_ci"))
	if err != nil {
		return err
	}
	return ctx.JSON(brigade)
}

// CreateBrigade godoc
// @Summary      Create a brigade
// @Tags         brigadas
// @Accept       json
// @Produce      json
// @Param        brigade  body  worker.Brigade  true  "Leader and member CIs"
// @Success      201  {object}  worker.BrigadeView
// @Failure      400  {object}  apperrors.Response
// @Failure      404  {object}  apperrors.Response
// @Failure      409  {object}  apperrors.Response
// @Router       /api/brigadas [post]
func (c *WorkerController) CreateBrigade(ctx *fiber.Ctx) error {
	var brigade Brigade
	if err := ctx.BodyParser(&brigade); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}
	view, err := c.WorkerService.CreateBrigade(ctx.Context(), &brigade)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(view)
}

// DeleteBrigade godoc
// @Summary      Delete a brigade
// @Tags         brigadas
// @Param        lider_ci  path  string  true  "Leader CI"
// @Success      204
// @Failure      404  {object}  apperrors.Response
// @Router       /api/brigadas/{lider_ci} [delete]
func (c *WorkerController) DeleteBrigade(ctx *fiber.Ctx) error {
	if err := c.WorkerService.DeleteBrigade(ctx.Context(), ctx.Params("lider_ci")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// AddMember godoc
// @Summary      Add a member to a brigade
// @Tags         brigadas
// @Accept       json
// @Param        lider_ci  path  string                true  "Leader CI"
// @Param        member    body  worker.MemberRequest  true  "Member CI"
// @Success      204
// @Failure      400  {object}  apperrors.Response
// @Failure      404  {object}  apperrors.Response
// @Router       /api/brigadas/{lider_ci}/trabajadores [post]
func (c *WorkerController) AddMember(ctx *fiber.Ctx) error {
	var req MemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}
	if err := c.Validate.Struct(&req); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation)
	}
	if err := c.WorkerService.AddMember(ctx.Context(), ctx.Params("lider_ci"), req.CI); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// RemoveMember godoc
// @Summary      Remove a member from a brigade
// @Tags         brigadas
// @Param        lider_ci  path  string  true  "Leader CI"
// @Param        ci        path  string  true  "Member CI"
// @Success      204
// @Failure      404  {object}  apperrors.Response
// @Router       /api/brigadas/{lider_ci}/trabajadores/{ci} [delete]
func (c *WorkerController) RemoveMember(ctx *fiber.Ctx) error {
	if err := c.WorkerService.RemoveMember(ctx.Context(), ctx.Params("lider_ci"), ctx.Params("ci")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
