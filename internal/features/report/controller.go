package report

import (
	"fmt"

	"go-fieldops/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	ReportService ReportService
	Validate      *validator.Validate
}

func NewReportController(reportService ReportService, validate *validator.Validate) *ReportController {
	return &ReportController{ReportService: reportService, Validate: validate}
}

type periodQuery struct {
	FechaInicio string `query:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `query:"fecha_fin" validate:"required,datetime=2006-01-02"`
	Categoria   string `query:"categoria"`
}

type listQuery struct {
	TipoReporte   string `query:"tipo_reporte"`
	ClienteNumero string `query:"cliente_numero"`
	FechaInicio   string `query:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin      string `query:"fecha_fin" validate:"omitempty,datetime=2006-01-02"`
	LiderCI       string `query:"lider_ci"`
	Descripcion   string `query:"descripcion"`
	Q             string `query:"q"`
}

func (c *ReportController) period(ctx *fiber.Ctx) (*periodQuery, error) {
	var q periodQuery
	if err := ctx.QueryParser(&q); err != nil {
		return nil, apperrors.Clone(apperrors.ErrValidation, "invalid query parameters")
	}
	if err := c.Validate.Struct(&q); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Clone(apperrors.ErrValidation, "fecha_inicio and fecha_fin are required as YYYY-MM-DD"))
	}
	return &q, nil
}

// Create godoc
// @Summary      Create a report
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Param        report  body  report.Report  true  "Report"
// @Success      201  {object}  report.Report
// @Failure      400  {object}  apperrors.Response
// @Router       /api/reportes [post]
func (c *ReportController) Create(ctx *fiber.Ctx) error {
	var report Report
	if err := ctx.BodyParser(&report); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}

	if err := c.ReportService.CreateReport(ctx.Context(), &report); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(report)
}

// List godoc
// @Summary      List reports
// @Tags         reportes
// @Produce      json
// @Param        tipo_reporte  query  string  false  "inversion, averia or mantenimiento"
// @Param        lider_ci      query  string  false  "Leader CI"
// @Param        q             query  string  false  "Free text search"
// @Success      200  {array}   report.Report
// @Router       /api/reportes [get]
func (c *ReportController) List(ctx *fiber.Ctx) error {
	var q listQuery
	if err := ctx.QueryParser(&q); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "invalid query parameters")
	}
	if err := c.Validate.Struct(&q); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation)
	}

	reports, err := c.ReportService.ListReports(ctx.Context(), ReportFilter{
		TipoReporte:   q.TipoReporte,
		ClienteNumero: q.ClienteNumero,
		FechaInicio:   q.FechaInicio,
		FechaFin:      q.FechaFin,
		LiderCI:       q.LiderCI,
		Descripcion:   q.Descripcion,
		Q:             q.Q,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(reports)
}

// Get godoc
// @Summary      Get a report
// @Tags         reportes
// @Produce      json
// @Param        id  path  string  true  "Report ID"
// @Success      200  {object}  report.Report
// @Failure      404  {object}  apperrors.Response
// @Router       /api/reportes/{id} [get]
func (c *ReportController) Get(ctx *fiber.Ctx) error {
	report, err := c.ReportService.GetReport(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}

// HoursForWorker godoc
// @Summary      Hours worked by one worker
// @Tags         reportes
// @Produce      json
// @Param        ci            path   string  true  "Worker CI"
// @Param        fecha_inicio  query  string  true  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  report.WorkerTotal
// @Failure      400  {object}  apperrors.Response
// @Failure      503  {object}  apperrors.Response
// @Router       /api/reportes/horas-trabajadas/{ci} [get]
func (c *ReportController) HoursForWorker(ctx *fiber.Ctx) error {
	q, err := c.period(ctx)
	if err != nil {
		return err
	}
	ci := ctx.Params("ci")

	total, err := c.ReportService.HoursForWorker(ctx.Context(), ci, q.FechaInicio, q.FechaFin)
	if err != nil {
		return err
	}
	return ctx.JSON(WorkerTotal{
		CI:          ci,
		FechaInicio: q.FechaInicio,
		FechaFin:    q.FechaFin,
		TotalHoras:  total,
	})
}

// HoursForAllWorkers godoc
// @Summary      Hours worked by every worker in the period
// @Tags         reportes
// @Produce      json
// @Param        fecha_inicio  query  string  true  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  report.HoursReport
// @Router       /api/reportes/horas-trabajadas [get]
func (c *ReportController) HoursForAllWorkers(ctx *fiber.Ctx) error {
	q, err := c.period(ctx)
	if err != nil {
		return err
	}

	rows, err := c.ReportService.HoursForAllWorkers(ctx.Context(), q.FechaInicio, q.FechaFin)
	if err != nil {
		return err
	}
	return ctx.JSON(HoursReport{
		FechaInicio:       q.FechaInicio,
		FechaFin:          q.FechaFin,
		TotalTrabajadores: len(rows),
		Trabajadores:      rows,
	})
}

// MaterialsForBrigade godoc
// @Summary      Material usage of one brigade
// @Tags         reportes
// @Produce      json
// @Param        lider_ci      path   string  true   "Leader CI"
// @Param        fecha_inicio  query  string  true   "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true   "YYYY-MM-DD"
// @Param        categoria     query  string  false  "Category filter"
// @Success      200  {object}  map[string][]report.MaterialUsage
// @Router       /api/reportes/materiales/{lider_ci} [get]
func (c *ReportController) MaterialsForBrigade(ctx *fiber.Ctx) error {
	q, err := c.period(ctx)
	if err != nil {
		return err
	}

	usage, err := c.ReportService.MaterialsForBrigade(ctx.Context(), ctx.Params("lider_ci"), q.FechaInicio, q.FechaFin, q.Categoria)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"materiales": usage})
}

// MaterialsForAllBrigades godoc
// @Summary      Material usage grouped by brigade
// @Tags         reportes
// @Produce      json
// @Param        fecha_inicio  query  string  true   "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true   "YYYY-MM-DD"
// @Param        categoria     query  string  false  "Category filter"
// @Success      200  {object}  map[string][]report.BrigadeMaterials
// @Router       /api/reportes/materiales [get]
func (c *ReportController) MaterialsForAllBrigades(ctx *fiber.Ctx) error {
	q, err := c.period(ctx)
	if err != nil {
		return err
	}

	groups, err := c.ReportService.MaterialsForAllBrigades(ctx.Context(), q.FechaInicio, q.FechaFin, q.Categoria)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"brigadas": groups})
}

// Summary godoc
// @Summary      Hours and materials of a period
// @Tags         reportes
// @Produce      json
// @Param        fecha_inicio  query  string  true   "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true   "YYYY-MM-DD"
// @Param        categoria     query  string  false  "Category filter"
// @Success      200  {object}  report.PeriodSummary
// @Failure      503  {object}  apperrors.Response
// @Router       /api/reportes/resumen [get]
func (c *ReportController) Summary(ctx *fiber.Ctx) error {
	q, err := c.period(ctx)
	if err != nil {
		return err
	}

	summary, err := c.ReportService.Summary(ctx.Context(), q.FechaInicio, q.FechaFin, q.Categoria)
	if err != nil {
		return err
	}
	return ctx.JSON(summary)
}

// ExportHours godoc
// @Summary      Worked hours as an xlsx workbook
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        fecha_inicio  query  string  true   "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true   "YYYY-MM-DD"
// @Success      200  {file}  file
// @Router       /api/reportes/horas-trabajadas/export [get]
func (c *ReportController) ExportHours(ctx *fiber.Ctx) error {
	q, err := c.period(ctx)
	if err != nil {
		return err
	}

	data, filename, err := c.ReportService.ExportHours(ctx.Context(), q.FechaInicio, q.FechaFin)
	if err != nil {
		return err
	}
	return sendWorkbook(ctx, data, filename)
}

// ExportMaterials godoc
// @Summary      Material usage as an xlsx workbook
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        fecha_inicio  query  string  true   "YYYY-MM-DD"
// @Param        fecha_fin     query  string  true   "YYYY-MM-DD"
// @Param        categoria     query  string  false  "Category filter"
// @Success      200  {file}  file
// @Router       /api/reportes/materiales/export [get]
func (c *ReportController) ExportMaterials(ctx *fiber.Ctx) error {
	q, err := c.period(ctx)
	if err != nil {
		return err
	}

	data, filename, err := c.ReportService.ExportMaterials(ctx.Context(), q.FechaInicio, q.FechaFin, q.Categoria)
	if err != nil {
		return err
	}
	return sendWorkbook(ctx, data, filename)
}

func sendWorkbook(ctx *fiber.Ctx, data []byte, filename string) error {
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(data)
}
