package audit

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	Service AuditService
}

func NewAuditController(service AuditService) *AuditController {
	return &AuditController{Service: service}
}

// ListLogs godoc
// @Summary      List audit entries, newest first
// @Tags         audit
// @Produce      json
// @Param        module     query  string  false  "Module"
// @Param        record_id  query  string  false  "Record ID"
// @Param        page       query  int     false  "Page"
// @Param        limit      query  int     false  "Page size"
// @Success      200  {array}   models.AuditLog
// @Router       /api/audit [get]
func (ctrl *AuditController) ListLogs(c *fiber.Ctx) error {
	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

	filter := LogFilter{
		Module:   c.Query("module"),
		RecordID: c.Query("record_id"),
	}

	logs, err := ctrl.Service.ListLogs(c.Context(), filter, page, limit)
	if err != nil {
		return err
	}

	return c.JSON(logs)
}
