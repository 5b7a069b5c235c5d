package controller

import (
	"drone-response-be/internal/pkg/serverutils"
	"drone-response-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	ExportDrones(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{reportService: reportService}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/report/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("overview", c.Overview)
	h.Get("drones/export", c.ExportDrones)
}

func (c *reportController) Overview(ctx *fiber.Ctx) error {
	res, err := c.reportService.Overview(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get report overview", res))
}

func (c *reportController) ExportDrones(ctx *fiber.Ctx) error {
	data, err := c.reportService.ExportDronesCSV(ctx.Context())
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="drones.csv"`)
	return ctx.Send(data)
}
