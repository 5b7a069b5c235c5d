package controller

import (
	"drone-response-be/internal/pkg/serverutils"
	"drone-response-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFleetController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	MonthlyStatistics(ctx *fiber.Ctx) error
}

type fleetController struct {
	fleetService service.IFleetService
}

func NewFleetController(fleetService service.IFleetService) IFleetController {
	return &fleetController{fleetService: fleetService}
}

func (c *fleetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/fleet/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("status", c.Status)
	h.Get("statistics", c.MonthlyStatistics)
}

func (c *fleetController) Status(ctx *fiber.Ctx) error {
	res, err := c.fleetService.FleetStatus(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get fleet status", res))
}

func (c *fleetController) MonthlyStatistics(ctx *fiber.Ctx) error {
	res, err := c.fleetService.MonthlyStatistics(ctx.Context(), ctx.Query("month"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get fleet statistics", res))
}
