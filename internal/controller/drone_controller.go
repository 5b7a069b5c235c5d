package controller

import (
	"drone-response-be/internal/dto"
	"drone-response-be/internal/pkg/serverutils"
	"drone-response-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDroneController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type droneController struct {
	droneService service.IDroneService
}

func NewDroneController(droneService service.IDroneService) IDroneController {
	return &droneController{droneService: droneService}
}

func (c *droneController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/drone/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *droneController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDroneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.droneService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create drone", res))
}

func (c *droneController) Show(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.droneService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "drone not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show drone", res))
}

func (c *droneController) Update(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateDroneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.droneService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "drone not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update drone", res))
}

func (c *droneController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.droneService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete drone", nil))
}

func (c *droneController) List(ctx *fiber.Ctx) error {
	res, err := c.droneService.List(ctx.Context(),
		ctx.Query("status"),
		ctx.Query("urgency_level"),
		ctx.QueryInt("limit", 50),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list drones", res))
}
