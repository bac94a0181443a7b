package controller

import (
	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/pkg/serverutils"
	"trade-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INomenclatureController interface {
	RegisterRoutes(r fiber.Router)
	Upsert(ctx *fiber.Ctx) error
}

type nomenclatureController struct {
	nomenclatureService service.INomenclatureService
}

func NewNomenclatureController(nomenclatureService service.INomenclatureService) INomenclatureController {
	return &nomenclatureController{
		nomenclatureService: nomenclatureService,
	}
}

func (c *nomenclatureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/nomenclature/v1")
	h.Put("", c.Upsert)
}

func (c *nomenclatureController) Upsert(ctx *fiber.Ctx) error {
	var req dto.UpsertNomenclatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation{Reason: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.nomenclatureService.Upsert(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upsert nomenclature", nil))
}
