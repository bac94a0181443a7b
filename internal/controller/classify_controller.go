package controller

import (
	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/pkg/serverutils"
	"trade-compliance-be/internal/service"
	"trade-compliance-be/pkg/clarify"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IClassifyController interface {
	RegisterRoutes(r fiber.Router)
	Classify(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Extract(ctx *fiber.Ctx) error
}

type classifyController struct {
	classificationService service.IClassificationService
	extractorService      service.IExtractorService
}

func NewClassifyController(
	classificationService service.IClassificationService,
	extractorService service.IExtractorService,
) IClassifyController {
	return &classifyController{
		classificationService: classificationService,
		extractorService:      extractorService,
	}
}

func (c *classifyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/classify/v1")
	h.Post("", c.Classify)
	h.Post("extract", c.Extract)
	h.Post("session/:id/answer", c.Answer)
}

func (c *classifyController) Classify(ctx *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation{Reason: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.classificationService.Classify(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success classify", res))
}

func (c *classifyController) Answer(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return clarify.ErrSessionNotFound
	}

	var req dto.AnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation{Reason: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.classificationService.Answer(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer clarification", res))
}

func (c *classifyController) Extract(ctx *fiber.Ctx) error {
	var req dto.ExtractSlotsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation{Reason: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.extractorService.Extract(ctx.Context(), req.Question)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success extract slots", res))
}
