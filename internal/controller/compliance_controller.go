package controller

import (
	"trade-compliance-be/internal/dto"
	"trade-compliance-be/internal/pkg/serverutils"
	"trade-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IComplianceController interface {
	RegisterRoutes(r fiber.Router)
	Assemble(ctx *fiber.Ctx) error
}

type complianceController struct {
	complianceService service.IComplianceService
	explainerService  service.IExplainerService
}

func NewComplianceController(
	complianceService service.IComplianceService,
	explainerService service.IExplainerService,
) IComplianceController {
	return &complianceController{
		complianceService: complianceService,
		explainerService:  explainerService,
	}
}

func (c *complianceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/compliance/v1")
	h.Post("record", c.Assemble)
}

func (c *complianceController) Assemble(ctx *fiber.Ctx) error {
	var req dto.ComplianceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrValidation{Reason: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	record, err := c.complianceService.Assemble(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// The record is complete without the explanation; the annotation is
	// opt-in and degrades to empty on provider failure.
	if ctx.QueryBool("explain") {
		explanation, err := c.explainerService.Explain(ctx.Context(), record)
		if err == nil {
			record.Explanation = explanation
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success assemble compliance record", record))
}
