package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vibecode-be/internal/dto"
	"vibecode-be/internal/pkg/serverutils"
	"vibecode-be/internal/service"
)

type IDeploymentController interface {
	RegisterRoutes(r fiber.Router)
	OpenWeb(ctx *fiber.Ctx) error
	WebStatus(ctx *fiber.Ctx) error
	DismissWeb(ctx *fiber.Ctx) error
	OpenAppStore(ctx *fiber.Ctx) error
	AppStoreStatus(ctx *fiber.Ctx) error
	SubmitCredentials(ctx *fiber.Ctx) error
	DismissAppStore(ctx *fiber.Ctx) error
}

type deploymentController struct {
	deploymentService service.IDeploymentService
}

func NewDeploymentController(deploymentService service.IDeploymentService) IDeploymentController {
	return &deploymentController{
		deploymentService: deploymentService,
	}
}

func (c *deploymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/deploy/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("web", c.OpenWeb)
	h.Get("web", c.WebStatus)
	h.Delete("web", c.DismissWeb)
	h.Post("app-store", c.OpenAppStore)
	h.Get("app-store", c.AppStoreStatus)
	h.Post("app-store/credentials", c.SubmitCredentials)
	h.Delete("app-store", c.DismissAppStore)
}

func (c *deploymentController) OpenWeb(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	res, err := c.deploymentService.OpenWeb(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success start web deployment", res))
}

func (c *deploymentController) WebStatus(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	res, err := c.deploymentService.WebStatus(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get web deployment", res))
}

func (c *deploymentController) DismissWeb(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	if err := c.deploymentService.DismissWeb(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success dismiss web deployment", struct{}{}))
}

func (c *deploymentController) OpenAppStore(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	res, err := c.deploymentService.OpenAppStore(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success open app store submission", res))
}

func (c *deploymentController) AppStoreStatus(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	res, err := c.deploymentService.AppStoreStatus(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get app store submission", res))
}

func (c *deploymentController) SubmitCredentials(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	var req dto.SubmitCredentialsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.deploymentService.SubmitCredentials(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit credentials", res))
}

func (c *deploymentController) DismissAppStore(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	if err := c.deploymentService.DismissAppStore(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success dismiss app store submission", struct{}{}))
}
