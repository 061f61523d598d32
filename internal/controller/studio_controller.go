package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vibecode-be/internal/dto"
	"vibecode-be/internal/pkg/serverutils"
	"vibecode-be/internal/service"
)

type IStudioController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SubmitPrompt(ctx *fiber.Ctx) error
	AttachVisualContext(ctx *fiber.Ctx) error
	ClearVisualContext(ctx *fiber.Ctx) error
	SetActiveView(ctx *fiber.Ctx) error
	GetArtifact(ctx *fiber.Ctx) error
	ListArchive(ctx *fiber.Ctx) error
}

type studioController struct {
	studioService service.IStudioService
}

func NewStudioController(studioService service.IStudioService) IStudioController {
	return &studioController{
		studioService: studioService,
	}
}

func (c *studioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/studio/v1")
	h.Post("session", c.CreateSession) // unauthenticated: issues the session token
	h.Use(serverutils.JwtMiddleware)
	h.Get("session", c.GetSession)
	h.Post("prompt", c.SubmitPrompt)
	h.Put("visual-context", c.AttachVisualContext)
	h.Delete("visual-context", c.ClearVisualContext)
	h.Put("view", c.SetActiveView)
	h.Get("artifact", c.GetArtifact)
	h.Get("archive", c.ListArchive)
}

func (c *studioController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.studioService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *studioController) GetSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	res, err := c.studioService.GetSession(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *studioController) SubmitPrompt(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	var req dto.SubmitPromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.studioService.SubmitPrompt(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit prompt", res))
}

func (c *studioController) AttachVisualContext(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	var req dto.AttachVisualContextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.studioService.AttachVisualReference(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success attach visual context", res))
}

func (c *studioController) ClearVisualContext(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	if err := c.studioService.ClearVisualReference(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear visual context", struct{}{}))
}

func (c *studioController) SetActiveView(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	var req dto.SetActiveViewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.studioService.SetActiveView(ctx.Context(), sessionId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set active view", struct{}{}))
}

func (c *studioController) GetArtifact(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(uuid.UUID)

	res, err := c.studioService.GetArtifact(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	// Served raw so the sandboxed preview iframe can load it directly.
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(res.Artifact)
}

func (c *studioController) ListArchive(ctx *fiber.Ctx) error {
	res, err := c.studioService.ListArchivedSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list archived sessions", res))
}
