package controller

import (
	"github.com/gofiber/fiber/v2"

	"vibecode-be/internal/pkg/serverutils"
	"vibecode-be/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	SearchShots(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("shots", c.SearchShots)
}

func (c *searchController) SearchShots(ctx *fiber.Ctx) error {
	query := ctx.Query("q")

	res, err := c.searchService.SearchShots(ctx.Context(), query)
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadGateway, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search shots", res))
}
