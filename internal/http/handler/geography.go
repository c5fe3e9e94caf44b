package handler

import (
	"github.com/gofiber/fiber/v2"

	"huntapi/internal/service"
)

// ListGeography returns every geography record.
//
// @Summary List geography
// @Tags geography
// @Produce json
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.Geography
// @Failure 400 {object} errorPayload
// @Router /geography/ [get]
func ListGeography(svc service.GeographyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, perr := pageParams(c)
		if perr != nil {
			return badParam(c, perr)
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetGeography returns the geography of one site.
//
// @Summary Get geography
// @Tags geography
// @Produce json
// @Param site_id path string true "site id"
// @Success 200 {object} model.Geography
// @Failure 404 {object} errorPayload
// @Router /geography/{site_id} [get]
func GetGeography(svc service.GeographyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		g, err := svc.Get(c.UserContext(), pathParam(c, "site_id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(g)
	}
}
