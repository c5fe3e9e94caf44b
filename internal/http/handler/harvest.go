package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"huntapi/internal/model"
	"huntapi/internal/service"
)

// ListHarvest returns every harvest record.
//
// @Summary List harvest
// @Tags harvest
// @Produce json
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.Harvest
// @Failure 400 {object} errorPayload
// @Router /harvest/ [get]
func ListHarvest(svc service.HarvestService) fiber.Handler {
	return harvestList(svc.List)
}

// ListCountyHarvest returns county level harvest records.
//
// @Summary List county harvest
// @Tags harvest
// @Produce json
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.Harvest
// @Failure 400 {object} errorPayload
// @Router /harvest/counties [get]
func ListCountyHarvest(svc service.HarvestService) fiber.Handler {
	return harvestList(svc.ListCounties)
}

// ListSiteHarvest returns site level harvest records.
//
// @Summary List site harvest
// @Tags harvest
// @Produce json
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.Harvest
// @Failure 400 {object} errorPayload
// @Router /harvest/sites [get]
func ListSiteHarvest(svc service.HarvestService) fiber.Handler {
	return harvestList(svc.ListSites)
}

func harvestList(list func(ctx context.Context, limit, offset int) ([]model.Harvest, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, perr := pageParams(c)
		if perr != nil {
			return badParam(c, perr)
		}
		res, err := list(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}
