package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"huntapi/internal/model"
	"huntapi/internal/service"
)

// ListHuntableSpecies returns every huntable species record.
//
// @Summary List huntable species
// @Tags huntable-species
// @Produce json
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.HuntableSpecies
// @Failure 400 {object} errorPayload
// @Router /huntable-species/ [get]
func ListHuntableSpecies(svc service.HuntableSpeciesService) fiber.Handler {
	return huntableList(func(ctx context.Context, _ *fiber.Ctx, limit, offset int) ([]model.HuntableSpecies, error) {
		return svc.List(ctx, limit, offset)
	})
}

// ListHuntableSpeciesBySite returns the species huntable at one site.
//
// @Summary List huntable species by site
// @Tags huntable-species
// @Produce json
// @Param site_id path string true "site id"
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.HuntableSpecies
// @Failure 404 {object} errorPayload
// @Router /huntable-species/site/{site_id} [get]
func ListHuntableSpeciesBySite(svc service.HuntableSpeciesService) fiber.Handler {
	return huntableList(func(ctx context.Context, c *fiber.Ctx, limit, offset int) ([]model.HuntableSpecies, error) {
		return svc.ListBySite(ctx, pathParam(c, "site_id"), limit, offset)
	})
}

// ListHuntableSpeciesBySpecies returns the sites where a species is huntable.
//
// @Summary List huntable species by species
// @Tags huntable-species
// @Produce json
// @Param species path string true "species name"
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.HuntableSpecies
// @Failure 404 {object} errorPayload
// @Router /huntable-species/species/{species} [get]
func ListHuntableSpeciesBySpecies(svc service.HuntableSpeciesService) fiber.Handler {
	return huntableList(func(ctx context.Context, c *fiber.Ctx, limit, offset int) ([]model.HuntableSpecies, error) {
		return svc.ListBySpecies(ctx, pathParam(c, "species"), limit, offset)
	})
}

func huntableList(list func(ctx context.Context, c *fiber.Ctx, limit, offset int) ([]model.HuntableSpecies, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, perr := pageParams(c)
		if perr != nil {
			return badParam(c, perr)
		}
		res, err := list(c.UserContext(), c, limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}
