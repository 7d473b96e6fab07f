package offer

import (
	"go-fieldops/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

type OfferController struct {
	OfferService OfferService
}

func NewOfferController(offerService OfferService) *OfferController {
	return &OfferController{OfferService: offerService}
}

// List godoc
// @Summary      List offers
// @Tags         ofertas
// @Produce      json
// @Success      200  {array}   offer.Offer
// @Failure      503  {object}  apperrors.Response
// @Router       /api/ofertas [get]
func (c *OfferController) List(ctx *fiber.Ctx) error {
	offers, err := c.OfferService.ListOffers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(offers)
}

// ListSimplified godoc
// @Summary      List offers without elements
// @Tags         ofertas
// @Produce      json
// @Success      200  {array}   offer.SimplifiedOffer
// @Router       /api/ofertas/simplified [get]
func (c *OfferController) ListSimplified(ctx *fiber.Ctx) error {
	offers, err := c.OfferService.ListSimplified(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(offers)
}

// Get godoc
// @Summary      Offer with elements sorted by categoria
// @Tags         ofertas
// @Produce      json
// @Param        id   path  string  true  "Offer ID"
// @Success      200  {object}  offer.Offer
// @Failure      404  {object}  apperrors.Response
// @Router       /api/ofertas/{id} [get]
func (c *OfferController) Get(ctx *fiber.Ctx) error {
	offer, err := c.OfferService.GetOffer(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(offer)
}

// Create godoc
// @Summary      Create an offer
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Param        offer  body  offer.Offer  true  "Offer"
// @Success      201  {object}  offer.Offer
// @Failure      400  {object}  apperrors.Response
// @Router       /api/ofertas [post]
func (c *OfferController) Create(ctx *fiber.Ctx) error {
	var offer Offer
	if err := ctx.BodyParser(&offer); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}

	if err := c.OfferService.CreateOffer(ctx.Context(), &offer); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(offer)
}

// Update godoc
// @Summary      Update the top-level fields of an offer
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Param        id      path  string             true  "Offer ID"
// @Param        update  body  offer.OfferUpdate  true  "Fields to change"
// @Success      200  {object}  offer.Offer
// @Failure      400  {object}  apperrors.Response
// @Failure      404  {object}  apperrors.Response
// @Router       /api/ofertas/{id} [put]
func (c *OfferController) Update(ctx *fiber.Ctx) error {
	var update OfferUpdate
	if err := ctx.BodyParser(&update); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}

	offer, err := c.OfferService.UpdateOffer(ctx.Context(), ctx.Params("id"), update)
	if err != nil {
		return err
	}
	return ctx.JSON(offer)
}

// Delete godoc
// @Summary      Delete an offer
// @Tags         ofertas
// @Param        id  path  string  true  "Offer ID"
// @Success      204
// @Failure      404  {object}  apperrors.Response
// @Router       /api/ofertas/{id} [delete]
func (c *OfferController) Delete(ctx *fiber.Ctx) error {
	if err := c.OfferService.DeleteOffer(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// AddElement godoc
// @Summary      Append an element to an offer
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Param        id       path  string         true  "Offer ID"
// @Param        element  body  offer.Element  true  "Element"
// @Success      201  {object}  offer.Element
// @Failure      400  {object}  apperrors.Response
// @Failure      404  {object}  apperrors.Response
// @Failure      409  {object}  apperrors.Response
// @Router       /api/ofertas/{id}/elementos [post]
func (c *OfferController) AddElement(ctx *fiber.Ctx) error {
	var element Element
	if err := ctx.BodyParser(&element); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}

	added, err := c.OfferService.AddElement(ctx.Context(), ctx.Params("id"), element)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(added)
}

// UpdateElement godoc
// @Summary      Update the element at a position of the sorted view
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Param        id     path  string             true  "Offer ID"
// @Param        index  path  int                true  "Position in the sorted view"
// @Param        patch  body  offer.ElementPatch true  "Fields to change"
// @Success      200  {object}  offer.Element
// @Failure      404  {object}  apperrors.Response
// @Failure      409  {object}  apperrors.Response
// @Router       /api/ofertas/{id}/elementos/{index} [put]
func (c *OfferController) UpdateElement(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "index must be an integer")
	}
	var patch ElementPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}

	updated, err := c.OfferService.UpdateElement(ctx.Context(), ctx.Params("id"), index, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(updated)
}

// RemoveElement godoc
// @Summary      Remove the element at a position of the sorted view
// @Tags         ofertas
// @Param        id     path  string  true  "Offer ID"
// @Param        index  path  int     true  "Position in the sorted view"
// @Success      204
// @Failure      404  {object}  apperrors.Response
// @Failure      409  {object}  apperrors.Response
// @Router       /api/ofertas/{id}/elementos/{index} [delete]
func (c *OfferController) RemoveElement(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "index must be an integer")
	}

	if err := c.OfferService.RemoveElement(ctx.Context(), ctx.Params("id"), index); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// UpdateElementByID godoc
// @Summary      Update an element by element_id
// @Tags         ofertas
// @Accept       json
// @Produce      json
// @Param        id          path  string              true  "Offer ID"
// @Param        element_id  path  string              true  "Element ID"
// @Param        patch       body  offer.ElementPatch  true  "Fields to change"
// @Success      200  {object}  offer.Element
// @Failure      404  {object}  apperrors.Response
// @Failure      409  {object}  apperrors.Response
// @Router       /api/ofertas/{id}/elementos/id/{element_id} [put]
func (c *OfferController) UpdateElementByID(ctx *fiber.Ctx) error {
	var patch ElementPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return apperrors.Clone(apperrors.ErrValidation, "Invalid request body")
	}

	updated, err := c.OfferService.UpdateElementByID(ctx.Context(), ctx.Params("id"), ctx.Params("element_id"), patch)
	if err != nil {
		return err
	}
	return ctx.JSON(updated)
}

// RemoveElementByID godoc
// @Summary      Remove an element by element_id
// @Tags         ofertas
// @Param        id          path  string  true  "Offer ID"
// @Param        element_id  path  string  true  "Element ID"
// @Success      204
// @Failure      404  {object}  apperrors.Response
// @Failure      409  {object}  apperrors.Response
// @Router       /api/ofertas/{id}/elementos/id/{element_id} [delete]
func (c *OfferController) RemoveElementByID(ctx *fiber.Ctx) error {
	if err := c.OfferService.RemoveElementByID(ctx.Context(), ctx.Params("id"), ctx.Params("element_id")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
