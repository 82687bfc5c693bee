package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/inventory"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
)

// InventoryHandler maneja el navegador de existencias (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Existencias paginadas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página (default 20, max 100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.InventoryItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	items, err := h.uc.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(items)
}

// GetByPartNumber godoc
// @Summary      Existencias de una parte
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        part_number  path  string  true  "número de parte"
// @Success      200  {object}  dto.InventoryItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{part_number} [get]
func (h *InventoryHandler) GetByPartNumber(c *fiber.Ctx) error {
	item, err := h.uc.GetByPartNumber(c.Context(), c.Params("part_number"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "parte no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(item)
}
