package http

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/ingest"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
)

// IngestHandler maneja la carga de CSV (solo admin).
type IngestHandler struct {
	uc *ingest.UseCase
}

// NewIngestHandler construye el handler.
func NewIngestHandler(uc *ingest.UseCase) *IngestHandler {
	return &IngestHandler{uc: uc}
}

// UploadMovements godoc
// @Summary      Carga masiva de movimientos
// @Description  Inserta el CSV completo en el log de recepción dentro de una
//
//	transacción. Todo-o-nada: una fila inválida rechaza el archivo.
//
// @Tags         ingest
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV de movimientos"
// @Success      200  {object}  map[string]int64
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ingest/movements [post]
func (h *IngestHandler) UploadMovements(c *fiber.Ctx) error {
	return h.upload(c, h.uc.LoadMovements)
}

// UploadInventory godoc
// @Summary      Carga masiva de existencias
// @Description  Upsert por part_number dentro de una transacción.
// @Tags         ingest
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV de existencias"
// @Success      200  {object}  map[string]int64
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ingest/inventory [post]
func (h *IngestHandler) UploadInventory(c *fiber.Ctx) error {
	return h.upload(c, h.uc.LoadInventory)
}

func (h *IngestHandler) upload(c *fiber.Ctx, load func(context.Context, io.Reader) (int64, error)) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	rows, err := load(c.Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_FILE", Message: "el CSV no contiene filas de datos"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"rows": rows})
}
