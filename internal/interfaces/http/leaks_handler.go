package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/leaks"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/resolution"
)

// LeaksHandler maneja las peticiones HTTP del Leak Detector (protegido).
type LeaksHandler struct {
	query   *leaks.QueryUseCase
	resolve *leaks.ResolveUseCase
}

// NewLeaksHandler construye el handler.
func NewLeaksHandler(query *leaks.QueryUseCase, resolve *leaks.ResolveUseCase) *LeaksHandler {
	return &LeaksHandler{query: query, resolve: resolve}
}

// List godoc
// @Summary      Vista de casos sospechosos
// @Description  mode=open (default): casos abiertos que disparan el detector, timestamp DESC.
//
//	mode=resolved: archivo de casos cerrados, resolved_at DESC.
//
// @Tags         leaks
// @Security     Bearer
// @Produce      json
// @Param        mode         query  string  false  "open | resolved"
// @Param        part_number  query  string  false  "contención case-insensitive"
// @Param        employee_id  query  string  false  "contención case-insensitive"
// @Success      200  {object}  dto.LeakListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/leaks [get]
func (h *LeaksHandler) List(c *fiber.Ctx) error {
	var req dto.LeakListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	resp, err := h.query.ListCases(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode debe ser open o resolved"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetDetail godoc
// @Summary      Drill-down de un caso
// @Description  Registro completo más el histórico de movimientos de la misma parte.
// @Tags         leaks
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del caso"
// @Success      200  {object}  dto.CaseDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/leaks/{id} [get]
func (h *LeaksHandler) GetDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	detail, err := h.query.GetCaseDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(detail)
}

// Resolve godoc
// @Summary      Cerrar un caso con veredicto
// @Description  Aplica el veredicto terminal sobre un caso abierto. La identidad
//
//	del resolutor se toma del token. Un caso ya cerrado devuelve 409
//	sin modificar nada (exactamente un veredicto gana bajo carrera).
//
// @Tags         leaks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del caso"
// @Param        body  body  dto.ResolveRequest  true  "verdict, note"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/leaks/{id}/resolve [post]
func (h *LeaksHandler) Resolve(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ResolveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	resolver := GetUserName(c)
	if resolver == "" {
		resolver = GetUserID(c)
	}

	err = h.resolve.SubmitVerdict(c.Context(), id, in.Verdict, in.Note, resolver, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidVerdict):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VERDICT", Message: "veredicto inválido o identidad del resolutor vacía"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caso no encontrado"})
		case errors.Is(err, domain.ErrAlreadyResolved):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_RESOLVED", Message: "el caso ya fue resuelto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "caso resuelto"})
}

// Verdicts godoc
// @Summary      Conjunto terminal de veredictos
// @Description  Valores válidos para el selector de resolución.
// @Tags         leaks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/leaks/verdicts [get]
func (h *LeaksHandler) Verdicts(c *fiber.Ctx) error {
	verdicts := resolution.Verdicts()
	out := make([]string, 0, len(verdicts))
	for _, v := range verdicts {
		out = append(out, string(v))
	}
	return c.JSON(fiber.Map{"verdicts": out})
}
