package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sport-stock-api/internal/application/dto"
	"github.com/jhoicas/sport-stock-api/internal/application/stock"
	"github.com/jhoicas/sport-stock-api/internal/domain"
	"github.com/jhoicas/sport-stock-api/pkg/logger"
)

// MovementHandler maneja el registro de movimientos y el historial (protegido).
type MovementHandler struct {
	recorder *stock.RecordMovementUseCase
	ledger   *stock.LedgerUseCase
	log      *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recorder *stock.RecordMovementUseCase, ledger *stock.LedgerUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{recorder: recorder, ledger: ledger, log: log}
}

// Record godoc
// @Summary      Registrar movimiento (préstamo o devolución)
// @Description  Aplica el delta al saldo del material y registra el movimiento en una sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "material_id, user_id, kind (loan|return), quantity > 0"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.recorder.Record(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_id, user_id, kind (loan|return) y quantity > 0 son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		}
		h.log.Error().Err(err).Msg("registrar movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	movementsRecorded.WithLabelValues(out.Movement.Kind).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de movimientos
// @Description  Historial general o filtrado por material, con nombres de material y responsable.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        material_id  query  int  false  "Filtrar por material"
// @Success      200  {array}  dto.MovementWithRefsResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	materialID := int64(c.QueryInt("material_id", 0))
	items, err := h.ledger.List(materialID)
	if err != nil {
		h.log.Error().Err(err).Msg("listar movimientos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(items)
}
