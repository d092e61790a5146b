package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/store"
)

// InventoryHandler maneja el registro y consulta de movimientos (protegido).
type InventoryHandler struct {
	st *store.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(st *store.Store) *InventoryHandler {
	return &InventoryHandler{st: st}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (IN/OUT/ADJUST)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.st.AddMovement(store.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
		case errors.Is(err, domain.ErrNegativeStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: err.Error()})
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN, OUT o ADJUST"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// ListMovements godoc
// @Summary      Listar movimientos (opcionalmente por producto, más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var movements []entity.Movement
	if productID := c.Query("productId"); productID != "" {
		movements = h.st.MovementsForProduct(productID)
	} else {
		all := h.st.Movements()
		movements = make([]entity.Movement, 0, len(all))
		for i := len(all) - 1; i >= 0; i-- {
			movements = append(movements, all[i])
		}
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{Items: items, Total: len(items)})
}

func toMovementResponse(m entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		Date:        m.Date,
		SnapshotQty: m.SnapshotQty,
	}
}
