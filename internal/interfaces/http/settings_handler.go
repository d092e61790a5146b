package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/store"
)

// SettingsHandler maneja configuración global y tema (protegido).
type SettingsHandler struct {
	st *store.Store
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{st: st}
}

// Get godoc
// @Summary      Obtener configuración
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings := h.st.Settings()
	return c.JSON(dto.SettingsResponse{
		CompanyName: settings.CompanyName,
		Currency:    settings.Currency,
	})
}

// Update godoc
// @Summary      Actualizar configuración (merge superficial)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	settings, err := h.st.UpdateSettings(store.SettingsUpdate{
		CompanyName: in.CompanyName,
		Currency:    in.Currency,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SettingsResponse{
		CompanyName: settings.CompanyName,
		Currency:    settings.Currency,
	})
}

// ToggleTheme godoc
// @Summary      Alternar tema claro/oscuro
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/theme/toggle [post]
func (h *SettingsHandler) ToggleTheme(c *fiber.Ctx) error {
	theme, err := h.st.ToggleTheme()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ThemeResponse{Theme: theme})
}
