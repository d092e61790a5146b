package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/store"
	"github.com/jhoicas/inventario-lite/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens en el login.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja login y logout sobre la sesión del Store.
type AuthHandler struct {
	st     *store.Store
	jwtCfg JWTConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(st *store.Store, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{st: st, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión (demo: cualquier email/password no vacío)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.st.Login(in.Email, in.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, user.Email, user.Name, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{Email: user.Email, Name: user.Name},
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.st.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}
