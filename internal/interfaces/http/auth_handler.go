package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acme-dashboard/internal/application/auth"
	"github.com/jhoicas/acme-dashboard/internal/application/dto"
	"github.com/jhoicas/acme-dashboard/internal/application/forms"
	"github.com/jhoicas/acme-dashboard/internal/domain"
)

// SessionCookie nombre de la cookie de sesión.
const SessionCookie = "session"

// AuthHandler maneja login (vía el adaptador de formularios) y registro.
type AuthHandler struct {
	actions *forms.AuthActions
	uc      *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(actions *forms.AuthActions, uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{actions: actions, uc: uc}
}

// Login POST /login — formulario de credenciales. Fallo clasificado devuelve
// 401 con uno de dos mensajes; un fallo de infraestructura no clasificado se
// escala al error boundary.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	token, message, err := h.actions.Authenticate(c.Context(), formData(c, "email", "password"))
	if err != nil {
		return err
	}
	if message != "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH", Message: message})
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Signup POST /signup — registro de usuario.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	user, err := h.uc.Register(c.Context(), c.FormValue("name"), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
