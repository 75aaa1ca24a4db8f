package forms

import (
	"context"
	"errors"

	"github.com/jhoicas/acme-dashboard/internal/domain"
)

// Mensajes del formulario de login. Solo dos: no hay errores por campo en
// credenciales.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgAuthGeneric        = "Something went wrong."
)

// Authenticator capacidad externa de autenticación. Devuelve el token de
// sesión en éxito; los fallos clasificados llegan como errores sentinela
// del dominio y los de infraestructura como cualquier otro error.
type Authenticator interface {
	SignIn(ctx context.Context, provider string, form FormData) (string, error)
}

// AuthActions adaptador de autenticación: caso degenerado del patrón, la
// validación y la "mutación" (establecer sesión) las hace la capacidad.
type AuthActions struct {
	auth Authenticator
}

// NewAuthActions construye el adaptador.
func NewAuthActions(auth Authenticator) *AuthActions {
	return &AuthActions{auth: auth}
}

// Authenticate delega en la capacidad. En éxito devuelve el token de
// sesión y mensaje vacío. Los fallos clasificados se mapean a uno de dos
// mensajes; cualquier error NO clasificado se propaga sin tocar: no es
// trabajo de esta capa esconder fallos de infraestructura detrás de un
// mensaje con pinta de autenticación.
func (a *AuthActions) Authenticate(ctx context.Context, form FormData) (token, message string, err error) {
	token, err = a.auth.SignIn(ctx, "credentials", form)
	if err == nil {
		return token, "", nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "", MsgInvalidCredentials, nil
	case errors.Is(err, domain.ErrAccountDisabled):
		return "", MsgAuthGeneric, nil
	default:
		return "", "", err
	}
}
