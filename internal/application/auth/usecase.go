package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/acme-dashboard/internal/application/forms"
	"github.com/jhoicas/acme-dashboard/internal/domain"
	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
	"github.com/jhoicas/acme-dashboard/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login por
// credenciales. Implementa forms.Authenticator.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

var _ forms.Authenticator = (*AuthUseCase)(nil)

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve domain.ErrDuplicate si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifica email/password y genera el token de sesión. Los fallos
// de credenciales se clasifican con domain.ErrInvalidCredentials (usuario
// inexistente o password incorrecto, indistinguibles para el caller);
// una cuenta inactiva se clasifica con domain.ErrAccountDisabled. Un fallo
// del repo o de la firma del token se propaga sin clasificar.
func (uc *AuthUseCase) SignIn(ctx context.Context, provider string, form forms.FormData) (string, error) {
	if provider != "credentials" {
		return "", fmt.Errorf("proveedor de autenticación no soportado: %q", provider)
	}
	user, err := uc.userRepo.FindByEmail(ctx, form.Get("email"))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Get("password"))); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	if user.Status != "active" {
		return "", domain.ErrAccountDisabled
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", err
	}
	return token, nil
}
