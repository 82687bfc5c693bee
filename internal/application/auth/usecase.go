// Package auth casos de uso de autenticación del Command Center.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
	"github.com/brettsimpson1971-buildai/ride1dashboard/pkg/jwt"
)

// Roles de usuario del dashboard.
const (
	RoleAdmin   = "admin"
	RoleAuditor = "auditor"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
//
// El alta pública siempre crea auditores; el rol admin se asigna por fuera
// del API (nunca desde el request, o cualquiera se daría de alta como admin).
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
		Role:         RoleAuditor,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// Login verifica email/password y emite un JWT con la identidad del revisor
// (el claim name alimenta resolved_by en el flujo de resolución).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(user)
}

func (uc *AuthUseCase) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.FullName, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
