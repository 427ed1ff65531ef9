package service

import (
	"context"
	"strings"

	"github.com/jmontero22c/BRM-Backend/internal/core/auth"
	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
	"github.com/jmontero22c/BRM-Backend/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

type AuthResult struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, in *validate.RegisterInput) (*AuthResult, error) {
	if msg := validate.Register(in); msg != "" {
		return nil, domain.Validation(msg)
	}
	email := strings.TrimSpace(in.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Internal("db error", err)
	}
	if existing != nil {
		return nil, domain.Conflict("El email ya está registrado")
	}

	role := domain.RoleCustomer
	if in.Role != "" {
		role = domain.Role(in.Role)
	}
	u := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 并发兜底：唯一冲突 → 与先查后插同样报已注册
		if isDupKey(err) {
			return nil, domain.Conflict("El email ya está registrado")
		}
		return nil, domain.Internal("create user failed", err)
	}

	tok, err := s.jwter.Issue(u.ID, string(u.Role), "")
	if err != nil || tok == "" {
		return nil, domain.Internal("issue token failed", err)
	}
	return &AuthResult{Message: "Usuario registrado exitosamente", Token: tok, User: u}, nil
}

func (s *AuthService) Login(ctx context.Context, in *validate.LoginInput) (*AuthResult, error) {
	if msg := validate.Login(in); msg != "" {
		return nil, domain.Validation(msg)
	}

	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, domain.Internal("db error", err)
	}
	if u == nil {
		return nil, domain.BadRequest("El correo electrónico no está registrado")
	}
	if !utils.CheckPassword(in.Password, u.PasswordHash) {
		return nil, domain.BadRequest("Contraseña incorrecta")
	}

	tok, err := s.jwter.Issue(u.ID, string(u.Role), u.Email)
	if err != nil || tok == "" {
		return nil, domain.Internal("issue token failed", err)
	}
	return &AuthResult{Message: "Inicio de sesión exitoso", Token: tok, User: u}, nil
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动差异导致漏判
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
