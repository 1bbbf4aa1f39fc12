package service

import (
	"context"
	"errors"
	"time"

	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/modules/repo"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/docvault-io/docvault/internal/pkg/tokens"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// TokenRevoker marks a token id as revoked until its natural expiry.
// Backed by redis in production.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*TokenOutput, error)
	Logout(ctx context.Context, jti string, expiresAtUnix int64) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type authService struct {
	users    repo.UserRepo
	revoker  TokenRevoker
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users repo.UserRepo, revoker TokenRevoker, secret []byte, tokenTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		revoker:  revoker,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if len(in.Password) < minPasswordLen {
		return nil, apperr.InvalidInput("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenOutput, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email answers exactly like a wrong password.
		if errors.Is(err, apperr.NotFound("")) {
			return nil, apperr.Unauthorized("incorrect email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("incorrect email or password")
	}

	token, err := tokens.Sign(s.secret, u.ID, u.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAtUnix int64) error {
	if s.revoker == nil {
		return nil
	}
	ttl := time.Until(time.Unix(expiresAtUnix, 0))
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	return s.revoker.Revoke(ctx, jti, ttl)
}
