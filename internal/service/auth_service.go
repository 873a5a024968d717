package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/auth"
	"storefront-backend/internal/model"
)

// UserRepository is the credential store as seen by the authentication
// workflow.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordDigest string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type AuthService struct {
	users  UserRepository
	issuer *auth.Issuer
}

func NewAuthService(users UserRepository, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Register creates an account and returns the new id plus an access token.
// Email uniqueness is enforced by the store, not by a prior read; a duplicate
// surfaces as ErrConflict even under concurrent registration.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (int64, string, error) {
	if name == "" || email == "" || password == "" {
		return 0, "", fmt.Errorf("%w: name, email and password are required", apperr.ErrValidation)
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return 0, "", err
		}
		return 0, "", fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	id, err := s.users.Create(ctx, name, email, digest)
	if err != nil {
		return 0, "", err
	}

	token, err := s.issuer.Issue(id)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return id, token, nil
}

// Login verifies credentials and returns the user plus an access token. An
// unknown email and a wrong password produce the identical error; callers
// cannot tell which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.ErrAuthentication
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.Password) {
		return nil, "", apperr.ErrAuthentication
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return user, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user id", apperr.ErrValidation)
	}
	return s.users.GetByID(ctx, id)
}
