package user

import (
	"context"
	"fmt"

	"github.com/zenbourg/agency-api/internal/domain"
)

const defaultPageSize = 50

// Page is one page of the user directory.
type Page struct {
	Users      []domain.User
	NextCursor string
}

type Service interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// List pages through the directory for the admin console.
	List(ctx context.Context, limit int32, cursor string) (*Page, error)
	UpdateRole(ctx context.Context, email, role string) (*domain.User, error)
}

type userStore interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, email string, updates map[string]interface{}) error
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.User, string, error)
}

type service struct {
	repo userStore
}

type ServiceDeps struct {
	Repo userStore
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.Repo}
}

func (s *service) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *service) List(ctx context.Context, limit int32, cursor string) (*Page, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	users, next, err := s.repo.ScanPage(ctx, limit, cursor)
	if err != nil {
		return nil, err
	}
	return &Page{Users: users, NextCursor: next}, nil
}

func (s *service) UpdateRole(ctx context.Context, email, role string) (*domain.User, error) {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("unknown role %q: %w", role, domain.ErrBadRequest)
	}
	if _, err := s.repo.GetByEmail(ctx, email); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, email, map[string]interface{}{"role": role}); err != nil {
		return nil, err
	}
	return s.repo.GetByEmail(ctx, email)
}
