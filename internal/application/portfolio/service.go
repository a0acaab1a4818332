package portfolio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/pkg/id"
)

type Service interface {
	List(ctx context.Context, featuredOnly bool) ([]domain.PortfolioItem, error)
	Get(ctx context.Context, itemID string) (*domain.PortfolioItem, error)
	Create(ctx context.Context, req domain.CreatePortfolioItemRequest) (*domain.PortfolioItem, error)
	Update(ctx context.Context, itemID string, req domain.UpdatePortfolioItemRequest) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, itemID string) error
	// UploadImage stores a case-study image and attaches its URL to the item.
	UploadImage(ctx context.Context, itemID string, r io.Reader, contentType string) (*domain.PortfolioItem, error)
}

type portfolioStore interface {
	Put(ctx context.Context, item *domain.PortfolioItem) error
	Get(ctx context.Context, itemID string) (*domain.PortfolioItem, error)
	Scan(ctx context.Context) ([]domain.PortfolioItem, error)
	Update(ctx context.Context, itemID string, updates map[string]interface{}) error
	Delete(ctx context.Context, itemID string) error
}

type imageStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	repo   portfolioStore
	images imageStore
}

type ServiceDeps struct {
	Repo   portfolioStore
	Images imageStore
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.Repo, images: deps.Images}
}

func (s *service) List(ctx context.Context, featuredOnly bool) ([]domain.PortfolioItem, error) {
	items, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if !featuredOnly {
		return items, nil
	}
	featured := make([]domain.PortfolioItem, 0, len(items))
	for _, item := range items {
		if item.Featured {
			featured = append(featured, item)
		}
	}
	return featured, nil
}

func (s *service) Get(ctx context.Context, itemID string) (*domain.PortfolioItem, error) {
	return s.repo.Get(ctx, itemID)
}

func (s *service) Create(ctx context.Context, req domain.CreatePortfolioItemRequest) (*domain.PortfolioItem, error) {
	now := time.Now().UTC()
	item := &domain.PortfolioItem{
		ItemID:        id.New(),
		Title:         req.Title,
		Category:      req.Category,
		Client:        req.Client,
		Description:   req.Description,
		Technologies:  req.Technologies,
		Results:       req.Results,
		Testimonial:   req.Testimonial,
		ClientName:    req.ClientName,
		ClientRole:    req.ClientRole,
		ProjectURL:    req.ProjectURL,
		CompletedDate: req.CompletedDate,
		Featured:      req.Featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Put(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Update(ctx context.Context, itemID string, req domain.UpdatePortfolioItemRequest) (*domain.PortfolioItem, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Client != nil {
		updates["client"] = *req.Client
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Technologies != nil {
		updates["technologies"] = *req.Technologies
	}
	if req.Results != nil {
		updates["results"] = *req.Results
	}
	if req.Testimonial != nil {
		updates["testimonial"] = *req.Testimonial
	}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientRole != nil {
		updates["client_role"] = *req.ClientRole
	}
	if req.ProjectURL != nil {
		updates["project_url"] = *req.ProjectURL
	}
	if req.CompletedDate != nil {
		updates["completed_date"] = *req.CompletedDate
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, itemID)
	}
	if err := s.repo.Update(ctx, itemID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, itemID)
}

func (s *service) Delete(ctx context.Context, itemID string) error {
	if _, err := s.repo.Get(ctx, itemID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, itemID)
}

func (s *service) UploadImage(ctx context.Context, itemID string, r io.Reader, contentType string) (*domain.PortfolioItem, error) {
	if _, err := s.repo.Get(ctx, itemID); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("portfolio/%s/%s", itemID, id.New())
	url, err := s.images.Upload(ctx, key, r, contentType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, itemID, map[string]interface{}{"image_url": url}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, itemID)
}
