package domain

import "time"

type PortfolioItem struct {
	ItemID        string            `json:"id" dynamodbav:"item_id"`
	Title         string            `json:"title" dynamodbav:"title"`
	Category      string            `json:"category" dynamodbav:"category"`
	Client        string            `json:"client" dynamodbav:"client"`
	Description   string            `json:"description" dynamodbav:"description"`
	ImageURL      string            `json:"image_url,omitempty" dynamodbav:"image_url"`
	Technologies  []string          `json:"technologies" dynamodbav:"technologies"`
	Results       map[string]string `json:"results,omitempty" dynamodbav:"results"`
	Testimonial   string            `json:"testimonial,omitempty" dynamodbav:"testimonial"`
	ClientName    string            `json:"client_name,omitempty" dynamodbav:"client_name"`
	ClientRole    string            `json:"client_role,omitempty" dynamodbav:"client_role"`
	ProjectURL    string            `json:"project_url,omitempty" dynamodbav:"project_url"`
	CompletedDate string            `json:"completed_date,omitempty" dynamodbav:"completed_date"`
	Featured      bool              `json:"featured" dynamodbav:"featured"`
	CreatedAt     time.Time         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" dynamodbav:"updated_at"`
}

type CreatePortfolioItemRequest struct {
	Title         string            `json:"title" validate:"required"`
	Category      string            `json:"category" validate:"required"`
	Client        string            `json:"client" validate:"required"`
	Description   string            `json:"description" validate:"required"`
	Technologies  []string          `json:"technologies"`
	Results       map[string]string `json:"results"`
	Testimonial   string            `json:"testimonial"`
	ClientName    string            `json:"clientName"`
	ClientRole    string            `json:"clientRole"`
	ProjectURL    string            `json:"projectUrl" validate:"omitempty,url"`
	CompletedDate string            `json:"completedDate" validate:"omitempty,datetime=2006-01-02"`
	Featured      bool              `json:"featured"`
}

type UpdatePortfolioItemRequest struct {
	Title         *string            `json:"title"`
	Category      *string            `json:"category"`
	Client        *string            `json:"client"`
	Description   *string            `json:"description"`
	Technologies  *[]string          `json:"technologies"`
	Results       *map[string]string `json:"results"`
	Testimonial   *string            `json:"testimonial"`
	ClientName    *string            `json:"clientName"`
	ClientRole    *string            `json:"clientRole"`
	ProjectURL    *string            `json:"projectUrl" validate:"omitempty,url"`
	CompletedDate *string            `json:"completedDate" validate:"omitempty,datetime=2006-01-02"`
	Featured      *bool              `json:"featured"`
}
