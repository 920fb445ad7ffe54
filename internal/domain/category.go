package domain

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Images    []Image   `json:"images"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name   string        `json:"name" validate:"required"`
	Images []UploadImage `json:"images" validate:"dive"`
}

type UpdateCategoryRequest struct {
	ID   string `json:"-"`
	Name string `json:"name" validate:"required"`
}
