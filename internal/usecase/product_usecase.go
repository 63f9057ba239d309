package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 60
	DefaultSort     = "name,asc"
)

// ListProductsInput is the raw paging query: sort is "<property>,<asc|desc>".
type ListProductsInput struct {
	Page int
	Size int
	Sort string
}

// ProductInput holds the editable product fields.
type ProductInput struct {
	Code        string
	Name        string
	Price       float64
	Description string
}

// ProductUsecase defines catalog reads for everyone and writes for administrators.
type ProductUsecase interface {
	List(ctx context.Context, input *ListProductsInput) (*entity.Page[*entity.Product], error)
	Find(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, actor uuid.UUID, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, actor uuid.UUID, id int64, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
