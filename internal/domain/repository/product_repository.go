package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// ProductRepository persists catalog products. Missing rows return
// domainerrors.ErrProductNotFound.
type ProductRepository interface {
	FindPage(ctx context.Context, req entity.PageRequest) ([]*entity.Product, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
