package service

import (
	"context"

	"catalog/internal/domain/entity"
)

// ProductCache is a read-through cache in front of the product store.
// A miss is reported as (nil, false, nil); implementations never fail reads
// for cache-only reasons the caller can recover from by hitting the store.
type ProductCache interface {
	GetPage(ctx context.Context, req entity.PageRequest) (*entity.Page[*entity.Product], bool, error)
	SetPage(ctx context.Context, req entity.PageRequest, page *entity.Page[*entity.Product]) error

	GetProduct(ctx context.Context, id int64) (*entity.Product, bool, error)
	SetProduct(ctx context.Context, product *entity.Product) error

	// Invalidate evicts every cached product entry.
	Invalidate(ctx context.Context) error
}
