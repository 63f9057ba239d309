package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements ProductUsecase with a read-through cache.
// Cache failures are logged and never fail the request.
type productService struct {
	productRepo repository.ProductRepository
	cache       service.ProductCache
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       service.ProductCache
	Logger      *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) (*entity.Page[*entity.Product], error) {
	req, err := parsePageRequest(input)
	if err != nil {
		return nil, err
	}

	if page, found, err := srv.cache.GetPage(ctx, req); err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.Any("error", err))
	} else if found {
		return page, nil
	}

	products, total, err := srv.productRepo.FindPage(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrProductsEmpty
	}

	page := entity.NewPage(products, req, total)
	if err := srv.cache.SetPage(ctx, req, page); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.Any("error", err))
	}

	return page, nil
}

func (srv *productService) Find(ctx context.Context, id int64) (*entity.Product, error) {
	if product, found, err := srv.cache.GetProduct(ctx, id); err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.Int64("productID", id), slog.Any("error", err))
	} else if found {
		return product, nil
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.cache.SetProduct(ctx, product); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.Int64("productID", id), slog.Any("error", err))
	}

	return product, nil
}

func (srv *productService) Create(ctx context.Context, actor uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	exists, err := srv.productRepo.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product code")
	}
	if exists {
		return nil, domainerrors.ErrProductCodeAlreadyExists.WithParam("code", input.Code)
	}

	exists, err = srv.productRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product name")
	}
	if exists {
		return nil, domainerrors.ErrProductNameAlreadyExists.WithParam("name", input.Name)
	}

	product := &entity.Product{
		Code:        input.Code,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	}
	product.MarkCreated(actor, srv.now())

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("code", product.Code))
	srv.evict(ctx)

	return product, nil
}

func (srv *productService) Update(ctx context.Context, actor uuid.UUID, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product for update")
	}

	product.Code = input.Code
	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	product.MarkUpdated(actor, srv.now())

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", id))
	srv.evict(ctx)

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))
	srv.evict(ctx)

	return nil
}

func (srv *productService) evict(ctx context.Context) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Error("Failed to evict product cache", slog.Any("error", err))
	}
}

// parsePageRequest validates the raw query and caps the page size.
func parsePageRequest(input *usecase.ListProductsInput) (entity.PageRequest, error) {
	if input.Page < 0 || input.Size <= 0 {
		return entity.PageRequest{}, domainerrors.ErrInvalidPaginationArguments
	}

	sort := input.Sort
	if strings.TrimSpace(sort) == "" {
		sort = usecase.DefaultSort
	}

	property, rawDirection, found := strings.Cut(sort, ",")
	if !found || strings.Contains(rawDirection, ",") {
		return entity.PageRequest{}, domainerrors.ErrInvalidSortDirection
	}

	direction, ok := entity.ParseSortDirection(rawDirection)
	if !ok {
		return entity.PageRequest{}, domainerrors.ErrInvalidSortDirection
	}

	property = strings.TrimSpace(property)
	if !slices.Contains(entity.ProductSortProperties, property) {
		return entity.PageRequest{}, domainerrors.ErrInvalidSortDirection
	}

	return entity.PageRequest{
		Page: input.Page,
		Size: min(input.Size, usecase.MaxPageSize),
		Sort: entity.Sort{Property: property, Direction: direction},
	}, nil
}
