package impl

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	service     *productService
	productRepo *mockRepo.MockProductRepository
	cache       *mockService.MockProductCache
	now         time.Time
}

func createTestProductService(t *testing.T) *productFixture {
	t.Helper()

	fx := &productFixture{
		productRepo: mockRepo.NewMockProductRepository(t),
		cache:       mockService.NewMockProductCache(t),
		now:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	fx.service = NewProductService(ProductServiceParams{
		ProductRepo: fx.productRepo,
		Cache:       fx.cache,
		Logger:      discardLogger(),
	}).(*productService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.ListProductsInput
		want    entity.PageRequest
		wantErr error
	}{
		{
			name:  "default sort",
			input: usecase.ListProductsInput{Page: 0, Size: 10},
			want:  entity.PageRequest{Page: 0, Size: 10, Sort: entity.Sort{Property: "name", Direction: entity.SortAsc}},
		},
		{
			name:  "size capped",
			input: usecase.ListProductsInput{Page: 2, Size: 500, Sort: "price,DESC"},
			want:  entity.PageRequest{Page: 2, Size: 60, Sort: entity.Sort{Property: "price", Direction: entity.SortDesc}},
		},
		{name: "negative page", input: usecase.ListProductsInput{Page: -1, Size: 10}, wantErr: domainerrors.ErrInvalidPaginationArguments},
		{name: "negative size", input: usecase.ListProductsInput{Page: 0, Size: -5}, wantErr: domainerrors.ErrInvalidPaginationArguments},
		{name: "zero size", input: usecase.ListProductsInput{Page: 0, Size: 0}, wantErr: domainerrors.ErrInvalidPaginationArguments},
		{name: "missing direction", input: usecase.ListProductsInput{Size: 10, Sort: "name"}, wantErr: domainerrors.ErrInvalidSortDirection},
		{name: "bad direction", input: usecase.ListProductsInput{Size: 10, Sort: "name,up"}, wantErr: domainerrors.ErrInvalidSortDirection},
		{name: "extra segment", input: usecase.ListProductsInput{Size: 10, Sort: "name,asc,x"}, wantErr: domainerrors.ErrInvalidSortDirection},
		{name: "unknown property", input: usecase.ListProductsInput{Size: 10, Sort: "password,asc"}, wantErr: domainerrors.ErrInvalidSortDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePageRequest(&tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductService_List_CacheMissFillsCache(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	req := entity.PageRequest{Page: 0, Size: 2, Sort: entity.Sort{Property: "name", Direction: entity.SortAsc}}
	products := []*entity.Product{{ID: 1, Name: "Apple"}, {ID: 2, Name: "Banana"}}

	fx.cache.EXPECT().GetPage(ctx, req).Return(nil, false, nil)
	fx.productRepo.EXPECT().FindPage(ctx, req).Return(products, int64(5), nil)
	fx.cache.EXPECT().SetPage(ctx, req, mock.Anything).Return(nil)

	page, err := fx.service.List(ctx, &usecase.ListProductsInput{Page: 0, Size: 2, Sort: "name,asc"})

	require.NoError(t, err)
	assert.Equal(t, products, page.Content)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
}

func TestProductService_List_CacheHit(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	req := entity.PageRequest{Page: 0, Size: 10, Sort: entity.Sort{Property: "name", Direction: entity.SortAsc}}
	cached := entity.NewPage([]*entity.Product{{ID: 1}}, req, 1)

	fx.cache.EXPECT().GetPage(ctx, req).Return(cached, true, nil)

	page, err := fx.service.List(ctx, &usecase.ListProductsInput{Size: 10})

	require.NoError(t, err)
	assert.Same(t, cached, page)
	fx.productRepo.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything)
}

func TestProductService_List_CacheErrorFallsThrough(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetPage(ctx, mock.Anything).Return(nil, false, errors.New("redis down"))
	fx.productRepo.EXPECT().FindPage(ctx, mock.Anything).Return([]*entity.Product{{ID: 1}}, int64(1), nil)
	fx.cache.EXPECT().SetPage(ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	page, err := fx.service.List(ctx, &usecase.ListProductsInput{Size: 10})

	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
}

func TestProductService_List_Empty(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetPage(ctx, mock.Anything).Return(nil, false, nil)
	fx.productRepo.EXPECT().FindPage(ctx, mock.Anything).Return(nil, int64(0), nil)

	_, err := fx.service.List(ctx, &usecase.ListProductsInput{Page: 3, Size: 10})

	assert.ErrorIs(t, err, domainerrors.ErrProductsEmpty)
}

func TestProductService_Find(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 9, Code: "AB12"}

	fx.cache.EXPECT().GetProduct(ctx, int64(9)).Return(nil, false, nil)
	fx.productRepo.EXPECT().FindByID(ctx, int64(9)).Return(product, nil)
	fx.cache.EXPECT().SetProduct(ctx, product).Return(nil)

	got, err := fx.service.Find(ctx, 9)

	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductService_Find_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetProduct(ctx, int64(9)).Return(nil, false, nil)
	fx.productRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, domainerrors.ErrProductNotFound.WithParam("id", "9"))

	_, err := fx.service.Find(ctx, 9)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Create(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	actor := uuid.New()

	fx.productRepo.EXPECT().ExistsByCode(ctx, "AB12").Return(false, nil)
	fx.productRepo.EXPECT().ExistsByName(ctx, "Apple").Return(false, nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, p *entity.Product) { p.ID = 77 }).
		Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)

	product, err := fx.service.Create(ctx, actor, &usecase.ProductInput{Code: "AB12", Name: "Apple", Price: 1.25})

	require.NoError(t, err)
	assert.Equal(t, int64(77), product.ID)
	assert.Equal(t, actor, product.EntryBy)
	assert.Equal(t, fx.now, product.EntryDate)
	assert.Nil(t, product.UpdatedBy)
}

func TestProductService_Create_Duplicates(t *testing.T) {
	t.Run("code", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().ExistsByCode(ctx, "AB12").Return(true, nil)

		_, err := fx.service.Create(ctx, uuid.New(), &usecase.ProductInput{Code: "AB12", Name: "Apple"})

		assert.ErrorIs(t, err, domainerrors.ErrProductCodeAlreadyExists)
	})

	t.Run("name", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().ExistsByCode(ctx, "AB12").Return(false, nil)
		fx.productRepo.EXPECT().ExistsByName(ctx, "Apple").Return(true, nil)

		_, err := fx.service.Create(ctx, uuid.New(), &usecase.ProductInput{Code: "AB12", Name: "Apple"})

		assert.ErrorIs(t, err, domainerrors.ErrProductNameAlreadyExists)
	})
}

func TestProductService_Update(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	actor := uuid.New()
	existing := &entity.Product{ID: 5, Code: "OLD1", Name: "Old", EntryBy: uuid.New()}

	fx.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)

	product, err := fx.service.Update(ctx, actor, 5, &usecase.ProductInput{Code: "NEW1", Name: "New", Price: 3, Description: "d"})

	require.NoError(t, err)
	assert.Equal(t, "NEW1", product.Code)
	assert.Equal(t, "New", product.Name)
	require.NotNil(t, product.UpdatedBy)
	assert.Equal(t, actor, *product.UpdatedBy)
	assert.Equal(t, fx.now, *product.UpdatedDate)
}

func TestProductService_Update_NotFoundSkipsEviction(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, domainerrors.ErrProductNotFound.WithParam("id", "5"))

	_, err := fx.service.Update(ctx, uuid.New(), 5, &usecase.ProductInput{Code: "NEW1", Name: "New"})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestProductService_Delete(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

	assert.NoError(t, fx.service.Delete(ctx, 5))
}
