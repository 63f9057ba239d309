package handler

import (
	"net/http"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	t.Helper()
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{
		ProductUC: productUC,
		Messages:  newTestMessages(t),
		Logger:    testLogger(),
	}), productUC
}

func TestProductHandler_ListProducts(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantInput *usecase.ListProductsInput
		wantErr   error
	}{
		{
			name:      "defaults",
			target:    "/products/paginated",
			wantInput: &usecase.ListProductsInput{Page: 0, Size: usecase.DefaultPageSize},
		},
		{
			name:      "explicit paging",
			target:    "/products/paginated?page=2&size=5&sort=price,desc",
			wantInput: &usecase.ListProductsInput{Page: 2, Size: 5, Sort: "price,desc"},
		},
		{
			name:    "non numeric size",
			target:  "/products/paginated?size=ten",
			wantErr: domainerrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, productUC := newTestProductHandler(t)
			if tt.wantInput != nil {
				page := entity.NewPage([]*entity.Product{{ID: 3, Code: "LAMP1", Name: "Lamp", Price: 9.5}},
					entity.PageRequest{Page: tt.wantInput.Page, Size: tt.wantInput.Size}, 1)
				productUC.EXPECT().List(mock.Anything, tt.wantInput).Return(page, nil)
			}
			c, rec := newTestContext(http.MethodGet, tt.target, "")

			err := h.ListProducts(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"LAMP1"`)
			assert.Contains(t, rec.Body.String(), `"totalElements":1`)
		})
	}
}

func TestProductHandler_FindProduct(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	productUC.EXPECT().Find(mock.Anything, int64(42)).
		Return(nil, domainerrors.ErrProductNotFound.WithParam("id", "42"))

	c, _ := newTestContext(http.MethodGet, "/products/find?product=42", "")

	assert.ErrorIs(t, h.FindProduct(c), domainerrors.ErrProductNotFound)
}

func TestProductHandler_FindProduct_BadID(t *testing.T) {
	h, _ := newTestProductHandler(t)

	for _, target := range []string{"/products/find", "/products/find?product=abc"} {
		c, _ := newTestContext(http.MethodGet, target, "")
		assert.ErrorIs(t, h.FindProduct(c), domainerrors.ErrValidation, target)
	}
}

func TestProductHandler_CreateProduct(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Username: "admin", Role: entity.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().Create(mock.Anything, admin.ID, &usecase.ProductInput{
			Code: "AB12", Name: "Lamp", Price: 0, Description: "",
		}).Return(&entity.Product{ID: 1}, nil)

		c, rec := newTestContext(http.MethodPost, "/products/create", `{"code":"AB12","name":"Lamp","price":0}`)
		deliverycontext.SetIdentity(c, admin)

		require.NoError(t, h.CreateProduct(c))
		assert.Contains(t, rec.Body.String(), "Product created successfully")
	})

	t.Run("missing price and short code", func(t *testing.T) {
		h, _ := newTestProductHandler(t)
		c, _ := newTestContext(http.MethodPost, "/products/create", `{"code":"A","name":"Lamp"}`)
		deliverycontext.SetIdentity(c, admin)

		assert.ErrorIs(t, h.CreateProduct(c), domainerrors.ErrValidation)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := newTestProductHandler(t)
		c, _ := newTestContext(http.MethodPost, "/products/create", `{"code":"AB12","name":"Lamp","price":1}`)

		assert.ErrorIs(t, h.CreateProduct(c), domainerrors.ErrUnauthorized)
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Username: "admin", Role: entity.RoleAdmin}
	h, productUC := newTestProductHandler(t)
	productUC.EXPECT().Update(mock.Anything, admin.ID, int64(5), mock.Anything).
		Return(nil, domainerrors.ErrProductCodeAlreadyExists)

	c, _ := newTestContext(http.MethodPut, "/products/update?product=5", `{"code":"AB12","name":"Lamp","price":3}`)
	deliverycontext.SetIdentity(c, admin)

	assert.ErrorIs(t, h.UpdateProduct(c), domainerrors.ErrProductCodeAlreadyExists)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	productUC.EXPECT().Delete(mock.Anything, int64(5)).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/products/delete?product=5", "")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted successfully")
}
