package handler

import (
	"log/slog"
	"net/http"
	"time"

	"catalog/internal/delivery/api/response"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/i18n"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const productQueryParam = "product"

const (
	msgProductCreated = "product.successfully_created"
	msgProductUpdated = "product.successfully_updated"
	msgProductDeleted = "product.successfully_deleted"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Messages  *i18n.Messages
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	messages  *i18n.Messages
	logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		messages:  params.Messages,
		logger:    params.Logger,
	}
}

// ProductRequest is the body of create and update.
type ProductRequest struct {
	Code        string   `json:"code" validate:"required,min=4,max=8"`
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description" validate:"max=500"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Code:        r.Code,
		Name:        r.Name,
		Price:       *r.Price,
		Description: r.Description,
	}
}

type ProductResponse struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	EntryBy     uuid.UUID  `json:"entryBy"`
	EntryDate   time.Time  `json:"entryDate"`
	UpdatedBy   *uuid.UUID `json:"updatedBy,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}

func newProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		EntryBy:     p.EntryBy,
		EntryDate:   p.EntryDate,
		UpdatedBy:   p.UpdatedBy,
		UpdatedDate: p.UpdatedDate,
	}
}

// ListProducts handles GET /products/paginated?page=&size=&sort=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := intQueryOrDefault(c, "page", 0)
	if err != nil {
		return err
	}
	size, err := intQueryOrDefault(c, "size", usecase.DefaultPageSize)
	if err != nil {
		return err
	}

	result, err := h.productUC.List(c.Request().Context(), &usecase.ListProductsInput{
		Page: page,
		Size: size,
		Sort: c.QueryParam("sort"),
	})
	if err != nil {
		return errors.WithMessage(err, "list products")
	}

	content := make([]ProductResponse, 0, len(result.Content))
	for _, p := range result.Content {
		content = append(content, newProductResponse(p))
	}

	return response.Success(c, http.StatusOK, entity.Page[ProductResponse]{
		Content:       content,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	})
}

// FindProduct handles GET /products/find?product=
func (h *ProductHandler) FindProduct(c echo.Context) error {
	id, err := int64Query(c, productQueryParam)
	if err != nil {
		return err
	}

	product, err := h.productUC.Find(c.Request().Context(), id)
	if err != nil {
		return errors.WithMessage(err, "find product")
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// CreateProduct handles POST /products/create
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.productUC.Create(c.Request().Context(), actor, req.toInput()); err != nil {
		return errors.WithMessage(err, "create product")
	}

	return h.message(c, msgProductCreated)
}

// UpdateProduct handles PUT /products/update?product=
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	id, err := int64Query(c, productQueryParam)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.productUC.Update(c.Request().Context(), actor, id, req.toInput()); err != nil {
		return errors.WithMessage(err, "update product")
	}

	return h.message(c, msgProductUpdated)
}

// DeleteProduct handles DELETE /products/delete?product=
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := int64Query(c, productQueryParam)
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithMessage(err, "delete product")
	}

	return h.message(c, msgProductDeleted)
}

func (h *ProductHandler) message(c echo.Context, key string) error {
	return response.Message(c, h.messages.Localize(deliverycontext.GetLocale(c), key, nil))
}

// actorID returns the authenticated caller; the access policy guarantees one on write routes.
func actorID(c echo.Context) (uuid.UUID, error) {
	user := deliverycontext.GetIdentity(c)
	if user == nil {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return user.ID, nil
}
