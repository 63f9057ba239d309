package postgres

import (
	"context"
	"strconv"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productSortColumns maps sortable product properties to their columns.
var productSortColumns = map[string]string{
	"id":          "id",
	"code":        "code",
	"name":        "name",
	"price":       "price",
	"entryDate":   "entry_date",
	"updatedDate": "updated_date",
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns the product store backed by the products table.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindPage returns one page ordered by req.Sort with id as a tie-breaker, and the total row count.
func (repo *productRepository) FindPage(ctx context.Context, req entity.PageRequest) ([]*entity.Product, int64, error) {
	column, ok := productSortColumns[req.Sort.Property]
	if !ok {
		return nil, 0, errors.Errorf("unsupported product sort property %q", req.Sort.Property)
	}

	db := repo.db.WithContext(ctx)

	var total int64
	if err := db.Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	var rows []*model.ProductModel
	err := db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: req.Sort.Direction == entity.SortDesc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products, total, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productNotFound(id)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return repo.exists(ctx, "code = ?", code)
}

func (repo *productRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return repo.exists(ctx, "name = ?", name)
}

func (repo *productRepository) exists(ctx context.Context, condition, value string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where(condition, value).Limit(1).Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check product existence")
	}

	return count > 0, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.ID = 0

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return mapProductWriteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select("code", "name", "price", "description", "updated_by", "updated_date").
		Updates(productM)
	if result.Error != nil {
		return mapProductWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return productNotFound(product.ID)
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return productNotFound(id)
	}

	return nil
}

func productNotFound(id int64) error {
	return domainerrors.ErrProductNotFound.WithParam("id", strconv.FormatInt(id, 10))
}

func mapProductWriteError(err error, details string) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case constraintProductsName:
			return domainerrors.ErrProductNameAlreadyExists
		case constraintProductsCode:
			return domainerrors.ErrProductCodeAlreadyExists
		}
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, details+": unknown user reference")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Code:        data.Code,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		EntryBy:     data.EntryBy,
		EntryDate:   data.EntryDate,
		UpdatedBy:   data.UpdatedBy,
		UpdatedDate: data.UpdatedDate,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Code:        data.Code,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		EntryBy:     data.EntryBy,
		EntryDate:   data.EntryDate,
		UpdatedBy:   data.UpdatedBy,
		UpdatedDate: data.UpdatedDate,
	}
}
