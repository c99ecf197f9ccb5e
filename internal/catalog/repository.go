package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
	"github.com/chocomarket/chocomarket-backend/pkg/pagination"
)

// effectivePriceExpr is the SQL form of the discount-validity guard: the
// discounted amount counts only when strictly between zero and the base price.
const effectivePriceExpr = "COALESCE(CASE WHEN discount_amd > 0 AND discount_amd < price_amd THEN discount_amd END, price_amd)"

// Repository wires together catalog persistence for products, brands and
// collections.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads the product with its brand preloaded.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Brand").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}
	return &product, nil
}

// FindBySKU loads the product by its catalog SKU.
func (r *Repository) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Brand").First(&product, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new product row.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct persists the full product row.
func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by ID.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

// ReplaceProductCollections replaces the collection memberships for a product.
func (r *Repository) ReplaceProductCollections(ctx context.Context, product *models.Product, collections []models.Collection) error {
	return r.db.WithContext(ctx).Model(product).Association("Collections").Replace(collections)
}

// ListActive returns active products ordered newest first, capped at limit.
// The search path scans these rows in memory.
func (r *Repository) ListActive(ctx context.Context, limit int) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).
		Error
	return rows, err
}

// ListProducts runs the filtered browse query. Cursor pagination applies
// only under the newest sort; the price sorts return a single page because
// the cursor is keyed on creation time.
func (r *Repository) ListProducts(ctx context.Context, input ListProductsInput) ([]models.Product, string, error) {
	pageSize := pagination.NormalizeLimit(input.Pagination.Limit)
	limitWithBuffer := pageSize + 1

	cursor, err := pagination.ParseCursor(input.Pagination.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	qb := r.db.WithContext(ctx).Model(&models.Product{}).Preload("Brand")

	if !input.IncludeInactive {
		qb = qb.Where("is_active = ?", true)
	}

	filter := input.Filters
	if filter.BrandSlug != nil {
		qb = qb.Where("brand_id IN (SELECT id FROM brands WHERE slug = ?)", *filter.BrandSlug)
	}
	if filter.CollectionSlug != nil {
		qb = qb.Where("id IN (SELECT cp.product_id FROM collection_products cp JOIN collections c ON c.id = cp.collection_id WHERE c.slug = ?)", *filter.CollectionSlug)
	}
	if filter.Discounted != nil {
		discountedClause := "discount_amd > 0 AND discount_amd < price_amd"
		if *filter.Discounted {
			qb = qb.Where(discountedClause)
		} else {
			qb = qb.Where("NOT COALESCE(" + discountedClause + ", false)")
		}
	}
	if filter.Featured != nil {
		qb = qb.Where("is_featured = ?", *filter.Featured)
	}
	if filter.PriceMinAMD != nil {
		qb = qb.Where(effectivePriceExpr+" >= ?", *filter.PriceMinAMD)
	}
	if filter.PriceMaxAMD != nil {
		qb = qb.Where(effectivePriceExpr+" <= ?", *filter.PriceMaxAMD)
	}
	if search := strings.TrimSpace(filter.Query); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(name_en) LIKE ? OR LOWER(name_hy) LIKE ? OR LOWER(name_ru) LIKE ? OR LOWER(sku) LIKE ?)",
			pattern, pattern, pattern, pattern)
	}

	switch input.Sort {
	case enums.ProductSortPriceAsc:
		qb = qb.Order(effectivePriceExpr + " ASC").Order("id ASC").Limit(pageSize)
	case enums.ProductSortPriceDesc:
		qb = qb.Order(effectivePriceExpr + " DESC").Order("id ASC").Limit(pageSize)
	default:
		if cursor != nil {
			qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
		}
		qb = qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer)
	}

	var rows []models.Product
	if err := qb.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if input.Sort != enums.ProductSortPriceAsc && input.Sort != enums.ProductSortPriceDesc && len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, nextCursor, nil
}

// ListBrands returns all brands ordered by slug.
func (r *Repository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var rows []models.Brand
	err := r.db.WithContext(ctx).Order("slug ASC").Find(&rows).Error
	return rows, err
}

// FindBrandBySlug loads one brand.
func (r *Repository) FindBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
		}
		return nil, err
	}
	return &brand, nil
}

// CreateBrand inserts a new brand row.
func (r *Repository) CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

// UpdateBrand persists the full brand row.
func (r *Repository) UpdateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	if err := r.db.WithContext(ctx).Save(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrand removes a brand; product rows keep a null brand reference.
func (r *Repository) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Brand{}).Error
}

// ListCollections returns all collections ordered by slug.
func (r *Repository) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var rows []models.Collection
	err := r.db.WithContext(ctx).Order("slug ASC").Find(&rows).Error
	return rows, err
}

// FindCollectionBySlug loads one collection with its products.
func (r *Repository) FindCollectionBySlug(ctx context.Context, slug string) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("created_at DESC")
		}).
		First(&collection, "slug = ?", slug).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "collection not found")
		}
		return nil, err
	}
	return &collection, nil
}

// CreateCollection inserts a new collection row.
func (r *Repository) CreateCollection(ctx context.Context, collection *models.Collection) (*models.Collection, error) {
	if err := r.db.WithContext(ctx).Create(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

// UpdateCollection persists the full collection row.
func (r *Repository) UpdateCollection(ctx context.Context, collection *models.Collection) (*models.Collection, error) {
	if err := r.db.WithContext(ctx).Save(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

// DeleteCollection removes a collection and its membership rows.
func (r *Repository) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Collection{}).Error
}
