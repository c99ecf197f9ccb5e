package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/chocomarket/chocomarket-backend/pkg/db"
	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
)

// Service exposes the catalog read path and the admin mutation surface.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	GetProductBySKU(ctx context.Context, sku string) (*ProductDTO, error)
	ListBrands(ctx context.Context) ([]BrandDTO, error)
	GetBrand(ctx context.Context, slug string) (*BrandDTO, error)
	ListCollections(ctx context.Context) ([]CollectionDTO, error)
	GetCollection(ctx context.Context, slug string) (*CollectionDTO, error)

	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CreateBrand(ctx context.Context, input BrandInput) (*BrandDTO, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, input BrandInput) (*BrandDTO, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
	CreateCollection(ctx context.Context, input CollectionInput) (*CollectionDTO, error)
	UpdateCollection(ctx context.Context, id uuid.UUID, input CollectionInput) (*CollectionDTO, error)
	DeleteCollection(ctx context.Context, id uuid.UUID) error
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	SKU           string
	NameEN        string
	NameHY        string
	NameRU        string
	DescriptionEN *string
	DescriptionHY *string
	DescriptionRU *string
	BrandID       *uuid.UUID
	Unit          enums.ProductUnit
	PriceAMD      int
	DiscountAMD   *int
	Weight        *string
	Status        *string
	ReadyAfter    *string
	Ingredients   []string
	ImageURL      *string
	IsActive      bool
	IsFeatured    bool
	CollectionIDs []uuid.UUID
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	SKU           *string
	NameEN        *string
	NameHY        *string
	NameRU        *string
	DescriptionEN *string
	DescriptionHY *string
	DescriptionRU *string
	BrandID       *uuid.UUID
	Unit          *enums.ProductUnit
	PriceAMD      *int
	DiscountAMD   *int
	Weight        *string
	Status        *string
	ReadyAfter    *string
	Ingredients   *[]string
	ImageURL      *string
	IsActive      *bool
	IsFeatured    *bool
	CollectionIDs *[]uuid.UUID
}

// BrandInput holds the payload to create or replace a brand.
type BrandInput struct {
	Slug    string
	NameEN  string
	NameHY  string
	NameRU  string
	LogoURL *string
}

// CollectionInput holds the payload to create or replace a collection.
type CollectionInput struct {
	Slug     string
	NameEN   string
	NameHY   string
	NameRU   string
	ImageURL *string
}

// service implements the catalog service.
type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// ListProducts runs the filtered browse query and maps rows to DTOs.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error) {
	rows, nextCursor, err := s.repo.ListProducts(ctx, input)
	if err != nil {
		return nil, err
	}
	result := &ProductListResult{Products: make([]ProductDTO, 0, len(rows)), NextCursor: nextCursor}
	for i := range rows {
		result.Products = append(result.Products, *NewProductDTO(&rows[i]))
	}
	return result, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

func (s *service) GetProductBySKU(ctx context.Context, sku string) (*ProductDTO, error) {
	product, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return NewProductDTO(product), nil
}

func (s *service) ListBrands(ctx context.Context) ([]BrandDTO, error) {
	rows, err := s.repo.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BrandDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewBrandDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) GetBrand(ctx context.Context, slug string) (*BrandDTO, error) {
	brand, err := s.repo.FindBrandBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return NewBrandDTO(brand), nil
}

func (s *service) ListCollections(ctx context.Context) ([]CollectionDTO, error) {
	rows, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CollectionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCollectionDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) GetCollection(ctx context.Context, slug string) (*CollectionDTO, error) {
	collection, err := s.repo.FindCollectionBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return NewCollectionDTO(collection), nil
}

// CreateProduct inserts the product and its collection memberships in one
// transaction. The discount value is stored as given; the validity guard
// lives on the read path so an out-of-range discount degrades to full price
// instead of failing the write.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := validateProductCore(input.SKU, input.NameEN, input.PriceAMD, input.Unit); err != nil {
		return nil, err
	}

	product := &models.Product{
		SKU:           strings.TrimSpace(input.SKU),
		NameEN:        input.NameEN,
		NameHY:        input.NameHY,
		NameRU:        input.NameRU,
		DescriptionEN: input.DescriptionEN,
		DescriptionHY: input.DescriptionHY,
		DescriptionRU: input.DescriptionRU,
		BrandID:       input.BrandID,
		Unit:          input.Unit,
		PriceAMD:      input.PriceAMD,
		DiscountAMD:   input.DiscountAMD,
		Weight:        input.Weight,
		Status:        input.Status,
		ReadyAfter:    input.ReadyAfter,
		Ingredients:   pq.StringArray(input.Ingredients),
		ImageURL:      input.ImageURL,
		IsActive:      input.IsActive,
		IsFeatured:    input.IsFeatured,
	}

	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateProduct(ctx, product); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "sku already exists")
			}
			return err
		}
		if len(input.CollectionIDs) > 0 {
			collections, err := loadCollections(ctx, tx, input.CollectionIDs)
			if err != nil {
				return err
			}
			return repo.ReplaceProductCollections(ctx, product, collections)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, product.ID)
}

// UpdateProduct applies the provided fields and replaces collection
// memberships when given.
func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProductUpdate(product, input)
	if err := validateProductCore(product.SKU, product.NameEN, product.PriceAMD, product.Unit); err != nil {
		return nil, err
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.UpdateProduct(ctx, product); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "sku already exists")
			}
			return err
		}
		if input.CollectionIDs != nil {
			collections, err := loadCollections(ctx, tx, *input.CollectionIDs)
			if err != nil {
				return err
			}
			return repo.ReplaceProductCollections(ctx, product, collections)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, product.ID)
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteProduct(ctx, id)
}

func (s *service) CreateBrand(ctx context.Context, input BrandInput) (*BrandDTO, error) {
	if err := validateSlugged(input.Slug, input.NameEN); err != nil {
		return nil, err
	}
	brand := &models.Brand{
		Slug:    strings.TrimSpace(input.Slug),
		NameEN:  input.NameEN,
		NameHY:  input.NameHY,
		NameRU:  input.NameRU,
		LogoURL: input.LogoURL,
	}
	if _, err := s.repo.CreateBrand(ctx, brand); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "brand slug already exists")
		}
		return nil, err
	}
	return NewBrandDTO(brand), nil
}

func (s *service) UpdateBrand(ctx context.Context, id uuid.UUID, input BrandInput) (*BrandDTO, error) {
	if err := validateSlugged(input.Slug, input.NameEN); err != nil {
		return nil, err
	}
	var brand models.Brand
	if err := s.dbClient.DB().WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
		}
		return nil, err
	}
	brand.Slug = strings.TrimSpace(input.Slug)
	brand.NameEN = input.NameEN
	brand.NameHY = input.NameHY
	brand.NameRU = input.NameRU
	brand.LogoURL = input.LogoURL
	if _, err := s.repo.UpdateBrand(ctx, &brand); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "brand slug already exists")
		}
		return nil, err
	}
	return NewBrandDTO(&brand), nil
}

func (s *service) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBrand(ctx, id)
}

func (s *service) CreateCollection(ctx context.Context, input CollectionInput) (*CollectionDTO, error) {
	if err := validateSlugged(input.Slug, input.NameEN); err != nil {
		return nil, err
	}
	collection := &models.Collection{
		Slug:     strings.TrimSpace(input.Slug),
		NameEN:   input.NameEN,
		NameHY:   input.NameHY,
		NameRU:   input.NameRU,
		ImageURL: input.ImageURL,
	}
	if _, err := s.repo.CreateCollection(ctx, collection); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "collection slug already exists")
		}
		return nil, err
	}
	return NewCollectionDTO(collection), nil
}

func (s *service) UpdateCollection(ctx context.Context, id uuid.UUID, input CollectionInput) (*CollectionDTO, error) {
	if err := validateSlugged(input.Slug, input.NameEN); err != nil {
		return nil, err
	}
	var collection models.Collection
	if err := s.dbClient.DB().WithContext(ctx).First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "collection not found")
		}
		return nil, err
	}
	collection.Slug = strings.TrimSpace(input.Slug)
	collection.NameEN = input.NameEN
	collection.NameHY = input.NameHY
	collection.NameRU = input.NameRU
	collection.ImageURL = input.ImageURL
	if _, err := s.repo.UpdateCollection(ctx, &collection); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "collection slug already exists")
		}
		return nil, err
	}
	return NewCollectionDTO(&collection), nil
}

func (s *service) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCollection(ctx, id)
}

func validateProductCore(sku, nameEN string, priceAMD int, unit enums.ProductUnit) error {
	if strings.TrimSpace(sku) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "sku required")
	}
	if strings.TrimSpace(nameEN) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name_en required")
	}
	if priceAMD < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price_amd must not be negative")
	}
	if !unit.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown unit")
	}
	return nil
}

func validateSlugged(slug, nameEN string) error {
	if strings.TrimSpace(slug) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "slug required")
	}
	if strings.TrimSpace(nameEN) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name_en required")
	}
	return nil
}

func applyProductUpdate(product *models.Product, input UpdateProductInput) {
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.NameEN != nil {
		product.NameEN = *input.NameEN
	}
	if input.NameHY != nil {
		product.NameHY = *input.NameHY
	}
	if input.NameRU != nil {
		product.NameRU = *input.NameRU
	}
	if input.DescriptionEN != nil {
		product.DescriptionEN = input.DescriptionEN
	}
	if input.DescriptionHY != nil {
		product.DescriptionHY = input.DescriptionHY
	}
	if input.DescriptionRU != nil {
		product.DescriptionRU = input.DescriptionRU
	}
	if input.BrandID != nil {
		product.BrandID = input.BrandID
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.PriceAMD != nil {
		product.PriceAMD = *input.PriceAMD
	}
	if input.DiscountAMD != nil {
		product.DiscountAMD = input.DiscountAMD
	}
	if input.Weight != nil {
		product.Weight = input.Weight
	}
	if input.Status != nil {
		product.Status = input.Status
	}
	if input.ReadyAfter != nil {
		product.ReadyAfter = input.ReadyAfter
	}
	if input.Ingredients != nil {
		product.Ingredients = pq.StringArray(*input.Ingredients)
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
}

func loadCollections(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]models.Collection, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var collections []models.Collection
	if err := tx.WithContext(ctx).Where("id IN ?", ids).Find(&collections).Error; err != nil {
		return nil, err
	}
	if len(collections) != len(ids) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown collection id")
	}
	return collections, nil
}
