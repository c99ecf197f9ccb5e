package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func mustCreateTestBrand(t *testing.T, tx *gorm.DB) *models.Brand {
	t.Helper()
	brand := &models.Brand{
		ID:     uuid.New(),
		Slug:   fmt.Sprintf("brand-%s", uuid.NewString()),
		NameEN: "Test Brand",
		NameHY: "Թեստ ապրանքանիշ",
		NameRU: "Тестовый бренд",
	}
	if err := tx.Create(brand).Error; err != nil {
		t.Fatalf("create brand: %v", err)
	}
	return brand
}

func mustCreateTestCollection(t *testing.T, tx *gorm.DB) *models.Collection {
	t.Helper()
	collection := &models.Collection{
		ID:     uuid.New(),
		Slug:   fmt.Sprintf("collection-%s", uuid.NewString()),
		NameEN: "Test Collection",
		NameHY: "Թեստ հավաքածու",
		NameRU: "Тестовая коллекция",
	}
	if err := tx.Create(collection).Error; err != nil {
		t.Fatalf("create collection: %v", err)
	}
	return collection
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, mutate func(*models.Product)) *models.Product {
	t.Helper()
	product := &models.Product{
		SKU:      fmt.Sprintf("SKU-%s", uuid.NewString()),
		NameEN:   "Milk Bar",
		NameHY:   "Կաթնային բար",
		NameRU:   "Молочный Бар",
		Unit:     enums.ProductUnitPieces,
		PriceAMD: 1500,
		IsActive: true,
	}
	if mutate != nil {
		mutate(product)
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}
