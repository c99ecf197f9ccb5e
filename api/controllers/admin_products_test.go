package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
)

type stubAdminCatalogService struct {
	catalog.Service
	createFn func(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error)
	updateFn func(ctx context.Context, id uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s stubAdminCatalogService) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	return s.createFn(ctx, input)
}

func (s stubAdminCatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
	return s.updateFn(ctx, id, input)
}

func (s stubAdminCatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func TestAdminCreateProduct(t *testing.T) {
	brandID := uuid.New()
	collectionID := uuid.New()
	svc := stubAdminCatalogService{
		createFn: func(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
			if input.SKU != "CHO-010" {
				t.Fatalf("unexpected sku %q", input.SKU)
			}
			if input.Unit != enums.ProductUnitGrams {
				t.Fatalf("unexpected unit %q", input.Unit)
			}
			if input.BrandID == nil || *input.BrandID != brandID {
				t.Fatalf("unexpected brand id %v", input.BrandID)
			}
			if len(input.CollectionIDs) != 1 || input.CollectionIDs[0] != collectionID {
				t.Fatalf("unexpected collection ids %v", input.CollectionIDs)
			}
			if !input.IsActive {
				t.Fatal("expected default active")
			}
			return &catalog.ProductDTO{SKU: input.SKU}, nil
		},
	}

	body := `{
		"sku": "CHO-010",
		"name_en": "Dark bar",
		"name_hy": "Մուգ սալիկ",
		"name_ru": "Тёмная плитка",
		"unit": "grams",
		"price_amd": 450,
		"weight": "100",
		"brand_id": "` + brandID.String() + `",
		"collection_ids": ["` + collectionID.String() + `"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	resp := serve(t, AdminCreateProduct(svc, nil), req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminCreateProductRejectsBadUnit(t *testing.T) {
	svc := stubAdminCatalogService{
		createFn: func(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	body := `{"sku":"CHO-011","name_en":"Bar","name_hy":"Սալիկ","name_ru":"Плитка","unit":"boxes","price_amd":450}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	resp := serve(t, AdminCreateProduct(svc, nil), req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUpdateProductPartial(t *testing.T) {
	productID := uuid.New()
	svc := stubAdminCatalogService{
		updateFn: func(ctx context.Context, id uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
			if id != productID {
				t.Fatalf("unexpected id %s", id)
			}
			if input.PriceAMD == nil || *input.PriceAMD != 990 {
				t.Fatalf("unexpected price %v", input.PriceAMD)
			}
			if input.SKU != nil {
				t.Fatalf("sku should be absent, got %v", *input.SKU)
			}
			if input.CollectionIDs == nil || len(*input.CollectionIDs) != 0 {
				t.Fatalf("expected empty collection replacement, got %v", input.CollectionIDs)
			}
			return &catalog.ProductDTO{ID: id}, nil
		},
	}

	body := `{"price_amd":990,"collection_ids":[]}`
	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body)), "productID", productID.String())
	resp := serve(t, AdminUpdateProduct(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminDeleteProduct(t *testing.T) {
	productID := uuid.New()
	svc := stubAdminCatalogService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			if id != productID {
				t.Fatalf("unexpected id %s", id)
			}
			return nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "productID", productID.String())
	resp := serve(t, AdminDeleteProduct(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
