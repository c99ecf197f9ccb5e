package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
)

type stubCatalogService struct {
	catalog.Service
	listFn func(ctx context.Context, input catalog.ListProductsInput) (*catalog.ProductListResult, error)
	getFn  func(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error)
	skuFn  func(ctx context.Context, sku string) (*catalog.ProductDTO, error)
}

func (s stubCatalogService) ListProducts(ctx context.Context, input catalog.ListProductsInput) (*catalog.ProductListResult, error) {
	return s.listFn(ctx, input)
}

func (s stubCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error) {
	return s.getFn(ctx, id)
}

func (s stubCatalogService) GetProductBySKU(ctx context.Context, sku string) (*catalog.ProductDTO, error) {
	return s.skuFn(ctx, sku)
}

func TestListProductsParsesFilters(t *testing.T) {
	svc := stubCatalogService{
		listFn: func(ctx context.Context, input catalog.ListProductsInput) (*catalog.ProductListResult, error) {
			if input.Pagination.Limit != 10 {
				t.Fatalf("unexpected limit %d", input.Pagination.Limit)
			}
			if input.Sort != enums.ProductSortPriceAsc {
				t.Fatalf("unexpected sort %q", input.Sort)
			}
			if input.Filters.BrandSlug == nil || *input.Filters.BrandSlug != "grand-candy" {
				t.Fatalf("unexpected brand filter %v", input.Filters.BrandSlug)
			}
			if input.Filters.Discounted == nil || !*input.Filters.Discounted {
				t.Fatalf("expected discounted filter")
			}
			if input.Filters.PriceMinAMD == nil || *input.Filters.PriceMinAMD != 500 {
				t.Fatalf("unexpected price_min %v", input.Filters.PriceMinAMD)
			}
			return &catalog.ProductListResult{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/?limit=10&sort=price_asc&brand=grand-candy&discounted=true&price_min=500", nil)
	resp := serve(t, ListProducts(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestListProductsRejectsBadSort(t *testing.T) {
	svc := stubCatalogService{
		listFn: func(ctx context.Context, input catalog.ListProductsInput) (*catalog.ProductListResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/?sort=cheapest", nil)
	resp := serve(t, ListProducts(svc, nil), req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProductByID(t *testing.T) {
	productID := uuid.New()
	svc := stubCatalogService{
		getFn: func(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error) {
			if id != productID {
				t.Fatalf("unexpected id %s", id)
			}
			return &catalog.ProductDTO{ID: productID, SKU: "CHO-001"}, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "productID", productID.String())
	resp := serve(t, GetProduct(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data catalog.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.SKU != "CHO-001" {
		t.Fatalf("unexpected payload %v", envelope.Data)
	}
}

func TestGetProductRejectsBadID(t *testing.T) {
	svc := stubCatalogService{
		getFn: func(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "productID", "not-a-uuid")
	resp := serve(t, GetProduct(svc, nil), req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProductBySKU(t *testing.T) {
	svc := stubCatalogService{
		skuFn: func(ctx context.Context, sku string) (*catalog.ProductDTO, error) {
			if sku != "CHO-002" {
				t.Fatalf("unexpected sku %q", sku)
			}
			return &catalog.ProductDTO{SKU: sku}, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "sku", "CHO-002")
	resp := serve(t, GetProductBySKU(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
