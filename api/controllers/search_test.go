package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
)

type stubSearchService struct {
	searchFn func(ctx context.Context, query string, limit int) ([]models.Product, error)
}

func (s stubSearchService) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	return s.searchFn(ctx, query, limit)
}

func TestSearchProducts(t *testing.T) {
	svc := stubSearchService{
		searchFn: func(ctx context.Context, query string, limit int) ([]models.Product, error) {
			if query != "shokolad" {
				t.Fatalf("unexpected query %q", query)
			}
			if limit != 12 {
				t.Fatalf("unexpected limit %d", limit)
			}
			return []models.Product{{SKU: "CHO-001", PriceAMD: 1500}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/?q=shokolad&limit=12", nil)
	resp := serve(t, SearchProducts(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Items []catalog.ProductDTO `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].SKU != "CHO-001" {
		t.Fatalf("unexpected payload %v", envelope.Data.Items)
	}
}

func TestSearchProductsBlankQuery(t *testing.T) {
	svc := stubSearchService{
		searchFn: func(ctx context.Context, query string, limit int) ([]models.Product, error) {
			if query != "" {
				t.Fatalf("unexpected query %q", query)
			}
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := serve(t, SearchProducts(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
