package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/internal/catalog"
)

type stubRecommendationsService struct {
	listFn    func(ctx context.Context) ([]catalog.ProductDTO, error)
	replaceFn func(ctx context.Context, productIDs []uuid.UUID) error
}

func (s stubRecommendationsService) List(ctx context.Context) ([]catalog.ProductDTO, error) {
	return s.listFn(ctx)
}

func (s stubRecommendationsService) Replace(ctx context.Context, productIDs []uuid.UUID) error {
	return s.replaceFn(ctx, productIDs)
}

func TestListRecommendations(t *testing.T) {
	svc := stubRecommendationsService{
		listFn: func(ctx context.Context) ([]catalog.ProductDTO, error) {
			return []catalog.ProductDTO{{SKU: "CHO-001"}, {SKU: "CHO-002"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := serve(t, ListRecommendations(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAdminReplaceRecommendationsKeepsOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	svc := stubRecommendationsService{
		replaceFn: func(ctx context.Context, productIDs []uuid.UUID) error {
			if len(productIDs) != 2 || productIDs[0] != first || productIDs[1] != second {
				t.Fatalf("unexpected ids %v", productIDs)
			}
			return nil
		},
	}

	body := `{"product_ids":["` + first.String() + `","` + second.String() + `"]}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	resp := serve(t, AdminReplaceRecommendations(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminReplaceRecommendationsRejectsBadID(t *testing.T) {
	svc := stubRecommendationsService{
		replaceFn: func(ctx context.Context, productIDs []uuid.UUID) error {
			t.Fatal("service should not be called")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"product_ids":["nope"]}`))
	resp := serve(t, AdminReplaceRecommendations(svc, nil), req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
