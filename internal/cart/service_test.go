package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
)

type memoryStore struct {
	carts map[string][]Line
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: map[string][]Line{}}
}

func (m *memoryStore) Load(_ context.Context, token string) (*Cart, error) {
	return NewCart(m.carts[token]), nil
}

func (m *memoryStore) Save(_ context.Context, token string, cart *Cart) error {
	m.carts[token] = cart.Lines()
	return nil
}

func (m *memoryStore) Delete(_ context.Context, token string) error {
	delete(m.carts, token)
	return nil
}

type stubProducts struct {
	byID map[uuid.UUID]*models.Product
}

func (s *stubProducts) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

func fixtureProducts() (*stubProducts, uuid.UUID, uuid.UUID) {
	pieceID := uuid.New()
	weightID := uuid.New()
	weight := "500"
	return &stubProducts{byID: map[uuid.UUID]*models.Product{
		pieceID: {
			ID:       pieceID,
			NameEN:   "Milk Bar",
			Unit:     enums.ProductUnitPieces,
			PriceAMD: 1500,
		},
		weightID: {
			ID:          weightID,
			NameEN:      "Truffle Mix",
			Unit:        enums.ProductUnitGrams,
			PriceAMD:    1000,
			DiscountAMD: intPtr(800),
			Weight:      &weight,
		},
	}}, pieceID, weightID
}

func newTestService(t *testing.T) (Service, *memoryStore, uuid.UUID, uuid.UUID) {
	t.Helper()
	products, pieceID, weightID := fixtureProducts()
	store := newMemoryStore()
	svc, err := NewService(store, products)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, store, pieceID, weightID
}

func TestServiceAddPieceAndWeight(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, pieceID, weightID := newTestService(t)

	view, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: pieceID, Quantity: 2})
	if err != nil {
		t.Fatalf("add piece: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].LineTotalAMD != 3000 {
		t.Fatalf("unexpected view after piece add: %+v", view)
	}

	view, err = svc.AddItem(ctx, "tok", AddItemInput{ProductID: weightID, Grams: intPtr(250)})
	if err != nil {
		t.Fatalf("add weight: %v", err)
	}
	// Discounted 800 per 100g at 250g = 2000.
	if len(view.Lines) != 2 || view.Lines[1].LineTotalAMD != 2000 {
		t.Fatalf("unexpected view after weight add: %+v", view)
	}
	if view.SubtotalAMD != 5000 {
		t.Fatalf("expected subtotal 5000, got %d", view.SubtotalAMD)
	}
}

func TestServiceClampsGramsToCapacity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store, _, weightID := newTestService(t)

	// Catalog weight is "500"; direct input above it is clamped.
	if _, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: weightID, Grams: intPtr(9999)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines := store.carts["tok"]
	if len(lines) != 1 || lines[0].Grams == nil || *lines[0].Grams != 500 {
		t.Fatalf("expected grams clamped to 500, got %+v", lines)
	}

	// Negative input clamps to zero, which removes the line.
	if _, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: weightID, Grams: intPtr(-50)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(store.carts["tok"]) != 0 {
		t.Fatal("expected negative grams to remove the line")
	}
}

func TestServiceAddUnknownProduct(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t)
	_, err := svc.AddItem(context.Background(), "tok", AddItemInput{ProductID: uuid.New()})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestServiceViewDropsVanishedProducts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	products, pieceID, _ := fixtureProducts()
	store := newMemoryStore()
	svc, err := NewService(store, products)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: pieceID, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	delete(products.byID, pieceID)

	view, err := svc.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Lines) != 0 || view.SubtotalAMD != 0 {
		t.Fatalf("expected vanished product dropped from view, got %+v", view)
	}
}

func TestServiceRemoveAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store, pieceID, weightID := newTestService(t)

	if _, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: pieceID}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: weightID, Grams: intPtr(100)}); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.RemoveItem(ctx, "tok", pieceID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 line after remove, got %d", len(view.Lines))
	}

	if err := svc.Clear(ctx, "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.carts["tok"]; ok {
		t.Fatal("expected snapshot deleted on clear")
	}
}

func TestNewServiceRequiresDeps(t *testing.T) {
	t.Parallel()

	products, _, _ := fixtureProducts()
	if _, err := NewService(nil, products); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewService(newMemoryStore(), nil); err == nil {
		t.Fatal("expected error for nil product loader")
	}
}
