package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/internal/pricing"
	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
	"github.com/chocomarket/chocomarket-backend/pkg/types"
)

// Service exposes cart operations for a session identified by cart token.
type Service interface {
	Get(ctx context.Context, token string) (*View, error)
	AddItem(ctx context.Context, token string, input AddItemInput) (*View, error)
	RemoveItem(ctx context.Context, token string, productID uuid.UUID) (*View, error)
	Clear(ctx context.Context, token string) error
}

// AddItemInput is the API-level add request. Grams non-nil selects the
// weight path with an absolute target; Quantity is a piece-mode delta.
type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Grams     *int
}

// LineView is one cart line joined with its catalog row and priced.
type LineView struct {
	ProductID    uuid.UUID           `json:"product_id"`
	Name         types.LocalizedText `json:"name"`
	UnitPriceAMD int                 `json:"unit_price_amd"`
	DiscountAMD  *int                `json:"discount_amd,omitempty"`
	Unit         enums.ProductUnit   `json:"unit"`
	Quantity     int                 `json:"quantity"`
	Grams        *int                `json:"grams,omitempty"`
	LineTotalAMD int                 `json:"line_total_amd"`
	Status       *string             `json:"status,omitempty"`
	ReadyAfter   *string             `json:"ready_after,omitempty"`
	ImageURL     *string             `json:"image_url,omitempty"`
}

// View is the full priced cart snapshot.
type View struct {
	Token       string     `json:"token"`
	Lines       []LineView `json:"lines"`
	SubtotalAMD int        `json:"subtotal_amd"`
}

type productLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	store    Store
	products productLoader
}

// NewService constructs a cart service instance.
func NewService(store Store, products productLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products}, nil
}

// Get loads and prices the current snapshot. Lines whose catalog row has
// disappeared are dropped from the view rather than failing the request.
func (s *service) Get(ctx context.Context, token string) (*View, error) {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, token, c)
}

// AddItem merges one add call into the snapshot and persists it.
//
// The mode comes from the request shape, not the catalog row: supplying
// grams makes the line weight-based. Grams input is clamped to the
// product's parsed capacity on the step grid before it reaches the model.
func (s *service) AddItem(ctx context.Context, token string, input AddItemInput) (*View, error) {
	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	add := AddInput{ProductID: input.ProductID, Quantity: input.Quantity}
	if input.Grams != nil {
		clamped := ClampGrams(*input.Grams, ParseCapacity(product.Weight))
		add.Grams = &clamped
	}
	c.Add(add)

	if err := s.store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return s.buildView(ctx, token, c)
}

// RemoveItem deletes the line unconditionally, no-op if absent.
func (s *service) RemoveItem(ctx context.Context, token string, productID uuid.UUID) (*View, error) {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	c.Remove(productID)
	if err := s.store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return s.buildView(ctx, token, c)
}

// Clear drops the whole snapshot.
func (s *service) Clear(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

func (s *service) buildView(ctx context.Context, token string, c *Cart) (*View, error) {
	view := &View{Token: token, Lines: make([]LineView, 0, c.Len())}
	var priced []pricing.Line
	for _, line := range c.Lines() {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeNotFound {
				continue
			}
			return nil, err
		}
		if product == nil {
			continue
		}

		pl := pricing.Line{
			PriceAMD:    product.PriceAMD,
			DiscountAMD: product.DiscountAMD,
			Quantity:    line.Quantity,
			Grams:       line.Grams,
		}
		priced = append(priced, pl)
		view.Lines = append(view.Lines, LineView{
			ProductID:    line.ProductID,
			Name:         product.Names(),
			UnitPriceAMD: product.PriceAMD,
			DiscountAMD:  product.DiscountAMD,
			Unit:         product.Unit,
			Quantity:     line.Quantity,
			Grams:        line.Grams,
			LineTotalAMD: pricing.LineTotal(pl),
			Status:       product.Status,
			ReadyAfter:   product.ReadyAfter,
			ImageURL:     product.ImageURL,
		})
	}
	view.SubtotalAMD = pricing.CartTotal(priced)
	return view, nil
}
