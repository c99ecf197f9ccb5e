package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chocomarket/chocomarket-backend/internal/cart"
	"github.com/chocomarket/chocomarket-backend/pkg/db"
	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
	"github.com/chocomarket/chocomarket-backend/pkg/pagination"
	"github.com/chocomarket/chocomarket-backend/pkg/types"
)

// Service converts carts into orders and exposes the admin order surface.
type Service interface {
	Submit(ctx context.Context, token string, input SubmitInput) (*OrderDTO, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*OrderListResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*OrderDTO, error)
}

// SubmitInput carries the customer contact details for checkout.
type SubmitInput struct {
	CustomerName string
	Phone        string
	Email        *string
	Address      string
	Comment      *string
	Locale       enums.Locale
}

// ListOrdersInput filters the admin order listing.
type ListOrdersInput struct {
	Status     *enums.OrderStatus
	Pagination pagination.Params
}

// OrderDTO is the order payload returned to clients.
type OrderDTO struct {
	ID           uuid.UUID          `json:"id"`
	Number       int64              `json:"number"`
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Email        *string            `json:"email,omitempty"`
	Address      string             `json:"address"`
	Comment      *string            `json:"comment,omitempty"`
	Locale       string             `json:"locale"`
	Status       string             `json:"status"`
	SubtotalAMD  int                `json:"subtotal_amd"`
	TotalAMD     int                `json:"total_amd"`
	Items        []OrderLineItemDTO `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
}

// OrderLineItemDTO is one snapshotted line on an order payload.
type OrderLineItemDTO struct {
	ProductID    uuid.UUID           `json:"product_id"`
	Name         types.LocalizedText `json:"name"`
	Unit         string              `json:"unit"`
	UnitPriceAMD int                 `json:"unit_price_amd"`
	DiscountAMD  *int                `json:"discount_amd,omitempty"`
	Quantity     int                 `json:"quantity"`
	Grams        *int                `json:"grams,omitempty"`
	LineTotalAMD int                 `json:"line_total_amd"`
}

// OrderListResult is one admin listing page.
type OrderListResult struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

type cartReader interface {
	Get(ctx context.Context, token string) (*cart.View, error)
	Clear(ctx context.Context, token string) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	carts    cartReader
}

// NewService constructs a checkout service instance.
func NewService(repo *Repository, dbClient *db.Client, carts cartReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart reader required")
	}
	return &service{repo: repo, dbClient: dbClient, carts: carts}, nil
}

// Submit converts the session's cart into an order. Prices come from the
// priced cart view, which re-derives every amount from the current catalog
// rows, so a stale client cannot dictate what it pays. The snapshot is
// cleared only after the order row committed.
func (s *service) Submit(ctx context.Context, token string, input SubmitInput) (*OrderDTO, error) {
	if err := validateSubmit(input); err != nil {
		return nil, err
	}

	view, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	locale := input.Locale
	if !locale.IsValid() {
		locale = enums.LocaleHY
	}

	order := &models.Order{
		CustomerName: strings.TrimSpace(input.CustomerName),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        input.Email,
		Address:      strings.TrimSpace(input.Address),
		Comment:      input.Comment,
		Locale:       locale,
		Status:       enums.OrderStatusPending,
		SubtotalAMD:  view.SubtotalAMD,
		TotalAMD:     view.SubtotalAMD,
		CartToken:    token,
	}
	for _, line := range view.Lines {
		order.Items = append(order.Items, models.OrderLineItem{
			ProductID:    line.ProductID,
			NameEN:       line.Name.EN,
			NameHY:       line.Name.HY,
			NameRU:       line.Name.RU,
			Unit:         line.Unit,
			UnitPriceAMD: line.UnitPriceAMD,
			DiscountAMD:  line.DiscountAMD,
			Quantity:     line.Quantity,
			Grams:        line.Grams,
			LineTotalAMD: line.LineTotalAMD,
		})
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).CreateOrder(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	// The order is committed; a lingering snapshot only means the next
	// session starts with a stale cart, so a failed delete is not fatal.
	_ = s.carts.Clear(ctx, token)
	return newOrderDTO(order), nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newOrderDTO(order), nil
}

func (s *service) ListOrders(ctx context.Context, input ListOrdersInput) (*OrderListResult, error) {
	rows, nextCursor, err := s.repo.ListOrders(ctx, input.Pagination, input.Status)
	if err != nil {
		return nil, err
	}
	result := &OrderListResult{Orders: make([]OrderDTO, 0, len(rows)), NextCursor: nextCursor}
	for i := range rows {
		result.Orders = append(result.Orders, *newOrderDTO(&rows[i]))
	}
	return result, nil
}

// UpdateStatus moves the order along its lifecycle. Only forward
// transitions are allowed; delivered and canceled are terminal.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*OrderDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(order.Status, status) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, status))
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return newOrderDTO(order), nil
}

var orderTransitions = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPending:   {enums.OrderStatusConfirmed, enums.OrderStatusCanceled},
	enums.OrderStatusConfirmed: {enums.OrderStatusShipped, enums.OrderStatusCanceled},
	enums.OrderStatusShipped:   {enums.OrderStatusDelivered},
}

func transitionAllowed(from, to enums.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func validateSubmit(input SubmitInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address required")
	}
	return nil
}

func newOrderDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:           order.ID,
		Number:       order.Number,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Email:        order.Email,
		Address:      order.Address,
		Comment:      order.Comment,
		Locale:       string(order.Locale),
		Status:       string(order.Status),
		SubtotalAMD:  order.SubtotalAMD,
		TotalAMD:     order.TotalAMD,
		CreatedAt:    order.CreatedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, OrderLineItemDTO{
			ProductID:    item.ProductID,
			Name:         types.LocalizedText{EN: item.NameEN, HY: item.NameHY, RU: item.NameRU},
			Unit:         string(item.Unit),
			UnitPriceAMD: item.UnitPriceAMD,
			DiscountAMD:  item.DiscountAMD,
			Quantity:     item.Quantity,
			Grams:        item.Grams,
			LineTotalAMD: item.LineTotalAMD,
		})
	}
	return dto
}
