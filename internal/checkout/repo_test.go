package checkout

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chocomarket/chocomarket-backend/pkg/db/models"
	"github.com/chocomarket/chocomarket-backend/pkg/enums"
	pkgerrors "github.com/chocomarket/chocomarket-backend/pkg/errors"
	"github.com/chocomarket/chocomarket-backend/pkg/pagination"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CHOCOMARKET_DB_DSN")
	if dsn == "" {
		t.Skip("CHOCOMARKET_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func fixtureOrder() *models.Order {
	grams := 250
	return &models.Order{
		CustomerName: "Ani Petrosyan",
		Phone:        "+37491000000",
		Address:      "Yerevan, Abovyan 12",
		Locale:       enums.LocaleHY,
		Status:       enums.OrderStatusPending,
		SubtotalAMD:  2500,
		TotalAMD:     2500,
		CartToken:    uuid.NewString(),
		Items: []models.OrderLineItem{{
			ProductID:    uuid.New(),
			NameEN:       "Truffle Mix",
			NameHY:       "Տրյուֆելներ",
			NameRU:       "Трюфели",
			Unit:         enums.ProductUnitGrams,
			UnitPriceAMD: 1000,
			Quantity:     1,
			Grams:        &grams,
			LineTotalAMD: 2500,
		}},
	}
}

func TestRepositoryOrderFlow(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()

	created, err := repo.CreateOrder(ctx, fixtureOrder())
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected order id generated")
	}
	if created.Number == 0 {
		t.Fatal("expected order number assigned")
	}

	fetched, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find order: %v", err)
	}
	if len(fetched.Items) != 1 || fetched.Items[0].LineTotalAMD != 2500 {
		t.Fatalf("expected line items preloaded, got %+v", fetched.Items)
	}

	if err := repo.UpdateStatus(ctx, created.ID, enums.OrderStatusConfirmed); err != nil {
		t.Fatalf("update status: %v", err)
	}
	fetched, err = repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find after status update: %v", err)
	}
	if fetched.Status != enums.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", fetched.Status)
	}

	status := enums.OrderStatusConfirmed
	rows, _, err := repo.ListOrders(ctx, pagination.Params{Limit: 10}, &status)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	found := false
	for _, row := range rows {
		if row.ID == created.ID {
			found = true
		}
		if row.Status != enums.OrderStatusConfirmed {
			t.Fatalf("status filter leaked %s", row.Status)
		}
	}
	if !found {
		t.Fatal("expected created order in filtered listing")
	}
}

func TestRepositoryUpdateStatusUnknownOrder(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	err := repo.UpdateStatus(context.Background(), uuid.New(), enums.OrderStatusConfirmed)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
