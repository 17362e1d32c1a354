package dashboard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"seafresh-be/internal/order"
	"seafresh-be/internal/seller"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestRepository_AdminStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM orders\)`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e"}).AddRow(12, 10450.5, 30, 8, 4))

	s, err := NewRepository(db).AdminStats(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, &AdminStats{TotalOrders: 12, TotalRevenue: 10450.5, TotalProducts: 30, TotalCustomers: 8, RecentOrders: 4}, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Customers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM users u JOIN orders o ON o.user_id = u.id GROUP BY .* ORDER BY total_spent DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "count", "total_spent"}).
				AddRow("u-2", "Ravi", "ravi@sea.in", "9876543210", 3, 4200.0).
				AddRow("u-1", "Asha", "asha@sea.in", nil, 1, 850.5))

		customers, err := repo.Customers(context.Background())
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "u-2", customers[0].ID)
		assert.Equal(t, 3, customers[0].OrderCount)
		assert.Nil(t, customers[1].Phone)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery(`FROM users u`).WillReturnError(errors.New("db down"))

		_, err := repo.Customers(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SellerStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE seller_id = \$1`).
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`jsonb_array_elements\(o.items\) AS li WHERE li->>'sellerId' = \$1`).
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"orders", "revenue"}).AddRow(2, []byte("1215.00")))

	s, err := NewRepository(db).SellerStats(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalProducts)
	assert.Equal(t, 2, s.TotalOrders)
	assert.Equal(t, 1215.0, s.Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type stubRepo struct {
	since time.Time
}

func (s *stubRepo) AdminStats(_ context.Context, since time.Time) (*AdminStats, error) {
	s.since = since
	return &AdminStats{}, nil
}

func (s *stubRepo) Customers(context.Context) ([]*Customer, error) { return nil, nil }

func (s *stubRepo) SellerStats(context.Context, string) (*SellerStats, error) { return nil, nil }

func TestService_AdminStatsWindow(t *testing.T) {
	repo := &stubRepo{}
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	svc := &service{repo: repo, now: func() time.Time { return now }}

	_, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), repo.since)
}

func TestExportOrders(t *testing.T) {
	sellerID := "s-1"
	o := &order.Order{
		OrderNumber: "ORD-1",
		Customer:    &order.Customer{Name: "Asha", Email: "asha@sea.in"},
		TotalAmount: 850.5,
		OrderStatus: order.StatusPending,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	attributed := &order.AttributedOrder{
		Order: o,
		Items: []order.AttributedItem{
			{
				LineItem:   order.LineItem{ProductName: "Pomfret", SellerID: &sellerID, Quantity: 2, UnitPrice: 405},
				SellerInfo: &seller.Info{ID: sellerID, CompanyName: "Alpha Fisheries"},
			},
			{LineItem: order.LineItem{ProductName: "Prawns", Quantity: 1, UnitPrice: 300}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportOrders(&buf, []*order.AttributedOrder{attributed}))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	rows := file.Sheets[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "Order Number", rows[0].Cells[0].String())
	assert.Equal(t, "ORD-1", rows[1].Cells[0].String())
	assert.Equal(t, "2026-01-02 03:04:05", rows[1].Cells[1].String())
	assert.Equal(t, "Asha", rows[1].Cells[2].String())
	assert.Equal(t, "Pomfret", rows[1].Cells[5].String())
	assert.Equal(t, "Alpha Fisheries", rows[1].Cells[6].String())
	assert.Equal(t, "", rows[2].Cells[6].String())
	assert.Equal(t, "PENDING", rows[2].Cells[14].String())
}
