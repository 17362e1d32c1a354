package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filter Filter) ([]*Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) ListBySeller(ctx context.Context, sellerID string) ([]*Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetByIDs(ctx context.Context, ids []string) ([]*Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("CategoryIsCaseInsensitive", func(t *testing.T) {
		repo := new(MockRepository)
		crab := CategoryCrab
		repo.On("List", ctx, Filter{Category: &crab, Search: "blue"}).Return([]*Product{{ID: "p-1"}}, nil)

		res, err := NewService(repo).List(ctx, "crab", "  blue ")
		require.NoError(t, err)
		assert.Len(t, res, 1)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		_, err := NewService(new(MockRepository)).List(ctx, "whale", "")
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("NoFilter", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx, Filter{}).Return([]*Product{}, nil)

		res, err := NewService(repo).List(ctx, "", "")
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	valid := CreateProductInput{
		Name: "Mud Crab", Description: "Live", Category: "crab", Price: 1200, Weight: "1kg",
	}

	t.Run("Defaults", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(p *Product) bool {
			return p.Category == CategoryCrab && p.Rating == 3 && p.Stock == 0 && p.SellerID == "s-1"
		})).Return(nil)

		p, err := NewService(repo).Create(ctx, "s-1", valid)
		require.NoError(t, err)
		assert.NotNil(t, p.Images)
		repo.AssertExpectations(t)
	})

	cases := []struct {
		name   string
		mutate func(*CreateProductInput)
		want   error
	}{
		{"missing name", func(in *CreateProductInput) { in.Name = "" }, ErrMissingFields},
		{"bad category", func(in *CreateProductInput) { in.Category = "shark" }, ErrInvalidCategory},
		{"negative price", func(in *CreateProductInput) { in.Price = -1 }, ErrInvalidPrice},
		{"negative stock", func(in *CreateProductInput) { s := -1; in.Stock = &s }, ErrInvalidStock},
		{"rating too high", func(in *CreateProductInput) { r := 5.5; in.Rating = &r }, ErrInvalidRating},
		{"discount too high", func(in *CreateProductInput) { d := 120.0; in.Discount = &d }, ErrInvalidDiscount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := NewService(new(MockRepository)).Create(ctx, "s-1", in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "p-1").Return(&Product{ID: "p-1", SellerID: "s-1"}, nil)
		repo.On("Delete", ctx, "p-1").Return(nil)

		assert.NoError(t, NewService(repo).Delete(ctx, "s-1", "p-1"))
		repo.AssertExpectations(t)
	})

	t.Run("OtherSeller", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "p-1").Return(&Product{ID: "p-1", SellerID: "s-2"}, nil)

		assert.ErrorIs(t, NewService(repo).Delete(ctx, "s-1", "p-1"), ErrForbidden)
		repo.AssertNotCalled(t, "Delete", ctx, "p-1")
	})

	t.Run("Missing", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "p-1").Return(nil, ErrProductNotFound)

		assert.ErrorIs(t, NewService(repo).Delete(ctx, "s-1", "p-1"), ErrProductNotFound)
	})
}

func TestService_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "p-1").Return(&Product{ID: "p-1", SellerID: "s-1"}, nil)
		repo.On("AdjustStock", ctx, "p-1", 4).Return(10, nil)

		stock, err := NewService(repo).AdjustStock(ctx, "s-1", "p-1", 4)
		require.NoError(t, err)
		assert.Equal(t, 10, stock)
	})

	t.Run("ZeroDelta", func(t *testing.T) {
		_, err := NewService(new(MockRepository)).AdjustStock(ctx, "s-1", "p-1", 0)
		assert.ErrorIs(t, err, ErrInvalidDelta)
	})

	t.Run("Insufficient", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "p-1").Return(&Product{ID: "p-1", SellerID: "s-1"}, nil)
		repo.On("AdjustStock", ctx, "p-1", -50).Return(0, ErrInsufficientStock)

		_, err := NewService(repo).AdjustStock(ctx, "s-1", "p-1", -50)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})
}
