package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"seafresh-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore is a Store kept in a map; every successful Update copies the items.
type memStore struct {
	mu    sync.Mutex
	carts map[string][]Item
	saves int
}

func newMemStore() *memStore {
	return &memStore{carts: map[string][]Item{}}
}

func (m *memStore) Load(_ context.Context, id string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := New()
	c.Items = append(c.Items, m.carts[id]...)
	return c, nil
}

func (m *memStore) Update(_ context.Context, id string, fn func(*Cart) error) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := New()
	c.Items = append(c.Items, m.carts[id]...)
	if err := fn(c); err != nil {
		return nil, err
	}
	m.saves++
	m.carts[id] = append([]Item{}, c.Items...)
	return c, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, id)
	return nil
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsImmediately", func(t *testing.T) {
		store := newMemStore()
		catalog := new(MockCatalog)
		catalog.On("GetByIDs", ctx, []string{"p-1"}).Return([]*product.Product{plain("p-1", 100)}, nil)

		svc := NewService(store, catalog, DefaultPricing())

		_, err := svc.AddItem(ctx, "u-1", "p-1", 1, "")
		require.NoError(t, err)
		c, err := svc.AddItem(ctx, "u-1", "p-1", 2, "")
		require.NoError(t, err)

		assert.Equal(t, []Item{{ProductID: "p-1", Quantity: 3, Weight: "1kg"}}, c.Items)
		assert.Equal(t, 2, store.saves)
	})

	t.Run("ConcurrentAddsAllCount", func(t *testing.T) {
		store := newMemStore()
		catalog := new(MockCatalog)
		catalog.On("GetByIDs", mock.Anything, []string{"p-1"}).Return([]*product.Product{plain("p-1", 100)}, nil)
		svc := NewService(store, catalog, DefaultPricing())

		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.AddItem(ctx, "u-1", "p-1", 1, "")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		c, err := svc.Get(ctx, "u-1")
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 25, c.Items[0].Quantity)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		catalog := new(MockCatalog)
		catalog.On("GetByIDs", ctx, []string{"ghost"}).Return([]*product.Product{}, nil)

		_, err := NewService(newMemStore(), catalog, DefaultPricing()).AddItem(ctx, "u-1", "ghost", 1, "")
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		_, err := NewService(newMemStore(), new(MockCatalog), DefaultPricing()).AddItem(ctx, "u-1", "p-1", 0, "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.carts["u-1"] = []Item{{ProductID: "p-1", Quantity: 2}, {ProductID: "p-2", Quantity: 1}}
	svc := NewService(store, new(MockCatalog), DefaultPricing())

	c, err := svc.UpdateQuantity(ctx, "u-1", "p-1", 0)
	require.NoError(t, err)
	assert.Equal(t, []Item{{ProductID: "p-2", Quantity: 1}}, c.Items)

	saves := store.saves
	_, err = svc.UpdateQuantity(ctx, "u-1", "p-1", 4)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.Equal(t, saves, store.saves)

	c, err = svc.RemoveItem(ctx, "u-1", "p-2")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	require.NoError(t, svc.Clear(ctx, "u-1"))
	_, ok := store.carts["u-1"]
	assert.False(t, ok)
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("OneCatalogLookup", func(t *testing.T) {
		store := newMemStore()
		store.carts["u-1"] = []Item{{ProductID: "pomfret", Quantity: 2}, {ProductID: "gone", Quantity: 1}}

		catalog := new(MockCatalog)
		catalog.On("GetByIDs", ctx, []string{"pomfret", "gone"}).
			Return([]*product.Product{discounted("pomfret", 450, 10)}, nil).Once()

		sum, err := NewService(store, catalog, DefaultPricing()).Summary(ctx, "u-1", "")
		require.NoError(t, err)
		assert.Len(t, sum.Items, 2)
		assert.Len(t, sum.Lines, 1)
		assert.Equal(t, 850.5, sum.Total)
		catalog.AssertNumberOfCalls(t, "GetByIDs", 1)
	})

	t.Run("EmptyCartSkipsCatalog", func(t *testing.T) {
		catalog := new(MockCatalog)
		sum, err := NewService(newMemStore(), catalog, DefaultPricing()).Summary(ctx, "u-1", "")
		require.NoError(t, err)
		assert.Equal(t, 0.0, sum.Total)
		catalog.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})

	t.Run("CatalogError", func(t *testing.T) {
		store := newMemStore()
		store.carts["u-1"] = []Item{{ProductID: "p-1", Quantity: 1}}
		catalog := new(MockCatalog)
		catalog.On("GetByIDs", ctx, []string{"p-1"}).Return(nil, errors.New("db down"))

		_, err := NewService(store, catalog, DefaultPricing()).Summary(ctx, "u-1", "")
		assert.Error(t, err)
	})
}
