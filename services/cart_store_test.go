package services

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestCartStoreAddItem(t *testing.T) {
	store := NewCartStore(nil)
	p := testProduct("1", 99)

	for i := 0; i < 3; i++ {
		store.AddItem(p)
	}

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, store.TotalItems())
	assert.True(t, decimal.NewFromInt(297).Equal(store.TotalPrice()))
}

func TestCartStoreKeepsInsertionOrder(t *testing.T) {
	store := NewCartStore(nil)
	store.AddItem(testProduct("2", 10))
	store.AddItem(testProduct("1", 20))
	store.AddItem(testProduct("2", 10))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "1", items[1].ID)
}

func TestCartStoreTotals(t *testing.T) {
	store := NewCartStore(nil)
	store.AddItem(testProduct("a", 99))
	store.AddItem(testProduct("b", 249))
	store.UpdateQuantity("a", 2)

	assert.Equal(t, 3, store.TotalItems())
	assert.True(t, decimal.NewFromInt(447).Equal(store.TotalPrice()), store.TotalPrice().String())

	state := store.GetState()
	assert.Equal(t, 3, state.TotalItems)
	assert.True(t, decimal.NewFromInt(447).Equal(state.TotalPrice))
}

func TestCartStoreExactDecimalTotals(t *testing.T) {
	store := NewCartStore(nil)
	p := models.Product{ID: "1", Title: "Gum", Category: "Food", Price: decimal.RequireFromString("0.1")}
	for i := 0; i < 3; i++ {
		store.AddItem(p)
	}
	assert.Equal(t, "0.3", store.TotalPrice().String())
}

func TestCartStoreRemoveItemIsIdempotent(t *testing.T) {
	store := NewCartStore(nil)
	store.AddItem(testProduct("1", 10))
	store.AddItem(testProduct("2", 20))

	store.RemoveItem("1")
	once := store.Items()
	store.RemoveItem("1")

	assert.Equal(t, once, store.Items())
	require.Len(t, once, 1)
	assert.Equal(t, "2", once[0].ID)
}

func TestCartStoreClearCart(t *testing.T) {
	store := NewCartStore(nil)
	store.AddItem(testProduct("1", 10))
	store.AddItem(testProduct("2", 20))

	store.ClearCart()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.True(t, store.TotalPrice().IsZero())
}

func TestCartStoreUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		quantity int
		want     []models.CartItem
	}{
		{name: "sets quantity", id: "1", quantity: 5, want: []models.CartItem{{Product: testProduct("1", 10), Quantity: 5}}},
		{name: "zero removes", id: "1", quantity: 0, want: []models.CartItem{}},
		{name: "negative removes", id: "1", quantity: -2, want: []models.CartItem{}},
		{name: "unknown id is ignored", id: "9", quantity: 4, want: []models.CartItem{{Product: testProduct("1", 10), Quantity: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewCartStore(nil)
			store.AddItem(testProduct("1", 10))

			store.UpdateQuantity(tt.id, tt.quantity)

			assert.Equal(t, tt.want, store.Items())
		})
	}
}

func TestCartStoreNotifiesEverySubscriber(t *testing.T) {
	store := NewCartStore(nil)

	var first, second []models.CartSnapshot
	store.Subscribe(func(s models.CartSnapshot) { first = append(first, s) })
	store.Subscribe(func(s models.CartSnapshot) { second = append(second, s) })

	store.AddItem(testProduct("1", 10))

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.Len(t, first[0].Items, 1)
	assert.Equal(t, "1", first[0].Items[0].ID)
	assert.Equal(t, first[0], second[0])
	assert.Equal(t, uint64(1), first[0].Version)
}

func TestCartStoreNotifiesInRegistrationOrder(t *testing.T) {
	store := NewCartStore(nil)

	var order []string
	store.Subscribe(func(models.CartSnapshot) { order = append(order, "a") })
	store.Subscribe(func(models.CartSnapshot) { order = append(order, "b") })
	store.Subscribe(func(models.CartSnapshot) { order = append(order, "c") })

	store.ClearCart()

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestCartStoreNotifiesOnNoopMutations(t *testing.T) {
	store := NewCartStore(nil)

	calls := 0
	store.Subscribe(func(models.CartSnapshot) { calls++ })

	store.RemoveItem("missing")
	store.UpdateQuantity("missing", 3)
	store.ClearCart()

	assert.Equal(t, 3, calls)
	assert.Equal(t, uint64(3), store.GetState().Version)
}

func TestCartStoreUnsubscribe(t *testing.T) {
	store := NewCartStore(nil)

	calls := 0
	unsubscribe := store.Subscribe(func(models.CartSnapshot) { calls++ })
	store.AddItem(testProduct("1", 10))
	require.Equal(t, 1, store.SubscriberCount())

	unsubscribe()
	unsubscribe()
	store.AddItem(testProduct("1", 10))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, store.SubscriberCount())
}

func TestCartStoreListenerCanUnsubscribeAnother(t *testing.T) {
	store := NewCartStore(nil)

	var unsubscribeSecond func()
	secondCalls := 0
	store.Subscribe(func(models.CartSnapshot) { unsubscribeSecond() })
	unsubscribeSecond = store.Subscribe(func(models.CartSnapshot) { secondCalls++ })

	store.AddItem(testProduct("1", 10))

	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, store.SubscriberCount())
}

func TestCartStoreListenerCanRead(t *testing.T) {
	store := NewCartStore(nil)

	var seen int
	store.Subscribe(func(models.CartSnapshot) { seen = store.TotalItems() })
	store.AddItem(testProduct("1", 10))
	store.AddItem(testProduct("1", 10))

	assert.Equal(t, 2, seen)
}

func TestCartStoreCopiesProducts(t *testing.T) {
	store := NewCartStore(nil)
	rating := 4.0
	p := testProduct("1", 10)
	p.Rating = &rating

	store.AddItem(p)
	rating = 1
	p.Title = "Renamed"

	items := store.Items()
	assert.Equal(t, "Product 1", items[0].Title)
	assert.Equal(t, 4.0, *items[0].Rating)

	*items[0].Rating = 2
	items[0].Quantity = 99
	again := store.Items()
	assert.Equal(t, 4.0, *again[0].Rating)
	assert.Equal(t, 1, again[0].Quantity)
}

func TestCartStoreConcurrentMutations(t *testing.T) {
	store := NewCartStore(nil)

	var versions []uint64
	store.Subscribe(func(s models.CartSnapshot) { versions = append(versions, s.Version) })

	const workers, adds = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < adds; i++ {
				store.AddItem(testProduct("1", 1))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*adds, store.TotalItems())
	require.Len(t, versions, workers*adds)
	for i, v := range versions {
		assert.Equal(t, uint64(i+1), v)
	}
}
