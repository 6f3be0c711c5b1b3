package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/muhammadheryan/warehouse/model"
	"github.com/muhammadheryan/warehouse/repository/cart"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (cart.CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cart.NewCartRepository(client, time.Hour), mr
}

func TestCartRepository_RoundTrip(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	empty, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), empty.CustomerID)
	assert.True(t, empty.Empty())

	c := &model.Cart{CustomerID: 42}
	require.NoError(t, c.Add(model.CartItem{ProductID: 7, Quantity: 2}))
	require.NoError(t, c.Add(model.CartItem{ProductID: 9, Quantity: 1}))
	require.NoError(t, repo.Save(ctx, c))
	assert.True(t, mr.Exists("cart:customer:42"))
	assert.Equal(t, time.Hour, mr.TTL("cart:customer:42"))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []model.CartItem{{ProductID: 7, Quantity: 2}, {ProductID: 9, Quantity: 1}}, got.Items)

	require.NoError(t, repo.Delete(ctx, 42))
	assert.False(t, mr.Exists("cart:customer:42"))
}

func TestCartRepository_Expires(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.Cart{CustomerID: 1, Items: []model.CartItem{{ProductID: 3, Quantity: 1}}}))
	mr.FastForward(2 * time.Hour)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}
