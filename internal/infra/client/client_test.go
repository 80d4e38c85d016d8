package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverFor(t *testing.T, service string, server *httptest.Server) registry.Resolver {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return registry.NewStaticResolver(map[string][]string{service: {u.Host}})
}

func TestProductClientFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":1,"name":"iPhone","price":"1000","stockQuantity":20,"active":true}}`))
	}))
	defer server.Close()

	c := NewProductClient(resolverFor(t, "product", server))
	product, state := c.GetProductDetails(context.Background(), "1")

	assert.Equal(t, LookupFound, state)
	require.NotNil(t, product)
	assert.Equal(t, 20, product.StockQuantity)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(1000)))
}

func TestProductClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewProductClient(resolverFor(t, "product", server))
	product, state := c.GetProductDetails(context.Background(), "99")

	assert.Equal(t, LookupNotFound, state)
	assert.Nil(t, product)
}

func TestProductClientUnavailableOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewProductClient(resolverFor(t, "product", server))
	_, state := c.GetProductDetails(context.Background(), "1")

	assert.Equal(t, LookupUnavailable, state)
}

func TestUserClientUnavailableWhenUnreachable(t *testing.T) {
	// 沒人監聽的位址
	resolver := registry.NewStaticResolver(map[string][]string{"user": {"127.0.0.1:1"}})

	c := NewUserClient(resolver)
	user, state := c.GetUserDetails(context.Background(), "user1")

	assert.Equal(t, LookupUnavailable, state)
	assert.Nil(t, user)
}

func TestUserClientUnavailableWhenUnresolved(t *testing.T) {
	resolver := registry.NewStaticResolver(map[string][]string{})

	c := NewUserClient(resolver)
	_, state := c.GetUserDetails(context.Background(), "user1")

	assert.Equal(t, LookupUnavailable, state)
}

func TestUserClientFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/7", r.URL.Path)
		w.Write([]byte(`{"data":{"id":7,"email":"user@test.com"}}`))
	}))
	defer server.Close()

	c := NewUserClient(resolverFor(t, "user", server))
	user, state := c.GetUserDetails(context.Background(), "7")

	assert.Equal(t, LookupFound, state)
	require.NotNil(t, user)
	assert.Equal(t, "user@test.com", user.Email)
}
