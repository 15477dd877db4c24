package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/otel-shop/internal/shop/domain"
)

func TestOrdersClient_FindOrder(t *testing.T) {
	var gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orderId":"o1","customerId":"johndoe","state":"New","dueDate":"2022-11-14T09:13:30Z","itemIds":["i1","i2"]}`))
	}))
	defer srv.Close()

	c := NewOrdersClient(NewHTTPClient("shop", time.Second), srv.URL+"/")
	o, err := c.FindOrder(context.Background(), "o1")
	require.NoError(t, err)

	assert.Equal(t, "shop", gotUA)
	assert.Equal(t, "/api/v1/orders/o1", gotPath)
	assert.Equal(t, "o1", o.OrderID)
	assert.Equal(t, "johndoe", o.CustomerID)
	assert.Equal(t, domain.StateNew, o.State)
	assert.True(t, o.DueDate.Equal(time.Date(2022, 11, 14, 9, 13, 30, 0, time.UTC)))
	assert.Equal(t, []string{"i1", "i2"}, o.ItemIDs)
}

func TestItemsClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"urn:problem-type:item-not-found","title":"Item not found: x","status":404}`))
	}))
	defer srv.Close()

	c := NewItemsClient(NewHTTPClient("shop", time.Second), srv.URL)
	_, err := c.FindItem(context.Background(), "x")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "x", nf.ID)
	require.NotNil(t, nf.Problem)
	assert.Equal(t, "urn:problem-type:item-not-found", nf.Problem.Type)
	assert.Equal(t, "Item not found: x", nf.Error())
}

func TestItemsClient_NotFoundWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewItemsClient(NewHTTPClient("shop", time.Second), srv.URL).FindItem(context.Background(), "x")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Nil(t, nf.Problem)
	assert.Equal(t, "item not found: x", nf.Error())
}

func TestItemsClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewItemsClient(NewHTTPClient("shop", time.Second), srv.URL).FindItem(context.Background(), "x")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestOrdersClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewOrdersClient(NewHTTPClient("shop", 200*time.Millisecond), url).FindOrder(context.Background(), "o1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get order o1")
}

func TestOrdersClient_EscapesID(t *testing.T) {
	var gotRaw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRaw = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewOrdersClient(NewHTTPClient("shop", time.Second), srv.URL).FindOrder(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/orders/a%2Fb", gotRaw)
}
