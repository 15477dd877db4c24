package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmehra2102/otel-shop/internal/shop/domain"
	"github.com/dmehra2102/otel-shop/pkg/problem"
)

// NewHTTPClient returns the client shared by the backend clients: it dials with
// connectTimeout, follows redirects, stamps User-Agent and propagates trace context.
func NewHTTPClient(userAgent string, connectTimeout time.Duration) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext

	return &http.Client{
		Transport: otelhttp.NewTransport(userAgentTransport{ua: userAgent, next: base}),
	}
}

type userAgentTransport struct {
	ua   string
	next http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.ua)
	return t.next.RoundTrip(req)
}

type OrdersClient struct {
	http    *http.Client
	baseURL string
}

func NewOrdersClient(hc *http.Client, baseURL string) *OrdersClient {
	return &OrdersClient{http: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *OrdersClient) FindOrder(ctx context.Context, orderID string) (domain.Order, error) {
	return getJSON[domain.Order](ctx, c.http, c.baseURL+"/api/v1/orders/"+url.PathEscape(orderID), "order", orderID)
}

type ItemsClient struct {
	http    *http.Client
	baseURL string
}

func NewItemsClient(hc *http.Client, baseURL string) *ItemsClient {
	return &ItemsClient{http: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *ItemsClient) FindItem(ctx context.Context, itemID string) (domain.OrderItem, error) {
	return getJSON[domain.OrderItem](ctx, c.http, c.baseURL+"/api/v1/items/"+url.PathEscape(itemID), "item", itemID)
}

func getJSON[T any](ctx context.Context, hc *http.Client, target, resource, id string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return zero, fmt.Errorf("get %s %s: %w", resource, id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		nf := &NotFoundError{Resource: resource, ID: id}
		var d problem.Detail
		if err := json.NewDecoder(resp.Body).Decode(&d); err == nil {
			nf.Problem = &d
		}
		return zero, nf
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		_, _ = io.Copy(io.Discard, resp.Body)
		return zero, &StatusError{Resource: resource, ID: id, StatusCode: resp.StatusCode}
	}

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, fmt.Errorf("decode %s %s: empty body", resource, id)
		}
		return zero, fmt.Errorf("decode %s %s: %w", resource, id, err)
	}
	return v, nil
}
