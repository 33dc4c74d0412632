// pkg/client/api.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// API is a thin typed wrapper over the storefront HTTP interface. It owns the
// bearer token for the current shopper session and translates HTTP statuses
// into the shared error taxonomy.
type API struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewAPI creates an API client for the given base URL (including the /api/v1
// prefix). A nil httpClient gets a default with a 10 second timeout.
func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login authenticates the shopper and stores the access token for subsequent
// calls.
func (a *API) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	if err := a.do(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp, nil); err != nil {
		return err
	}
	a.token = resp.AccessToken
	return nil
}

// Products fetches the product catalog.
func (a *API) Products(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	err := a.do(ctx, http.MethodGet, "/products", nil, &products, nil)
	return products, err
}

// CartItems fetches the authoritative cart snapshot.
func (a *API) CartItems(ctx context.Context) (cart.Snapshot, error) {
	var snapshot cart.Snapshot
	err := a.do(ctx, http.MethodGet, "/cart-items", nil, &snapshot, nil)
	return snapshot, err
}

type addCartItemRequest struct {
	ProductID uint `json:"productId"`
}

// AddCartItem appends a new line for the product and returns it. The line id
// is minted by the store and echoed in the Location header.
func (a *API) AddCartItem(ctx context.Context, productID uint) (cart.Item, error) {
	var item cart.Item
	var location string
	if err := a.do(ctx, http.MethodPost, "/cart-items", addCartItemRequest{ProductID: productID}, &item, &location); err != nil {
		return cart.Item{}, err
	}
	if item.ID == 0 {
		id, err := parseLocationID(location)
		if err != nil {
			return cart.Item{}, apperrors.ServerError("unparseable cart item location", err)
		}
		item.ID = id
	}
	return item, nil
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItemQuantity sets the line's quantity and returns the updated
// snapshot.
func (a *API) UpdateCartItemQuantity(ctx context.Context, itemID uint, quantity int) (cart.Snapshot, error) {
	var snapshot cart.Snapshot
	path := fmt.Sprintf("/cart-items/%d", itemID)
	err := a.do(ctx, http.MethodPatch, path, updateCartItemRequest{Quantity: quantity}, &snapshot, nil)
	return snapshot, err
}

// RemoveCartItem deletes one cart line.
func (a *API) RemoveCartItem(ctx context.Context, itemID uint) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/cart-items/%d", itemID), nil, nil, nil)
}

// CheckoutCosts fetches the server-computed cost summary for the given line
// ids.
func (a *API) CheckoutCosts(ctx context.Context, itemIDs []uint) (cart.CheckoutCosts, error) {
	path := "/cart-items/costs"
	if len(itemIDs) > 0 {
		parts := make([]string, len(itemIDs))
		for i, id := range itemIDs {
			parts[i] = strconv.FormatUint(uint64(id), 10)
		}
		path += "?cartItemIds=" + strings.Join(parts, ",")
	}

	var costs cart.CheckoutCosts
	err := a.do(ctx, http.MethodGet, path, nil, &costs, nil)
	return costs, err
}

// CreateOrder submits the order and returns the created order.
func (a *API) CreateOrder(ctx context.Context, in order.CreateOrderInput) (*order.Order, error) {
	var o order.Order
	if err := a.do(ctx, http.MethodPost, "/orders", in, &o, nil); err != nil {
		return nil, err
	}
	return &o, nil
}

// Orders fetches the shopper's order history, newest first.
func (a *API) Orders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := a.do(ctx, http.MethodGet, "/orders", nil, &orders, nil)
	return orders, err
}

// Order fetches one order by id.
func (a *API) Order(ctx context.Context, orderID uint) (*order.Order, error) {
	var o order.Order
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, &o, nil); err != nil {
		return nil, err
	}
	return &o, nil
}

// MemberInformation fetches the shopper's current rank information.
func (a *API) MemberInformation(ctx context.Context) (member.Information, error) {
	var info member.Information
	err := a.do(ctx, http.MethodGet, "/members/me", nil, &info, nil)
	return info, err
}

type errorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// do performs one request. A non-nil out receives the decoded response body;
// a non-nil location receives the Location header.
func (a *API) do(ctx context.Context, method, path string, body, out interface{}, location *string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.ServerError("encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return apperrors.ServerError("build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return apperrors.ServerError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if location != nil {
		*location = resp.Header.Get("Location")
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.ServerError("decode response body", err)
		}
	}
	return nil
}

// statusError maps an error response onto the shared taxonomy, carrying the
// server's errorMessage through when present.
func statusError(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	message := body.ErrorMessage
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound("%s", message)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apperrors.BadRequest("%s", message)
	default:
		return apperrors.ServerError(message, nil)
	}
}

// parseLocationID extracts the trailing numeric id from a Location header
// such as "/cart-items/42".
func parseLocationID(location string) (uint, error) {
	idx := strings.LastIndexByte(location, '/')
	if idx < 0 || idx == len(location)-1 {
		return 0, fmt.Errorf("no id in location %q", location)
	}
	id, err := strconv.ParseUint(location[idx+1:], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id in location %q: %w", location, err)
	}
	return uint(id), nil
}
