package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdelghafour233/MATJARUNA/internal/notify"
	"github.com/abdelghafour233/MATJARUNA/internal/storage"
	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResponder is a mock implementation of the assistant.Responder interface
type mockResponder struct {
	reply string
	error error
}

func (m *mockResponder) Reply(_ context.Context, _ string, _ []store.Product) (string, error) {
	if m.error != nil {
		return "", m.error
	}
	return m.reply, nil
}

// mockPublisher records published events and can simulate delivery failure.
type mockPublisher struct {
	events []notify.Event
	error  error
}

func (m *mockPublisher) Publish(_ context.Context, event notify.Event) error {
	m.events = append(m.events, event)
	return m.error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T) (*Handler, *store.Store, *mockPublisher) {
	t.Helper()
	s := store.New(storage.NewMemory(), testLogger())
	publisher := &mockPublisher{}
	h := NewHandler(s, &mockResponder{reply: "hello"}, publisher, testLogger())
	return h, s, publisher
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func Test_Handler_FindAllProducts(t *testing.T) {
	// given a fresh shop
	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rr := httptest.NewRecorder()

	// when
	h.FindAllProducts(rr, req)

	// then the seed catalog comes back
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, toJSON(t, store.SeedProducts()), rr.Body.String())
}

func Test_Handler_FindProductByID(t *testing.T) {
	testCases := []struct {
		name         string
		productID    string
		expectedCode int
	}{
		{name: "Success - product found", productID: "1", expectedCode: http.StatusOK},
		{name: "Error - product not found", productID: "ghost", expectedCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h, _, _ := newTestHandler(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			h.FindProductByID(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusNotFound {
				assert.JSONEq(t, toJSON(t, ErrorResponse{Error: "Product with ID ghost not found"}), rr.Body.String())
			}
		})
	}
}

func Test_Handler_CreateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{
			name:         "Success - product created",
			body:         `{"name":"Hand Mixer","description":"Compact","price":250,"category":"home","image":"https://example.com/m.jpg"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Error - missing name",
			body:         `{"price":250,"category":"home"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - unknown category",
			body:         `{"name":"Hand Mixer","price":250,"category":"toys"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - negative price",
			body:         `{"name":"Hand Mixer","price":-1,"category":"home"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - malformed body",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h, s, _ := newTestHandler(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			h.CreateProduct(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusCreated {
				var created store.Product
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
				assert.NotEmpty(t, created.ID)
				assert.Equal(t, "Hand Mixer", created.Name)

				// the product landed in the catalog
				_, err := s.ProductByID(created.ID)
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Handler_DeleteProduct(t *testing.T) {
	h, s, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/1", nil)
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()

	h.DeleteProduct(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	_, err := s.ProductByID("1")
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func Test_Handler_CartFlow(t *testing.T) {
	h, _, _ := newTestHandler(t)

	// add product 1 twice
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"1"}`))
		rr := httptest.NewRecorder()
		h.AddCartItem(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// read the cart
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rr := httptest.NewRecorder()
	h.GetCart(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var view CartViewDto
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, int64(9000), view.Subtotal)
	assert.Equal(t, store.FlatShippingFee, view.Shipping)
	assert.Equal(t, int64(9030), view.Total)

	// set the quantity down to one
	req = httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/1", strings.NewReader(`{"quantity":1}`))
	req.SetPathValue("id", "1")
	rr = httptest.NewRecorder()
	h.UpdateCartItem(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// clear everything
	rr = httptest.NewRecorder()
	h.ClearCart(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	h.GetCart(rr, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
}

func Test_Handler_AddCartItem_UnknownProduct(t *testing.T) {
	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"ghost"}`))
	rr := httptest.NewRecorder()

	h.AddCartItem(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, toJSON(t, ErrorResponse{Error: "Product with ID ghost not found"}), rr.Body.String())
}

func Test_Handler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		fillCart     bool
		body         string
		expectedCode int
	}{
		{
			name:         "Success - order placed",
			fillCart:     true,
			body:         `{"customerName":"Amal","city":"Rabat","phone":"0600000000"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Error - empty cart",
			fillCart:     false,
			body:         `{"customerName":"Amal","city":"Rabat","phone":"0600000000"}`,
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Error - missing phone",
			fillCart:     true,
			body:         `{"customerName":"Amal","city":"Rabat"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h, s, publisher := newTestHandler(t)
			if tc.fillCart {
				product, err := s.ProductByID("2")
				require.NoError(t, err)
				s.AddToCart(product)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			h.Checkout(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusCreated {
				var order store.Order
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
				assert.Equal(t, "Amal", order.CustomerName)
				assert.Equal(t, store.StatusPending, order.Status)
				assert.Equal(t, int64(850+30), order.Total)
				assert.Empty(t, s.Cart(), "cart must be cleared after checkout")

				// an export event went out for the new order
				require.Len(t, publisher.events, 1)
				event, ok := publisher.events[0].(notify.OrderPlacedEvent)
				require.True(t, ok)
				assert.Equal(t, order.ID, event.OrderID)
			} else {
				assert.Empty(t, publisher.events)
			}
		})
	}
}

func Test_Handler_Checkout_PublishFailureDoesNotFailRequest(t *testing.T) {
	h, s, publisher := newTestHandler(t)
	publisher.error = errors.New("webhook down")
	product, err := s.ProductByID("1")
	require.NoError(t, err)
	s.AddToCart(product)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"customerName":"Amal","city":"Rabat","phone":"0600000000"}`))
	rr := httptest.NewRecorder()

	h.Checkout(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Len(t, s.Orders(), 1)
}

func Test_Handler_OrderStats(t *testing.T) {
	h, s, _ := newTestHandler(t)
	product, err := s.ProductByID("2")
	require.NoError(t, err)
	s.AddToCart(product)
	placed, err := s.PlaceOrder(store.Customer{Name: "A", City: "B", Phone: "C"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/stats", nil)
	rr := httptest.NewRecorder()

	h.OrderStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, toJSON(t, OrderStatsDto{TotalSales: placed.Total, PendingOrders: 1}), rr.Body.String())
}

func Test_Handler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		orderExists  bool
		body         string
		expectedCode int
	}{
		{name: "Success - status updated", orderExists: true, body: `{"status":"completed"}`, expectedCode: http.StatusOK},
		{name: "Error - unknown status", orderExists: true, body: `{"status":"shipped"}`, expectedCode: http.StatusBadRequest},
		{name: "Error - order not found", orderExists: false, body: `{"status":"completed"}`, expectedCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			h, s, _ := newTestHandler(t)
			orderID := "ghost"
			if tc.orderExists {
				product, err := s.ProductByID("1")
				require.NoError(t, err)
				s.AddToCart(product)
				placed, err := s.PlaceOrder(store.Customer{Name: "A", City: "B", Phone: "C"})
				require.NoError(t, err)
				orderID = placed.ID
			}
			req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+orderID+"/status", strings.NewReader(tc.body))
			req.SetPathValue("id", orderID)
			rr := httptest.NewRecorder()

			// when
			h.UpdateOrderStatus(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusOK {
				var updated store.Order
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
				assert.Equal(t, store.StatusCompleted, updated.Status)
			}
		})
	}
}

func Test_Handler_Settings(t *testing.T) {
	h, _, _ := newTestHandler(t)

	// defaults first
	rr := httptest.NewRecorder()
	h.GetSettings(rr, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, toJSON(t, store.DefaultSettings()), rr.Body.String())

	// replace the whole record, empty strings included
	body := `{"fbPixelId":"fb-1","googleAnalyticsId":"","tiktokPixelId":"","googleSheetUrl":"https://sheet.example/hook","domainName":"","nameServers":""}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
	rr = httptest.NewRecorder()
	h.UpdateSettings(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.GetSettings(rr, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	assert.JSONEq(t, body, rr.Body.String())
}

func Test_Handler_Chat(t *testing.T) {
	testCases := []struct {
		name          string
		responder     *mockResponder
		body          string
		expectedCode  int
		expectedReply string
	}{
		{
			name:          "Success - assistant replied",
			responder:     &mockResponder{reply: "The blender fits your budget."},
			body:          `{"question":"What fits a 1000 MAD budget?"}`,
			expectedCode:  http.StatusOK,
			expectedReply: "The blender fits your budget.",
		},
		{
			name:          "Degraded - backend failure yields fallback",
			responder:     &mockResponder{error: errors.New("upstream timeout")},
			body:          `{"question":"Anything?"}`,
			expectedCode:  http.StatusOK,
			expectedReply: fallbackReply,
		},
		{
			name:         "Error - empty question",
			responder:    &mockResponder{reply: "unused"},
			body:         `{"question":""}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := store.New(storage.NewMemory(), testLogger())
			h := NewHandler(s, tc.responder, &mockPublisher{}, testLogger())
			req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			h.Chat(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusOK {
				assert.JSONEq(t, toJSON(t, ChatReplyDto{Reply: tc.expectedReply}), rr.Body.String())
			}
		})
	}
}
