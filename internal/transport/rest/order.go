package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abdelghafour233/MATJARUNA/internal/notify"
	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/abdelghafour233/MATJARUNA/pkg/web"
)

// CheckoutDto represents the data transfer object for the checkout form.
// All three fields are required; no further validation is applied.
type CheckoutDto struct {
	CustomerName string `json:"customerName" validate:"required"`
	City         string `json:"city"         validate:"required"`
	Phone        string `json:"phone"        validate:"required"`
}

// OrderStatusDto represents the data transfer object for an order status change.
type OrderStatusDto struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// OrderStatsDto carries the dashboard figures, recomputed from current state
// on every request.
type OrderStatsDto struct {
	TotalSales    int64 `json:"totalSales"`
	PendingOrders int   `json:"pendingOrders"`
}

// Checkout turns the current cart into a new pending order and clears the
// cart. The spreadsheet export runs after the order is recorded and never
// fails the request.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto CheckoutDto
	if !h.decodeValid(w, r, mLogger, &dto) {
		return
	}

	order, err := h.store.PlaceOrder(store.Customer{
		Name:  dto.CustomerName,
		City:  dto.City,
		Phone: dto.Phone,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			mLogger.WarnContext(r.Context(), "Checkout attempted with empty cart")
			web.RespondError(w, mLogger, http.StatusConflict, "Cart is empty")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error placing order", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to place order")
		return
	}

	if err := h.publisher.Publish(r.Context(), notify.NewOrderPlacedEvent(order)); err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to publish order placed event", "ID", order.ID, "error", err)
	}

	mLogger.InfoContext(r.Context(), "Order placed successfully", "ID", order.ID, "Total", order.Total)
	web.RespondJSON(w, mLogger, http.StatusCreated, order)
}

// FindAllOrders retrieves the order history, most recent first.
func (h *Handler) FindAllOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	orders := h.store.Orders()
	if orders == nil {
		orders = []store.Order{}
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved order list", "count", len(orders))
	web.RespondJSON(w, mLogger, http.StatusOK, orders)
}

// OrderStats returns the dashboard totals: sales across all orders and the
// number of pending orders.
func (h *Handler) OrderStats(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	stats := OrderStatsDto{
		TotalSales:    h.store.TotalSales(),
		PendingOrders: h.store.PendingOrders(),
	}
	mLogger.DebugContext(r.Context(), "Successfully computed order stats", "totalSales", stats.TotalSales, "pendingOrders", stats.PendingOrders)
	web.RespondJSON(w, mLogger, http.StatusOK, stats)
}

// UpdateOrderStatus replaces the status of an order, leaving all other fields
// untouched.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto OrderStatusDto
	if !h.decodeValid(w, r, mLogger, &dto) {
		return
	}

	updated, err := h.store.UpdateOrderStatus(id, store.OrderStatus(dto.Status))
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			mLogger.WarnContext(r.Context(), "Order not found for status update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Order with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating order status", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update order with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Order status updated", "ID", updated.ID, "Status", updated.Status)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteOrder removes an order from the history.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.store.DeleteOrder(id); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			mLogger.WarnContext(r.Context(), "Order not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Order with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting order", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete order with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Order deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}
