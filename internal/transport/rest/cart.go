package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/abdelghafour233/MATJARUNA/pkg/web"
)

// CartItemAddDto represents the data transfer object for adding a product to the cart.
type CartItemAddDto struct {
	ProductID string `json:"productId" validate:"required"`
}

// CartQuantityDto represents the data transfer object for setting a cart line quantity.
// A quantity of zero or less removes the line, so no lower bound is enforced.
type CartQuantityDto struct {
	Quantity int `json:"quantity"`
}

// CartViewDto is the cart contents plus the figures derived from them.
type CartViewDto struct {
	Items    []store.CartItem `json:"items"`
	Count    int              `json:"count"`
	Subtotal int64            `json:"subtotal"`
	Shipping int64            `json:"shipping"`
	Total    int64            `json:"total"`
}

// toCartView converts a store cart summary to its transfer shape.
func toCartView(summary store.CartSummary) CartViewDto {
	view := CartViewDto{
		Items:    summary.Items,
		Count:    summary.Count,
		Subtotal: summary.Subtotal,
		Shipping: summary.Shipping,
		Total:    summary.Total,
	}
	if view.Items == nil {
		view.Items = []store.CartItem{}
	}
	return view
}

// GetCart returns the current cart with its derived totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	view := toCartView(h.store.CartSummary())
	mLogger.DebugContext(r.Context(), "Successfully retrieved cart", "count", view.Count)
	web.RespondJSON(w, mLogger, http.StatusOK, view)
}

// AddCartItem adds one unit of a catalog product to the cart.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto CartItemAddDto
	if !h.decodeValid(w, r, mLogger, &dto) {
		return
	}

	product, err := h.store.ProductByID(dto.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for cart add", "ID", dto.ProductID)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", dto.ProductID))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product for cart add", "ID", dto.ProductID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add product to cart")
		return
	}

	h.store.AddToCart(product)
	mLogger.InfoContext(r.Context(), "Product added to cart", "ID", product.ID, "Name", product.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, toCartView(h.store.CartSummary()))
}

// UpdateCartItem sets the quantity of a cart line. Unknown product IDs are a
// no-op, matching the store semantics.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto CartQuantityDto
	if !h.decodeValid(w, r, mLogger, &dto) {
		return
	}

	h.store.UpdateCartQuantity(id, dto.Quantity)
	mLogger.InfoContext(r.Context(), "Cart quantity updated", "ID", id, "quantity", dto.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, toCartView(h.store.CartSummary()))
}

// RemoveCartItem drops a cart line. Unknown product IDs are a no-op.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	h.store.RemoveFromCart(id)
	mLogger.InfoContext(r.Context(), "Cart line removed", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, toCartView(h.store.CartSummary()))
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	h.store.ClearCart()
	mLogger.InfoContext(r.Context(), "Cart cleared")
	w.WriteHeader(http.StatusNoContent)
}
