package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/abdelghafour233/MATJARUNA/pkg/web"
)

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description"`
	Price       int64  `json:"price"       validate:"gte=0"`
	Category    string `json:"category"    validate:"required,oneof=electronics home cars"`
	Image       string `json:"image"`
}

// ProductUpdateDto represents the data transfer object for updating a product.
// The ID comes from the request path, not the body.
type ProductUpdateDto struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description"`
	Price       int64  `json:"price"       validate:"gte=0"`
	Category    string `json:"category"    validate:"required,oneof=electronics home cars"`
	Image       string `json:"image"`
}

// FindAllProducts retrieves the full catalog.
func (h *Handler) FindAllProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	products := h.store.Products()
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(products))
	web.RespondJSON(w, mLogger, http.StatusOK, products)
}

// FindProductByID retrieves a product by its ID.
func (h *Handler) FindProductByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.store.ProductByID(id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// CreateProduct handles the creation of a new catalog product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto ProductCreateDto
	if !h.decodeValid(w, r, mLogger, &dto) {
		return
	}

	created := h.store.AddProduct(store.Product{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    store.Category(dto.Category),
		Image:       dto.Image,
	})
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// UpdateProduct replaces an existing catalog product.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto ProductUpdateDto
	if !h.decodeValid(w, r, mLogger, &dto) {
		return
	}

	updated, err := h.store.UpdateProduct(store.Product{
		ID:          id,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Category:    store.Category(dto.Category),
		Image:       dto.Image,
	})
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteProduct removes a product from the catalog. Orders that already
// reference it keep their frozen snapshots.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}
