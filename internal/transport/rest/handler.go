// Package rest provides the HTTP surface of the storefront. Handlers are pure
// consumers of the store: they read snapshots and invoke its operations, and
// hold no state of their own.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abdelghafour233/MATJARUNA/internal/assistant"
	"github.com/abdelghafour233/MATJARUNA/internal/notify"
	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/abdelghafour233/MATJARUNA/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store     *store.Store
	responder assistant.Responder
	publisher notify.Publisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewHandler creates the storefront API handler with its collaborators.
func NewHandler(st *store.Store, responder assistant.Responder, publisher notify.Publisher, logger *slog.Logger) *Handler {
	return &Handler{
		store:     st,
		responder: responder,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the storefront.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.FindAllProducts)
			r.Post("/", h.CreateProduct)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.FindProductByID)
				r.Put("/", h.UpdateProduct)
				r.Delete("/", h.DeleteProduct)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Route("/items/{id}", func(r chi.Router) {
				r.Put("/", h.UpdateCartItem)
				r.Delete("/", h.RemoveCartItem)
			})
		})

		r.Post("/checkout", h.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.FindAllOrders)
			r.Get("/stats", h.OrderStats)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/status", h.UpdateOrderStatus)
				r.Delete("/", h.DeleteOrder)
			})
		})

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.UpdateSettings)

		r.Post("/assistant", h.Chat)
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeValid decodes the request body into dst and runs struct validation.
// On failure it writes the error response and returns false.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// If the error is a validation error, we can extract field-specific errors.
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "oneof", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
