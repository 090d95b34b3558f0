package rest

import (
	"net/http"

	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/abdelghafour233/MATJARUNA/pkg/web"
)

// GetSettings returns the integration settings record.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.store.Settings())
}

// UpdateSettings replaces the whole settings record. Settings are purely
// descriptive configuration, so any strings are accepted, including empty.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var settings store.Settings
	if !h.decodeValid(w, r, mLogger, &settings) {
		return
	}

	h.store.SetSettings(settings)
	mLogger.InfoContext(r.Context(), "Settings updated")
	web.RespondJSON(w, mLogger, http.StatusOK, settings)
}
