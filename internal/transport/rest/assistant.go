package rest

import (
	"net/http"

	"github.com/abdelghafour233/MATJARUNA/pkg/web"
)

// fallbackReply is shown whenever the assistant backend fails; the
// conversation stays usable.
const fallbackReply = "Sorry, a technical error occurred. Please try again later."

// ChatDto represents the data transfer object for an assistant question.
type ChatDto struct {
	Question string `json:"question" validate:"required"`
}

// ChatReplyDto represents the data transfer object for an assistant reply.
type ChatReplyDto struct {
	Reply string `json:"reply"`
}

// Chat answers a customer question using the assistant backend, grounded on a
// snapshot of the current catalog. Backend failures degrade to a fixed reply;
// nothing here touches store state beyond the product read.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto ChatDto
	if !h.decodeValid(w, r, mLogger, &dto) {
		return
	}

	reply, err := h.responder.Reply(r.Context(), dto.Question, h.store.Products())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Assistant backend failed", "error", err)
		web.RespondJSON(w, mLogger, http.StatusOK, ChatReplyDto{Reply: fallbackReply})
		return
	}

	mLogger.DebugContext(r.Context(), "Assistant replied", "length", len(reply))
	web.RespondJSON(w, mLogger, http.StatusOK, ChatReplyDto{Reply: reply})
}
