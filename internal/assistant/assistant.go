// Package assistant provides the shopping-assistant reply capability.
// Any backend able to turn a question plus a catalog snapshot into a reply
// can satisfy Responder; the rest of the storefront never depends on which
// one is wired in.
package assistant

import (
	"context"
	"errors"

	"github.com/abdelghafour233/MATJARUNA/internal/store"
)

// ErrService wraps every backend failure (network, quota, malformed reply).
// Callers substitute a fixed apology message and keep the conversation usable.
var ErrService = errors.New("assistant service unavailable")

// Responder produces a natural-language reply to a customer question, given a
// snapshot of the current catalog for grounding. It never mutates store state.
type Responder interface {
	Reply(ctx context.Context, question string, products []store.Product) (string, error)
}
