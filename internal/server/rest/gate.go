package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/contactdesk/internal/common"
)

// TokenVerifier resolves a session token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// GateResult is the outcome of a session check: either Authorized with a
// user id or Rejected with a reason.
type GateResult struct {
	userID string
	reason error
}

func Authorized(userID string) GateResult { return GateResult{userID: userID} }

func Rejected(reason error) GateResult { return GateResult{reason: reason} }

func (g GateResult) OK() bool       { return g.reason == nil }
func (g GateResult) UserID() string { return g.userID }

// Reason is nil for an authorized result. Otherwise it matches
// common.ErrUnauthorized and wraps the underlying token error, if any.
func (g GateResult) Reason() error { return g.reason }

// Gate checks the session cookie of a request. It holds no per-request
// state.
type Gate struct {
	tokens TokenVerifier
}

func NewGate(tokens TokenVerifier) *Gate {
	return &Gate{tokens: tokens}
}

func (g *Gate) Check(r *http.Request) GateResult {
	cookie, err := r.Cookie(common.TokenCookieName)
	if err != nil || cookie.Value == "" {
		return Rejected(fmt.Errorf("%w: missing token", common.ErrUnauthorized))
	}

	userID, err := g.tokens.Verify(cookie.Value)
	if err != nil {
		return Rejected(fmt.Errorf("%w: %w", common.ErrUnauthorized, err))
	}

	return Authorized(userID)
}

// guard runs the gate before next. A rejected request is answered with 401
// and next is never invoked.
func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := s.gate.Check(r)
		if !res.OK() {
			s.logger.Debug(r.Context(), "request rejected", "path", r.URL.Path, "reason", res.Reason().Error())
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), res.UserID())))
	})
}

type ctxKey string

const userIDKey ctxKey = "userID"

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id stored by the gate, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
