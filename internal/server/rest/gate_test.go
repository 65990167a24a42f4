package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Check(t *testing.T) {
	gate := NewGate(staticTokens{token: "good", userID: "u1"})

	t.Run("no cookie", func(t *testing.T) {
		res := gate.Check(httptest.NewRequest(http.MethodGet, "/pbd/contact", nil))
		assert.False(t, res.OK())
		require.ErrorIs(t, res.Reason(), common.ErrUnauthorized)
		assert.Contains(t, res.Reason().Error(), "missing token")
	})

	t.Run("empty cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/pbd/contact", nil)
		r.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: ""})
		assert.False(t, gate.Check(r).OK())
	})

	t.Run("bad token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/pbd/contact", nil)
		r.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: "forged"})
		res := gate.Check(r)
		assert.False(t, res.OK())
		require.ErrorIs(t, res.Reason(), common.ErrUnauthorized)
	})

	t.Run("token error kind is kept", func(t *testing.T) {
		g := NewGate(staticTokens{err: common.ErrTokenExpired})
		r := httptest.NewRequest(http.MethodGet, "/pbd/contact", nil)
		r.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: "old"})
		res := g.Check(r)
		require.ErrorIs(t, res.Reason(), common.ErrUnauthorized)
		require.ErrorIs(t, res.Reason(), common.ErrTokenExpired)
	})

	t.Run("authorized", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/pbd/contact", nil)
		r.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: "good"})
		res := gate.Check(r)
		assert.True(t, res.OK())
		assert.Equal(t, "u1", res.UserID())
		assert.NoError(t, res.Reason())
	})
}

func TestRoutePolicies_ProtectEverythingButSubmit(t *testing.T) {
	s := NewServer(Options{}, nopLogger(), &fakeAccounts{}, &fakeContacts{}, staticTokens{})

	for _, p := range s.routes() {
		switch {
		case p.Path == "/ping", p.Path == "/login", p.Path == "/create-account":
			assert.False(t, p.AuthRequired, "%s %s", p.Method, p.Path)
		case p.Method == http.MethodPost:
			assert.False(t, p.AuthRequired, "public submission %s", p.Path)
		default:
			assert.True(t, p.AuthRequired, "%s %s", p.Method, p.Path)
		}
	}
}

func TestGuard_RejectsBeforeHandler(t *testing.T) {
	contacts := &fakeContacts{}
	h := newTestServer(nil, contacts, nil)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		for _, path := range []string{"/pbd/contact", "/mesa/contact"} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", method, path)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		}
	}
	assert.Zero(t, contacts.calls, "no service call without a session")
}

func TestGuard_PassesUserID(t *testing.T) {
	s := NewServer(Options{}, nopLogger(), &fakeAccounts{}, &fakeContacts{}, staticTokens{token: "good", userID: "u42"})

	var got string
	h := s.guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: "good"})
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "u42", got)
}
