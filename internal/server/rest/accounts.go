package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest accepts both {"email","password"} and the older nested
// {"user":{"email","password"}} form.
type loginRequest struct {
	credentials
	User *credentials `json:"user"`
}

func (l loginRequest) resolve() credentials {
	if l.User != nil && l.Email == "" && l.Password == "" {
		return *l.User
	}
	return l.credentials
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	PBD      bool   `json:"pbd"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, bodyError(err))
		return
	}

	c := req.resolve()
	res, err := s.accounts.Login(r.Context(), c.Email, c.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	setSessionCookie(w, res.Token, res.MaxAge)
	writeJSON(w, http.StatusOK, loginResponse{Token: res.Token})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, bodyError(err))
		return
	}

	user, err := s.accounts.CreateAccount(r.Context(), req.Email, req.Password, req.PBD)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func bodyError(err error) error {
	if errors.Is(err, errEmptyBody) {
		return common.NewValidationError("request body can not be undefined")
	}
	return err
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().Add(maxAge),
	})
}
