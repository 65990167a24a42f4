package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactdesk/internal/common"
)

type submitContactRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactIDRequest struct {
	ID string `json:"id"`
}

type submitContactResponse struct {
	ID string `json:"id"`
}

// handleSubmitContact is public. Every field is optional, so an empty body
// is accepted as an empty submission.
func (s *Server) handleSubmitContact(pbd bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitContactRequest
		if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
			s.fail(w, r, err)
			return
		}

		c, err := s.contacts.Submit(r.Context(), req.Email, req.Subject, req.Message, pbd)
		if err != nil {
			if errors.Is(err, common.ErrPersistence) {
				s.logger.Warn(r.Context(), "contact not saved", "error", err.Error())
				writeError(w, http.StatusBadRequest, "could not save contact")
				return
			}
			s.fail(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, submitContactResponse{ID: c.ID})
	}
}

func (s *Server) handleListContacts(pbd bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.contacts.ListByTenant(r.Context(), pbd)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) handleMarkContacted(w http.ResponseWriter, r *http.Request) {
	id, ok := s.contactID(w, r)
	if !ok {
		return
	}

	if err := s.contacts.MarkContacted(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleRemoveContact(w http.ResponseWriter, r *http.Request) {
	id, ok := s.contactID(w, r)
	if !ok {
		return
	}

	if err := s.contacts.Remove(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, struct{}{})
}

// contactID reads {"id": ...} from the body. On failure the response has
// already been written.
func (s *Server) contactID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req contactIDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, errEmptyBody) {
			err = common.NewValidationError("body cannot be undefined")
		}
		s.fail(w, r, err)
		return "", false
	}
	return req.ID, true
}
