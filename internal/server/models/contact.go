package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
)

// Status is the processing state of a contact submission.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusContacted Status = "CONTACTED"
)

func (s Status) Valid() bool {
	return s == StatusNew || s == StatusContacted
}

// Contact is a message submitted through one of the public tenant forms.
// PBD records which tenant surface received it.
type Contact struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	Status    Status    `json:"status" bson:"status"`
	PBD       bool      `json:"pbd" bson:"pbd"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// NewContact builds a fresh submission in the NEW state. ID and CreatedAt
// are assigned by the service before it is stored.
func NewContact(email, subject, message string, pbd bool) *Contact {
	return &Contact{
		Email:   email,
		Subject: subject,
		Message: message,
		Status:  StatusNew,
		PBD:     pbd,
	}
}

func ValidateContactID(id string) error {
	if strings.TrimSpace(id) == "" {
		return common.NewValidationError("id cannot be undefined")
	}
	return nil
}
