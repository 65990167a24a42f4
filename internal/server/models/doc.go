// Package models defines the server-side entities (users and contacts),
// their public JSON representations and the validation rules applied to
// incoming data before it reaches a service.
package models
