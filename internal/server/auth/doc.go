// Package auth holds the credential primitives of the server: password
// hashing with bcrypt and issuing/verifying HS256 session tokens.
package auth
