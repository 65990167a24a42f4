package common

import "time"

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// DefaultTokenValidity is the session token lifetime (3,600,000 ms).
const DefaultTokenValidity = time.Hour
