// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file resolves the X-Session-ID header into an authenticated user.
// Session persistence and expiry live in the service layer; the middleware
// only carries the transport concern of reading the header, invoking a
// narrow validator, and stashing the resolved username under the "userID"
// context key where logging, rate limiting, and handlers expect it.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderSessionID is the request header carrying the session token issued
// at login.
const HeaderSessionID = "X-Session-ID"

// SessionValidator resolves a session id to a username. It returns an error
// for unknown or expired sessions; any error is treated as "not logged in"
// at this layer.
type SessionValidator func(ctx context.Context, sessionID string) (username string, err error)

// SessionAuth returns a Gin middleware that authenticates requests by
// session header.
//
// Behavior:
//   - A valid session stores the username under "userID" and the raw token
//     under "sessionID", then proceeds.
//   - A missing or invalid session aborts with 401 and the standard error
//     envelope when required is true; otherwise the request proceeds
//     anonymously (userID unset).
//
// Place it after RequestID so 401 responses carry the correlation id.
func SessionAuth(validate SessionValidator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(HeaderSessionID))
		if token == "" {
			if required {
				unauthorized(c, "login required")
				return
			}
			c.Next()
			return
		}

		username, err := validate(c.Request.Context(), token)
		if err != nil || username == "" {
			if required {
				unauthorized(c, "session invalid or expired")
				return
			}
			c.Next()
			return
		}

		c.Set("userID", username)
		c.Set("sessionID", token)
		c.Next()
	}
}

// UserFrom returns the authenticated username stored by SessionAuth, if any.
func UserFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// SessionFrom returns the raw session token stored by SessionAuth, if any.
func SessionFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get("sessionID")
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// unauthorized aborts with the same envelope shape handlers.fail produces,
// without importing the handlers package (which depends on middleware).
func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    msg,
	})
}
