// Authentication HTTP handlers.
//
// This file exposes the REST endpoints for accounts and sessions:
//   - POST /auth/register  (create account)
//   - POST /auth/login     (verify credentials, issue session token)
//   - POST /auth/logout    (delete session)
//   - GET  /auth/me        (resolve current session)
//
// Handlers in this file are transport-thin: they validate input, delegate to
// application services, and translate service errors into HTTP results. The
// session token travels in the X-Session-ID header on subsequent requests.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coffeenote/go-deposit-backend/internal/http/middleware"
	"github.com/coffeenote/go-deposit-backend/internal/services"
)

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	// Username must be at least 3 characters.
	Username string `json:"username" binding:"required,min=3" example:"alice"`
	// Password must be at least 6 characters.
	Password string `json:"password" binding:"required,min=6" example:"s3cret-pw"`
	// ConfirmPassword must match Password.
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"s3cret-pw"`
}

// RegisterResponse confirms a created account.
type RegisterResponse struct {
	Username string `json:"username" example:"alice"`
	Message  string `json:"message" example:"✅ 註冊成功！請登入"`
}

// LoginRequest is the JSON payload for logging in.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cret-pw"`
}

// LoginResponse carries the issued session token and its expiry.
type LoginResponse struct {
	SessionID string    `json:"session_id" example:"a1b2c3d4e5f60718"`
	Username  string    `json:"username" example:"alice"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse identifies the user behind the current session.
type MeResponse struct {
	Username string `json:"username" example:"alice"`
}

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Validates the credentials and creates a new account. Usernames are
// @Description unique; the password confirmation must match.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object} handlers.RegisterResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     409  {object} handlers.ErrorResponse "Username already exists"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username, password and confirm_password are required")
		return
	}

	u, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTooShort):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username must be at least 3 characters")
		case errors.Is(err, services.ErrPasswordTooShort):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "password must be at least 6 characters")
		case errors.Is(err, services.ErrPasswordMismatch):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "passwords do not match")
		case errors.Is(err, services.ErrUserExists):
			fail(c, http.StatusConflict, ErrCodeConflict, "username already exists")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeRegisterFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, RegisterResponse{Username: u.Username, Message: "✅ 註冊成功！請登入"})
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Verifies credentials and issues a session token (valid 30 days). Send it
// @Description back in the X-Session-ID header on subsequent requests.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object} handlers.LoginResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401  {object} handlers.ErrorResponse "Unknown user or wrong password"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}

	sess, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusUnauthorized, ErrCodeLoginFailed, "user not found")
		case errors.Is(err, services.ErrBadCredentials):
			fail(c, http.StatusUnauthorized, ErrCodeLoginFailed, "wrong password")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, LoginResponse{
		SessionID: sess.ID,
		Username:  sess.Username,
		ExpiresAt: sess.ExpiresAt,
	})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Deletes the session named by the X-Session-ID header. Unknown tokens are
// @Description a no-op, so logout is safe to retry.
// @Tags        Auth
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"  example(a1b2c3d4e5f60718)
//
// @Success     204  {string} string "No Content"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	token, _ := middleware.SessionFrom(c)
	if token == "" {
		token = c.GetHeader(middleware.HeaderSessionID)
	}
	if token == "" {
		noContent(c)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current session
// @Description Resolves the X-Session-ID header to the logged-in username.
// @Tags        Auth
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"  example(a1b2c3d4e5f60718)
//
// @Success     200  {object} handlers.MeResponse
// @Failure     401  {object} handlers.ErrorResponse "Session invalid or expired"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	if user, okUser := middleware.UserFrom(c); okUser {
		ok(c, http.StatusOK, MeResponse{Username: user})
		return
	}

	// Fallback for routes mounted without the session middleware.
	token := c.GetHeader(middleware.HeaderSessionID)
	if token == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "login required")
		return
	}
	user, err := h.authSvc.Validate(c.Request.Context(), token)
	if err != nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "session invalid or expired")
		return
	}
	ok(c, http.StatusOK, MeResponse{Username: user})
}
