// Deposit HTTP handlers.
//
// This file exposes REST endpoints for coffee deposit resources:
//   - POST   /deposits             (add, idempotent via Idempotency-Key)
//   - GET    /deposits             (list, expiry-ordered, ETag support)
//   - POST   /deposits/{id}/redeem (consume one cup)
//   - DELETE /deposits/{id}        (remove a record)
//   - POST   /deposits/redeem     (consume one cup, addressed by label)
//   - POST   /deposits/delete     (remove a record, addressed by label)
//   - GET    /deposits/choices    (ordered labels for pickers)
//   - GET    /deposits/summary    (aggregated statistics)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
	"github.com/coffeenote/go-deposit-backend/internal/http/middleware"
	"github.com/coffeenote/go-deposit-backend/internal/repo"
	"github.com/coffeenote/go-deposit-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// DepositService defines the deposit lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DepositService interface {
	// Add validates and appends a new deposit to the user's collection.
	Add(ctx context.Context, userID string, in services.AddInput) (*domain.Deposit, error)
	// List returns the user's deposits ordered ascending by expiry date.
	List(ctx context.Context, userID string) ([]domain.Deposit, error)
	// RedeemOne consumes one cup: decrement, or delete when the last cup goes.
	RedeemOne(ctx context.Context, userID, id string) (*services.RedemptionResult, error)
	// RedeemOneByLabel resolves a display label and consumes one cup.
	RedeemOneByLabel(ctx context.Context, userID, label string) (*services.RedemptionResult, error)
	// Delete removes a deposit outright and returns its item name.
	Delete(ctx context.Context, userID, id string) (string, error)
	// DeleteByLabel resolves a display label and removes the deposit.
	DeleteByLabel(ctx context.Context, userID, label string) (string, error)
	// Choices returns the ordered label snapshot for the user's collection.
	Choices(ctx context.Context, userID string) (*services.ChoiceSnapshot, error)
	// Summary aggregates the user's collection into counters.
	Summary(ctx context.Context, userID string) (services.Summary, error)
}

// AuthService defines account and session operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AuthService interface {
	// Register creates a new account after validating the credentials.
	Register(ctx context.Context, username, password, confirm string) (*domain.User, error)
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Validate resolves a session token to its username.
	Validate(ctx context.Context, sessionID string) (string, error)
	// Logout deletes a session; unknown tokens are a no-op.
	Logout(ctx context.Context, sessionID string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for deposits and authentication.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	depSvc  DepositService
	authSvc AuthService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(depSvc DepositService, authSvc AuthService) *Handlers {
	return &Handlers{depSvc: depSvc, authSvc: authSvc}
}

// userID extracts the authenticated user id from Gin context (set by the
// session middleware). If absent, it falls back to "X-User-ID" header (tests
// use it), and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// AddDepositRequest is the JSON payload for adding a deposit.
//
// Exactly one of ExpiryDate (YYYY-MM-DD or an ISO datetime, the date part is
// kept) or DaysFromToday (>= 1) names the expiry; when both are present the
// explicit date wins.
type AddDepositRequest struct {
	// Item is the drink name, e.g. 美式咖啡.
	Item string `json:"item" binding:"required,min=1" example:"美式咖啡"`
	// Quantity is the number of cups, at least 1.
	Quantity int `json:"quantity" binding:"required,min=1" example:"5"`
	// Store is where the deposit was bought.
	Store string `json:"store" binding:"required,min=1" example:"7-11"`
	// RedeemMethod names how the cups are redeemed.
	RedeemMethod string `json:"redeemMethod" binding:"required,min=1" example:"Line禮物"`
	// ExpiryDate is the expiry as a date string.
	ExpiryDate string `json:"expiryDate,omitempty" example:"2025-12-31"`
	// DaysFromToday counts the expiry as N days from today.
	DaysFromToday int `json:"daysFromToday,omitempty" example:"30"`
}

// AddDepositResponse is the JSON envelope for a newly created deposit.
type AddDepositResponse struct {
	Message string          `json:"message" example:"✅ 新增成功！"`
	Deposit *domain.Deposit `json:"deposit"`
}

// ListDepositsResponse wraps the expiry-ordered deposit collection.
type ListDepositsResponse struct {
	Deposits []domain.Deposit `json:"deposits"`
	Total    int              `json:"total"`
}

// RedeemByLabelRequest addresses a deposit by its rendered display label.
type RedeemByLabelRequest struct {
	// Label is a display label previously returned by the choices endpoint.
	Label string `json:"label" binding:"required,min=1" example:"美式咖啡 - 7-11 (5杯) - 到期:2025/12/31"`
}

// RedemptionResponse is the JSON envelope for a redeem-one outcome.
type RedemptionResponse struct {
	Message string                     `json:"message" example:"✅ 已兌換一杯 美式咖啡，剩餘 4 杯"`
	Result  *services.RedemptionResult `json:"result"`
}

// DeletionResponse is the JSON envelope for an unconditional delete.
type DeletionResponse struct {
	Message string `json:"message" example:"✅ 已刪除 美式咖啡 的記錄"`
	Item    string `json:"item" example:"美式咖啡"`
}

// ChoicesResponse wraps the ordered label list for selection UIs.
type ChoicesResponse struct {
	Choices []services.Choice `json:"choices"`
}

// OptionsResponse lists the fixed store and redeem-method vocabularies plus
// the deep links shown next to each redeem method.
type OptionsResponse struct {
	Stores        []string                     `json:"stores"`
	RedeemMethods []string                     `json:"redeem_methods"`
	RedeemLinks   map[string]domain.RedeemLink `json:"redeem_links"`
}

//
// Helpers
//

// redeemMessage renders the user-facing confirmation for a redemption.
func redeemMessage(res *services.RedemptionResult) string {
	if res.Deleted {
		return fmt.Sprintf("✅ 已兌換最後一杯 %s，記錄已刪除", res.Item)
	}
	return fmt.Sprintf("✅ 已兌換一杯 %s，剩餘 %d 杯", res.Item, res.Remaining)
}

// deleteMessage renders the user-facing confirmation for a deletion.
func deleteMessage(item string) string {
	return fmt.Sprintf("✅ 已刪除 %s 的記錄", item)
}

//
// Handlers
//

// AddDeposit godoc
// @ID          addDeposit
// @Summary     Add a coffee deposit
// @Description Validates and appends a deposit to the user's collection.
// @Description Supports idempotency via the Idempotency-Key header (same key → same result).
// @Tags        Deposits
// @Accept      json
// @Produce     json
//
// @Param       X-Session-ID     header  string  true  "Session token"  example(a1b2c3d4e5f60718)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.AddDepositRequest  true  "Deposit payload"
//
// @Success     201  {object}  handlers.AddDepositResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /deposits [post]
func (h *Handlers) AddDeposit(c *gin.Context) {
	ctx := c.Request.Context()

	var req AddDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "item, quantity, store and redeemMethod are required")
		return
	}

	currentUser := userID(c)

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey == "" {
		idemKey = strings.TrimSpace(c.GetHeader(middleware.HeaderIdempotencyKey))
	}
	if idemKey != "" {
		if svc, okSvc := h.depSvc.(*services.DepositService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, currentUser, middleware.ScopeRouteAdd, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetDeposit(ctx, svc.DB, rec.DepositID, currentUser); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusCreated, AddDepositResponse{Message: "✅ 新增成功！", Deposit: prev})
					return
				}
			}
		}
	}

	d, err := h.depSvc.Add(ctx, currentUser, services.AddInput{
		Item:          req.Item,
		Quantity:      req.Quantity,
		Store:         req.Store,
		RedeemMethod:  req.RedeemMethod,
		ExpiryDate:    req.ExpiryDate,
		DaysFromToday: req.DaysFromToday,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "item, store and redeemMethod must be non-empty")
		case errors.Is(err, services.ErrBadQuantity):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "quantity must be a positive integer")
		case errors.Is(err, services.ErrBadDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "expiryDate must be a valid date (or daysFromToday >= 1)")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if svc, okSvc := h.depSvc.(*services.DepositService); okSvc && svc.DB != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, svc.DB, currentUser, middleware.ScopeRouteAdd, idemKey, d.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, AddDepositResponse{Message: "✅ 新增成功！", Deposit: d})
}

// ListDeposits godoc
// @ID          listDeposits
// @Summary     List deposits (expiry-ordered)
// @Description Returns the user's deposits ordered ascending by expiry date, blank dates last.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Deposits
// @Produce     json
//
// @Param       X-Session-ID   header  string  true  "Session token"               example(a1b2c3d4e5f60718)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
//
// @Success     200  {object} handlers.ListDepositsResponse
// @Header      200  {string} ETag           "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Not logged in"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /deposits [get]
func (h *Handlers) ListDeposits(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, ok := h.depSvc.(*services.DepositService); ok {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.DepositsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"deposits:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.depSvc.List(ctx, uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, ListDepositsResponse{Deposits: items, Total: len(items)})
}

// RedeemDeposit godoc
// @ID          redeemDeposit
// @Summary     Redeem one cup
// @Description Consumes one cup from the deposit: the quantity is decremented, or the
// @Description record deleted when the last cup goes.
// @Tags        Deposits
// @Accept      json
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"    example(a1b2c3d4e5f60718)
// @Param       id            path    string  true "Deposit ID (UUID)" format(uuid)
//
// @Success     200  {object} handlers.RedemptionResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Not logged in"
// @Failure     404  {object} handlers.ErrorResponse "Deposit not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /deposits/{id}/redeem [post]
func (h *Handlers) RedeemDeposit(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "deposit id must be a UUID")
		return
	}

	res, err := h.depSvc.RedeemOne(c.Request.Context(), userID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepositNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "deposit not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeRedeemFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, RedemptionResponse{Message: redeemMessage(res), Result: res})
}

// RedeemDepositByLabel godoc
// @ID          redeemDepositByLabel
// @Summary     Redeem one cup by display label
// @Description Resolves a display label from the user's latest choice snapshot and
// @Description consumes one cup from the matching deposit. Stale labels return 404.
// @Tags        Deposits
// @Accept      json
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"  example(a1b2c3d4e5f60718)
// @Param       body          body    handlers.RedeemByLabelRequest  true  "Label payload"
//
// @Success     200  {object} handlers.RedemptionResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Not logged in"
// @Failure     404  {object} handlers.ErrorResponse "Label did not resolve"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /deposits/redeem [post]
func (h *Handlers) RedeemDepositByLabel(c *gin.Context) {
	var req RedeemByLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Label) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "label required")
		return
	}

	res, err := h.depSvc.RedeemOneByLabel(c.Request.Context(), userID(c), req.Label)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepositNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "deposit not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeRedeemFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, RedemptionResponse{Message: redeemMessage(res), Result: res})
}

// DeleteDeposit godoc
// @ID          deleteDeposit
// @Summary     Delete a deposit
// @Description Removes the deposit outright, regardless of its remaining quantity.
// @Tags        Deposits
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"    example(a1b2c3d4e5f60718)
// @Param       id            path    string  true "Deposit ID (UUID)" format(uuid)
//
// @Success     200  {object} handlers.DeletionResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Not logged in"
// @Failure     404  {object} handlers.ErrorResponse "Deposit not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /deposits/{id} [delete]
func (h *Handlers) DeleteDeposit(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "deposit id must be a UUID")
		return
	}

	item, err := h.depSvc.Delete(c.Request.Context(), userID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepositNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "deposit not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, DeletionResponse{Message: deleteMessage(item), Item: item})
}

// DeleteDepositByLabel godoc
// @ID          deleteDepositByLabel
// @Summary     Delete a deposit by display label
// @Description Resolves a display label from the user's latest choice snapshot and
// @Description removes the matching deposit. Stale labels return 404.
// @Tags        Deposits
// @Accept      json
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"  example(a1b2c3d4e5f60718)
// @Param       body          body    handlers.RedeemByLabelRequest  true  "Label payload"
//
// @Success     200  {object} handlers.DeletionResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Not logged in"
// @Failure     404  {object} handlers.ErrorResponse "Label did not resolve"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /deposits/delete [post]
func (h *Handlers) DeleteDepositByLabel(c *gin.Context) {
	var req RedeemByLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Label) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "label required")
		return
	}

	item, err := h.depSvc.DeleteByLabel(c.Request.Context(), userID(c), req.Label)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepositNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "deposit not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, DeletionResponse{Message: deleteMessage(item), Item: item})
}

// ListChoices godoc
// @ID          listChoices
// @Summary     List deposit display labels
// @Description Returns the ordered label list for selection UIs. Labels embed item,
// @Description store, remaining cups, formatted expiry date, and an expiry status tag.
// @Tags        Deposits
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"  example(a1b2c3d4e5f60718)
//
// @Success     200  {object} handlers.ChoicesResponse
// @Failure     401  {object} handlers.ErrorResponse "Not logged in"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /deposits/choices [get]
func (h *Handlers) ListChoices(c *gin.Context) {
	snap, err := h.depSvc.Choices(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ChoicesResponse{Choices: snap.Choices})
}

// GetSummary godoc
// @ID          getSummary
// @Summary     Deposit statistics
// @Description Aggregates the user's collection: total cups, record count, and
// @Description mutually exclusive expiry status counters.
// @Tags        Deposits
// @Produce     json
//
// @Param       X-Session-ID  header  string  true "Session token"  example(a1b2c3d4e5f60718)
//
// @Success     200  {object} services.Summary
// @Failure     401  {object} handlers.ErrorResponse "Not logged in"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /deposits/summary [get]
func (h *Handlers) GetSummary(c *gin.Context) {
	sum, err := h.depSvc.Summary(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, sum)
}

// GetOptions godoc
// @ID          getOptions
// @Summary     Fixed input vocabularies
// @Description Returns the store list, redeem method list, and per-method deep links
// @Description used to populate add-deposit forms. No authentication required.
// @Tags        Options
// @Produce     json
//
// @Success     200  {object} handlers.OptionsResponse
// @Router      /options [get]
func (h *Handlers) GetOptions(c *gin.Context) {
	ok(c, http.StatusOK, OptionsResponse{
		Stores:        domain.StoreOptions,
		RedeemMethods: domain.RedeemMethods,
		RedeemLinks:   domain.RedeemLinks,
	})
}
