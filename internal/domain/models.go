// Package domain defines the persistence models for users, sessions, and
// coffee deposits. These types are mapped with GORM and form the core data
// layer of the deposit tracker.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// FarFutureDate is the sentinel used to sort deposits with a blank or
// unparsable expiry date after every dated record.
const FarFutureDate = "9999-12-31"

// User is a registered account. Usernames are unique and own exactly one
// deposit collection; there is no sharing between users.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Username: unique login name (3+ chars, enforced in the service layer).
//   - PasswordHash: hex-encoded SHA-256 of the password. Deliberately a
//     single unsalted pass; hardening is out of scope.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID           string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Username     string         `json:"username"   gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	PasswordHash string         `json:"-"          gorm:"type:char(64);not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Session is a login session resolved from the X-Session-ID header. Sessions
// expire after a fixed window (30 days by default) and are swept lazily.
//
// Fields:
//   - ID: opaque session token (16 hex chars), primary key.
//   - Username: owner of the session.
//   - CreatedAt: issue time.
//   - ExpiresAt: hard expiry; a session past this instant is invalid and
//     deleted on first sight.
type Session struct {
	ID        string    `json:"id"         gorm:"type:varchar(36);primaryKey"`
	Username  string    `json:"username"   gorm:"type:varchar(64);not null;index:idx_session_user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "sessions" }

// Deposit is one prepaid, not-yet-fully-redeemed batch of coffee cups tied
// to a store and a redemption channel.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the owner; indexed for per-user listing.
//   - Item: display name of the drink (free text, NFC-normalized on create).
//   - Quantity: remaining cups; always >= 1 for a persisted row. A
//     redemption that would reach 0 deletes the row instead.
//   - Store: store name from a small advisory set.
//   - RedeemMethod: redemption channel name; mapped to a deep link by a
//     static lookup table outside the core.
//   - ExpiryDate: calendar date "YYYY-MM-DD" with no time component. Kept
//     as text so historically malformed values survive listing and merely
//     classify as Normal.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// Quantity is the only field mutated after creation; everything else is
// write-once.
type Deposit struct {
	ID           string         `json:"id"           gorm:"type:char(36);primaryKey"`
	UserID       string         `json:"user_id"      gorm:"type:varchar(64);not null;index:idx_user_deposits"`
	Item         string         `json:"item"         gorm:"type:varchar(255);not null"`
	Quantity     int            `json:"quantity"     gorm:"not null;check:quantity >= 1"`
	Store        string         `json:"store"        gorm:"type:varchar(64);not null"`
	RedeemMethod string         `json:"redeemMethod" gorm:"type:varchar(64);not null"`
	ExpiryDate   string         `json:"expiryDate"   gorm:"type:varchar(10);not null;index:idx_user_deposits"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `json:"-"            gorm:"index"`
}

// TableName returns the database table name for Deposit.
func (Deposit) TableName() string { return "deposits" }

// RedeemLink describes the external app a redemption channel opens.
type RedeemLink struct {
	App  string `json:"app"`
	Name string `json:"name"`
}

// StoreOptions is the advisory set of store names offered by the UI layer.
var StoreOptions = []string{"7-11", "全家", "星巴克"}

// RedeemMethods is the advisory set of redemption channels.
var RedeemMethods = []string{"7-11", "全家", "Line禮物", "全家酷碰劵", "遠傳", "星巴克"}

// RedeemLinks maps a redemption channel to its deep link and display name.
// Channels missing from the table fall back to the raw method name.
var RedeemLinks = map[string]RedeemLink{
	"7-11":   {App: "openpointapp://gofeature?featureId=HOMACB02", Name: "OPENPOINT"},
	"全家":     {App: "familymart://action.go/preorder/myproduct", Name: "全家便利商店"},
	"遠傳":     {App: "fetnet://", Name: "遠傳心生活"},
	"Line禮物": {App: "https://line.me/R/shop/gift/category/coffee", Name: "Line 禮物"},
	"全家酷碰劵":  {App: "familymart://action.go/preorder/coupon", Name: "全家酷碰劵"},
	"星巴克":    {App: "starbucks://", Name: "星巴克"},
}

// LinkFor resolves the deep link for a redemption channel, falling back to
// a placeholder link and the raw method name when unknown.
func LinkFor(method string) RedeemLink {
	if l, ok := RedeemLinks[method]; ok {
		return l
	}
	return RedeemLink{App: "#", Name: method}
}
