package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleSeller      UserRole = "seller"
	UserRoleBuyer       UserRole = "buyer"
	UserRoleCooperative UserRole = "cooperative"
)

// UserStatus represents user account status
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusPending   UserStatus = "pending"
	UserStatusApproved  UserStatus = "approved"
	UserStatusRejected  UserStatus = "rejected"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusDeleted   UserStatus = "deleted"
)

// DeleteType distinguishes a recoverable deactivation from a permanent removal
type DeleteType string

const (
	DeleteTypeSoft DeleteType = "soft"
	DeleteTypeHard DeleteType = "hard"
)

// User represents a user entity.
// The deletion bookkeeping fields (DeletedAt, DeletedBy, DeletionReason,
// OriginalStatus) are set together on soft delete and cleared together on
// restore; Status == deleted iff they are populated.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	PasswordHash   string      `json:"-"`
	Role           UserRole    `json:"role"`
	Status         UserStatus  `json:"status"`
	DeletedAt      null.Time   `json:"deletedAt,omitempty"`
	DeletedBy      null.String `json:"deletedBy,omitempty"`
	DeletionReason null.String `json:"deletionReason,omitempty"`
	OriginalStatus null.String `json:"originalStatus,omitempty"`
	RestoredAt     null.Time   `json:"restoredAt,omitempty"`
	RestoredBy     null.String `json:"restoredBy,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// IsDeleted reports whether the user is currently soft-deleted.
func (u *User) IsDeleted() bool {
	return u.Status == UserStatusDeleted
}

// Seller is the denormalized mirror of a seller user, keyed by email.
// Invariant: Status mirrors the owning user's status for role=seller; the
// approval workflow and lifecycle manager keep it in sync best-effort.
type Seller struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Email     string     `json:"email"`
	FarmName  string     `json:"farmName"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// DeletedUserArchive is the compliance snapshot written on hard delete.
type DeletedUserArchive struct {
	ID         uuid.UUID  `json:"id"`
	OriginalID uuid.UUID  `json:"originalId"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       UserRole   `json:"role"`
	Status     UserStatus `json:"status"`
	DeletedAt  time.Time  `json:"deletedAt"`
	DeletedBy  uuid.UUID  `json:"deletedBy"`
	Reason     string     `json:"reason"`
}

// LoginInput represents input for admin login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// DeleteUserInput represents input for the user deletion endpoint
type DeleteUserInput struct {
	Reason     string     `json:"reason" binding:"required,min=10"`
	DeleteType DeleteType `json:"deleteType" binding:"required,oneof=soft hard"`
}

// UpdateStatusInput represents input for a generic status flip
type UpdateStatusInput struct {
	Status UserStatus `json:"status" binding:"required"`
}
