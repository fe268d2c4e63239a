package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleDesigner UserRole = "designer"
	UserRoleAdmin    UserRole = "admin"
)

// User is the role record for an identity issued by the external provider.
// Roles only ever move customer -> designer (admin promotion) and there is
// no demotion or deletion path.
type User struct {
	UUID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      UserRole  `gorm:"not null;default:'customer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
