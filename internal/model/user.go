package model

import (
	"time"
)

// User rows are created lazily on the first authenticated request that
// needs one, keyed by the identity provider's subject id.
type User struct {
	ID                uint64    `gorm:"primaryKey"`
	ExternalID        string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_external_id" json:"externalId"`
	Email             string    `gorm:"type:varchar(255)" json:"email"`
	Phone             string    `gorm:"type:varchar(32)" json:"-"`
	FirstName         string    `gorm:"type:varchar(100)" json:"firstName"`
	LastName          string    `gorm:"type:varchar(100)" json:"lastName"`
	Avatar            string    `gorm:"type:varchar(512)" json:"avatar"`
	BillingCustomerID string    `gorm:"type:varchar(128)" json:"-"`
	IsAdmin           bool      `gorm:"type:tinyint(1);not null;default:0" json:"isAdmin"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
